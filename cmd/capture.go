// ABOUTME: Capture command snapshotting a spack environment to JSON
// ABOUTME: Degrades to a partial snapshot with warnings on capture failures

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/aws-research-wizard-sub000/config"
	"github.com/scttfrdmn/aws-research-wizard-sub000/services"
)

var (
	captureEnv    string
	captureOutput string
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Snapshot a spack environment",
	Long: `Capture invokes the spack CLI to snapshot an environment (packages,
compilers, repos, binary-cache mirrors) and writes the snapshot as JSON.

Capture failures never abort: each failing sub-step records a warning and
leaves its section empty, so 'analyze' can still run on the partial result.

Exit codes:
  0 - Snapshot written (possibly with warnings)
  2 - Error (canceled, cannot write output)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCapture(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().StringVar(&captureEnv, "env", "", "Spack environment name (required)")
	captureCmd.Flags().StringVar(&captureOutput, "output", "", "Snapshot file to write (default: stdout)")
	captureCmd.MarkFlagRequired("env")
}

// runCapture snapshots the environment and returns an exit code.
func runCapture(ctx context.Context, w io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	capturer := services.NewSpackCapturer(cfg.SpackBin).WithTimeouts(
		time.Duration(cfg.FindTimeoutSeconds)*time.Second,
		time.Duration(cfg.ConfigTimeoutSeconds)*time.Second,
	)

	spec, warnings, err := capturer.Capture(ctx, captureEnv)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	data = append(data, '\n')

	if captureOutput == "" {
		w.Write(data)
	} else {
		if err := os.WriteFile(captureOutput, data, 0o644); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintf(w, "Snapshot written to %s (%d packages)\n", captureOutput, len(spec.Packages))
	}

	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	return 0
}
