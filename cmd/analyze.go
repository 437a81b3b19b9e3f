// ABOUTME: Analyze command running the full pipeline over a snapshot
// ABOUTME: Reads a snapshot file or captures live, prints or exports the report

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
	"github.com/scttfrdmn/aws-research-wizard-sub000/export"
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
	"github.com/scttfrdmn/aws-research-wizard-sub000/services"
)

var (
	analyzeInput  string
	analyzeEnv    string
	analyzeOutDir string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an environment and plan its migration",
	Long: `Analyze runs the full pipeline: classify packages, check Graviton
compatibility, select an instance configuration, model cost, and assemble
the migration plan.

The snapshot comes from --input (a JSON file written by 'capture') or is
captured live from the named spack environment with --env.

Exit codes:
  0 - Analysis completed
  2 - Error (invalid input, no snapshot source)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAnalyze(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Snapshot JSON file produced by 'capture'")
	analyzeCmd.Flags().StringVar(&analyzeEnv, "env", "", "Spack environment name to capture live")
	analyzeCmd.Flags().StringVar(&analyzeOutDir, "output-dir", "", "Write migration artifacts to this directory")
}

// runAnalyze executes the pipeline and returns an exit code.
func runAnalyze(ctx context.Context, w io.Writer) int {
	if analyzeInput == "" && analyzeEnv == "" {
		fmt.Fprintln(w, "Error: one of --input or --env is required")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	env, warnings, err := loadSnapshot(ctx, cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	engine := services.NewEngine(cat)
	report := engine.Report(env, warnings)

	if analyzeOutDir != "" {
		exporter := export.NewExporter(cfg.PricingRegion)
		if err := exporter.WriteAll(analyzeOutDir, report); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintf(w, "Artifacts written to %s\n", analyzeOutDir)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatReportJSON(report))
	} else {
		fmt.Fprintln(w, formatReportHuman(report))
	}
	return 0
}

// loadSnapshot reads the snapshot from file or captures it live.
func loadSnapshot(ctx context.Context, cfg *config.Config) (models.EnvironmentSpec, []string, error) {
	if analyzeInput != "" {
		data, err := os.ReadFile(analyzeInput)
		if err != nil {
			return models.EnvironmentSpec{}, nil, fmt.Errorf("reading snapshot: %w", err)
		}
		var env models.EnvironmentSpec
		if err := json.Unmarshal(data, &env); err != nil {
			return models.EnvironmentSpec{}, nil, fmt.Errorf("parsing snapshot %s: %w", analyzeInput, err)
		}
		return env, nil, nil
	}

	capturer := services.NewSpackCapturer(cfg.SpackBin).WithTimeouts(
		time.Duration(cfg.FindTimeoutSeconds)*time.Second,
		time.Duration(cfg.ConfigTimeoutSeconds)*time.Second,
	)
	return capturer.Capture(ctx, analyzeEnv)
}

// formatReportHuman renders the report summary for terminals.
func formatReportHuman(report models.AnalysisReport) string {
	r := report.Result
	out := fmt.Sprintf(`Environment:    %s (%d packages)
Instance:       %dx %s (%s)
Memory:         %d GB total
Storage:        %d GB
Graviton:       %s
Hourly cost:    $%.2f
Monthly (30%%):  $%.2f
Spot hourly:    $%.2f`,
		report.Environment, r.Profile.TotalPackages,
		r.Selection.InstanceCount, r.Selection.Instance.Name, r.Selection.Architecture,
		r.Selection.TotalMemoryGB,
		r.Profile.StorageRequirementGB,
		compatLabel(r.Compatibility),
		r.Cost.HourlyCost,
		r.Cost.MonthlyEstimate,
		r.Cost.Scenarios[models.ScenarioSpot])

	out += "\n\nNotes:"
	for _, note := range r.OptimizationNotes {
		out += "\n  - " + note
	}

	if len(report.Warnings) > 0 {
		out += "\n\nCapture warnings:"
		for _, warning := range report.Warnings {
			out += "\n  ! " + warning
		}
	}
	return out
}

func compatLabel(compat models.CompatibilityResult) string {
	if compat.Compatible {
		return fmt.Sprintf("compatible (%.2fx expected gain)", compat.EstimatedPerformanceGain)
	}
	return fmt.Sprintf("incompatible (%d blocking package(s))", len(compat.IncompatiblePackages))
}

// formatReportJSON renders the full report as indented JSON.
func formatReportJSON(report models.AnalysisReport) string {
	data, _ := json.MarshalIndent(report, "", "  ")
	return string(data)
}
