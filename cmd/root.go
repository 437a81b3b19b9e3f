// ABOUTME: Root command for the research-wizard CLI
// ABOUTME: Handles global flags and shared engine construction

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/logger"
)

var (
	catalogPath string
	jsonOutput  bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "research-wizard",
	Short: "Migrate spack environments to AWS",
	Long: `research-wizard captures a spack environment snapshot, analyzes its
resource and architecture requirements, selects a cost-effective EC2
configuration, and emits a phased migration plan with cost projections.

Environment Variables:
  SPACK_BIN       Path to the spack binary (default: spack)
  CATALOG_FILE    YAML file overriding the built-in instance catalog
  PRICING_REGION  Region label recorded in artifacts (default: us-east-1)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog override file (overrides CATALOG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// loadCatalog returns the catalog from flag, env config, or the built-ins.
func loadCatalog(configured string) (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = configured
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
