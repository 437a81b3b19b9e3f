// ABOUTME: Version command for the research-wizard CLI
// ABOUTME: Version string is overridden at build time via ldflags

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=v1.2.3".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("research-wizard", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
