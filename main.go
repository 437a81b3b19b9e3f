// ABOUTME: Entry point for the research-wizard CLI
// ABOUTME: Analyzes spack environments and plans their migration to AWS

package main

import (
	"fmt"
	"os"

	"github.com/scttfrdmn/aws-research-wizard-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
