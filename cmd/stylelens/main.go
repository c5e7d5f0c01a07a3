// Package main provides the entry point for the stylelens CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csmtools/stylelens/cmd/stylelens/commands"
	"github.com/csmtools/stylelens/internal/version"
)

var quiet bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "stylelens",
		Short: "Stylelens - Checkstyle to CSM principle analysis",
		Long: `Stylelens analyzes Java sources with Checkstyle, classifies each
violation under a CSM (Clean Software Methodology) principle, and
generates an xlsx report with per-file, per-principle, and per-rule
summaries.

Commands:
  run       Analyze a directory and generate a report
  mappings  Show the effective rule-to-principle table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress and summary output")

	// Add commands.
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewMappingsCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "stylelens %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
