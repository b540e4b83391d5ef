// =============================================================================
// Pohoda Analytics - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command the other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pohoda-analytics)
//   ├── analyzeCmd (pohoda-analytics analyze)
//   └── versionCmd (pohoda-analytics version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces debug logging regardless of the configured log level.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pohoda-analytics",
	Short: "VITAR Sport Analytics - Sales reporting from Pohoda XML exports",
	Long: `VITAR Sport Analytics reads order and invoice XML exports from the Pohoda
accounting system and produces sales reports: per-record CSV exports, monthly
summary tables by channel, salesperson and supplier, JS data files for the
web dashboard, and an XLSX workbook.

Example Usage:
  pohoda-analytics analyze                     # Analyze with config.yaml defaults
  pohoda-analytics analyze --config ./my.yaml  # Use a custom configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
