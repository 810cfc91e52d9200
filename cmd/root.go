// =============================================================================
// EventAlytics - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (eventalytics)
//   ├── reportCmd  (eventalytics report)
//   └── versionCmd (eventalytics version)
//
// The root command owns the global flags (--config, --verbose) and the
// configuration loading shared by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eventalytics/eventalytics/internal/config"
	"github.com/eventalytics/eventalytics/pkg/utils"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "eventalytics",

	Short: "EventAlytics - Sales analytics for event registration exports",

	Long: `EventAlytics analyzes the CSV/XLSX order exports of the event registration
platform and turns them into dashboard reports: revenue, order counts,
average ticket, TK-card holders, translation logistics, and breakdowns by
city, payment method and day.

Example Usage:
  eventalytics report                     # Analyze all exports in the input directory
  eventalytics report --file pedidos.csv  # Analyze a single export
  eventalytics report --sample            # Analyze the bundled demo data
  eventalytics report --format xlsx       # Write the report as a workbook`,

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
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration file, falling back to the built-in
// defaults when the default file is absent. An explicitly requested file
// that cannot be read is an error.
func loadConfig() (*config.Config, error) {
	if !utils.FileExists(cfgFile) {
		if cfgFile == "config.yaml" {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}
	return config.Load(cfgFile)
}
