// Package cmd provides the CLI commands for the estates toolkit.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Date is set at build time via ldflags.
	Date = "unknown"
)

var (
	cfgFile string
	noColor bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "estates",
	Short: "Estate portfolio dashboard toolkit",
	Long: `Estates loads an estate/construction portfolio workbook and computes the
filtered views, rankings, and summary statistics behind the dashboard.

It provides commands to inspect projects, risks, contractor usage, and
Health & Safety hotspots from the terminal, and to serve the same derived
state to a browser dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .estates/config.yaml or estates.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(risksCmd)
	rootCmd.AddCommand(safetyCmd)
	rootCmd.AddCommand(contractorsCmd)
	rootCmd.AddCommand(serveCmd)
}
