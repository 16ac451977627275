// Package main provides the command-line demonstration tool for colorconv.
// It converts channel triples from the command line or from YAML files
// into validated RGB colors and prints the outcome.
package main

import (
	"log/slog"
	"os"

	"github.com/hupe1980/colorconv"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "colorconv",
	Short: "Fallible conversions from integer sequences to RGB colors",
	Long: `colorconv - convert integer channel values into validated RGB colors.

Conversions never abort: out-of-range values and wrong-length inputs are
reported as typed errors and printed.

Examples:
  colorconv demo
  colorconv convert 183 65 14
  colorconv batch -f colors.yaml`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the shared logger honoring the --verbose flag.
func newLogger() *colorconv.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return colorconv.NewTextLogger(level)
}
