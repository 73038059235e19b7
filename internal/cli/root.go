// Package cli provides the Cobra command structure for goindent.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goindent/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goindent command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goindent",
		Short: "A regexp-driven auto-indentation engine for text editors",
		Long: `goindent decides how to indent the next line when a newline is inserted
into a source buffer: per-language regular expressions classify the line
before the cursor as indent-increasing or indent-decreasing, and the engine
computes the replacement text, a dedent rewrite of the current line when
needed, and the caret position.

The CLI simulates newline insertions against real files for debugging the
strategies; the pkg/indent library is the embeddable engine.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newIndentCommand())
	rootCmd.AddCommand(newStrategiesCommand())
	rootCmd.AddCommand(newInferCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
