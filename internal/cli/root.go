// Package cli implements the cobra-based CLI commands for the tracker.
//
// The root command only provides help text and version output; serve and
// seed carry the actual functionality.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the semantic version of the binary, injected from main.
var Version = "dev"

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sde-prep",
		Short: "Self-hosted SDE interview preparation tracker",
		Long: `sde-prep tracks coding problems, system design topics, behavioral stories,
and a 12-week study plan in a local SQLite database, served through a web UI
at /tools/sde-prep.`,
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSeedCommand())
	return rootCmd
}

// Execute runs the root command and exits non-zero on any error, which is
// what makes every launch failure fatal to the caller.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultConfigDir is the sde-prep folder under the user configuration
// directory, falling back to a hidden folder in the working directory when
// the platform dir cannot be resolved.
func defaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".sde-prep"
	}
	return filepath.Join(configDir, "sde-prep")
}

// buildLogger returns a production logger, or a development one when reload
// mode asks for human-readable output.
func buildLogger(development bool) (*zap.Logger, error) {
	if development {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("building development logger: %w", err)
		}
		return logger, nil
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
