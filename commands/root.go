// Package commands implements the recmeta CLI: the file-open,
// file-save, and reporting collaborator around the validation core.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeworks/recmeta/config"
)

// NewRootCmd builds the recmeta root command with all subcommands
// attached.
func NewRootCmd(version string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "recmeta",
		Short:         "Validate and package electrophysiology session metadata",
		Long:          "recmeta validates electrophysiology session-metadata YAML against the fixed\nrecording schema and cross-field rules, generates ntrode channel maps from\nelectrode-group topology, and produces deterministic export documents.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newValidateCmd(),
		newImportCmd(),
		newExportCmd(),
		newGenMapsCmd(),
		newWatchCmd(),
	)

	return cmd
}

// loadConfig loads the layered tool configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
