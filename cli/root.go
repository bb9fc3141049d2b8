// Package cli provides the windowscan command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kiereneinar/windowscan/config"
	"github.com/kiereneinar/windowscan/registry"
)

// app carries what the subcommands share once the root command has
// initialized.
type app struct {
	configPath string
	verbose    bool
	format     string

	cfg      *config.Config
	logger   *zap.Logger
	registry *registry.Registry
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{registry: registry.Default()}

	root := &cobra.Command{
		Use:   "windowscan",
		Short: "Run sliding-window and stack puzzle solvers.",
		Long: `windowscan runs the puzzle solvers of this repository on arguments ` +
			`given inline or in YAML case files and prints their results.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.format != "" {
				cfg.Output.Format = a.format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg

			a.logger, err = newLogger(cfg, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format, yaml or json (overrides config)")

	root.AddCommand(
		newListCmd(a),
		newSolveCmd(a),
		newRunCmd(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
