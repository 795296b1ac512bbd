// Package commands implements the statespace command tree.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// app carries the global flags and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	verbose    bool
	jsonOutput bool

	cfg      *config.Config
	log      zerolog.Logger
	logClose io.Closer
}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	return newRootCommand(version, commit, buildDate).ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "statespace",
		Short: "Generic state-space search over sliding-tile puzzles",
		Long: `statespace solves 8- and 15-puzzles with depth-first, breadth-first,
uniform-cost and A* search, and benchmarks strategies and heuristics over
batches of scrambled boards.

Features:
  - Four strategies sharing one statistics model (nodes expanded, max fringe)
  - Five registered heuristics for A*
  - Reproducible scenario files and CSV/SQLite result sinks
  - Prometheus metrics for long benchmark runs`,
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logClose != nil {
				return a.logClose.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newSolveCommand(a))
	rootCmd.AddCommand(newDemoCommand(a))
	rootCmd.AddCommand(newGenerateCommand(a))
	rootCmd.AddCommand(newBenchCommand(a))
	rootCmd.AddCommand(newAnalyzeCommand(a))
	rootCmd.AddCommand(newHeuristicsCommand(a))

	return rootCmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg

	switch cfg.Logging.Output {
	case "", "stderr":
		a.log, err = telemetry.NewLoggerTo(cmd.ErrOrStderr(), cfg.Logging)
	default:
		a.log, a.logClose, err = telemetry.NewLogger(cfg.Logging)
	}
	if err != nil {
		return err
	}

	a.log.Debug().Str("config", a.configPath).Str("command", cmd.Name()).Msg("configuration loaded")
	return nil
}
