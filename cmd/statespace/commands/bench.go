package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/experiment"
	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// benchReport is the --json form of a bench run.
type benchReport struct {
	RunID     string                  `json:"run_id"`
	Preset    string                  `json:"preset"`
	Scenarios int                     `json:"scenarios"`
	Records   int                     `json:"records"`
	ElapsedMS float64                 `json:"elapsed_ms"`
	Labels    []experiment.LabelStats `json:"labels"`
	Winners   map[string]string       `json:"winners"`
}

func newBenchCommand(a *app) *cobra.Command {
	var (
		preset      string
		scenarios   string
		csvPath     string
		sqlitePath  string
		workers     int
		timeout     time.Duration
		cacheSize   int
		metricsAddr string
		regenerate  bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a preset of trials over a scenario file",
		Long: `bench searches every scenario with every trial of a preset and writes one
record per search to the configured sinks, then prints a per-label summary.

Presets:
  heuristics   A* with each informative heuristic
  strategies   DFS, BFS, UCS and A* with Manhattan distance

The scenario file is generated from the bench configuration when it does not
exist or when --regenerate is given.`,
		Example: `  # Compare heuristics on the default scenario file
  statespace bench

  # Compare strategies on 8-puzzles, store results in SQLite, expose metrics
  statespace bench --preset strategies --results-sqlite runs.db --metrics-addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc := a.cfg.Bench
			mc := a.cfg.Metrics
			flags := cmd.Flags()
			if flags.Changed("preset") {
				bc.Preset = preset
			}
			if flags.Changed("scenarios") {
				bc.Scenarios = scenarios
			}
			if flags.Changed("results-csv") {
				bc.ResultsCSV = csvPath
			}
			if flags.Changed("results-sqlite") {
				bc.ResultsSQLite = sqlitePath
			}
			if flags.Changed("workers") {
				bc.Workers = workers
			}
			if flags.Changed("cache-size") {
				bc.CacheSize = cacheSize
			}
			if flags.Changed("metrics-addr") {
				mc.Enabled, mc.ListenAddress = metricsAddr != "", metricsAddr
			}
			searchTimeout := a.cfg.Search.Timeout
			if flags.Changed("timeout") {
				searchTimeout = timeout
			}

			trials, err := experiment.Preset(bc.Preset)
			if err != nil {
				return err
			}
			scs, err := loadOrGenerate(a, bc, regenerate)
			if err != nil {
				return err
			}
			sink, err := openSinks(cmd.Context(), bc)
			if err != nil {
				return err
			}
			defer sink.Close()

			metrics, err := telemetry.NewMetrics(mc)
			if err != nil {
				return err
			}
			ctx, stop := context.WithCancel(cmd.Context())
			defer stop()
			if metrics.Enabled() && mc.ListenAddress != "" {
				go func() {
					if err := metrics.Serve(ctx, mc.ListenAddress); err != nil {
						a.log.Error().Err(err).Str("addr", mc.ListenAddress).Msg("metrics server stopped")
					}
				}()
				a.log.Info().Str("addr", mc.ListenAddress).Str("path", mc.Path).Msg("serving metrics")
			}

			runner, err := experiment.NewRunner(trials,
				experiment.WithWorkers(bc.Workers),
				experiment.WithTimeout(searchTimeout),
				experiment.WithDepthLimit(a.cfg.Search.DepthLimit),
				experiment.WithCacheSize(bc.CacheSize),
				experiment.WithMetrics(metrics),
				experiment.WithLogger(a.log),
				experiment.WithProgress(progressLogger(a, len(scs)*len(trials))),
			)
			if err != nil {
				return err
			}
			batch, err := runner.Run(ctx, scs, sink)
			if err != nil {
				return err
			}
			if err = sink.Close(); err != nil {
				return err
			}

			summary := experiment.Summarize(batch.Records)
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), benchReport{
					RunID:     batch.RunID,
					Preset:    bc.Preset,
					Scenarios: len(scs),
					Records:   len(batch.Records),
					ElapsedMS: float64(batch.Elapsed.Microseconds()) / 1000,
					Labels:    summary.Labels,
					Winners: map[string]string{
						"expanded_nodes": summary.LeastExpanded,
						"execution_time": summary.LeastTime,
						"max_fringe":     summary.LeastFringe,
					},
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %d scenarios x %d trials in %s\n\n",
				batch.RunID, len(scs), len(trials), batch.Elapsed.Round(time.Millisecond))
			_, err = summary.WriteTo(out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&preset, "preset", "p", "", "trial preset: heuristics or strategies")
	flags.StringVar(&scenarios, "scenarios", "", "scenario CSV path")
	flags.StringVar(&csvPath, "results-csv", "", "results CSV path (empty disables)")
	flags.StringVar(&sqlitePath, "results-sqlite", "", "results SQLite path (empty disables)")
	flags.IntVarP(&workers, "workers", "w", 0, "concurrent searches")
	flags.DurationVar(&timeout, "timeout", 0, "per-search timeout (0 disables)")
	flags.IntVar(&cacheSize, "cache-size", 0, "per-heuristic LRU size (0 disables)")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	flags.BoolVar(&regenerate, "regenerate", false, "regenerate the scenario file even if it exists")

	return cmd
}

// loadOrGenerate reads the scenario file, writing a fresh one first when it is
// missing or regenerate is set.
func loadOrGenerate(a *app, bc config.BenchConfig, regenerate bool) ([]experiment.Scenario, error) {
	if !regenerate {
		scs, err := experiment.LoadScenarios(bc.Scenarios)
		if err == nil {
			a.log.Debug().Str("path", bc.Scenarios).Int("count", len(scs)).Msg("scenarios loaded")
			return scs, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	scs, err := experiment.GenerateScenarios(bc.Count, bc.Moves, bc.Size, bc.Seed)
	if err != nil {
		return nil, err
	}
	if err = experiment.SaveScenarios(bc.Scenarios, scs); err != nil {
		return nil, err
	}
	a.log.Info().Str("path", bc.Scenarios).Int("count", len(scs)).Int64("seed", bc.Seed).Msg("scenarios generated")
	return scs, nil
}

// openSinks opens every configured result sink.
func openSinks(ctx context.Context, bc config.BenchConfig) (experiment.Sink, error) {
	var sinks experiment.MultiSink
	if bc.ResultsCSV != "" {
		s, err := experiment.CreateCSVSink(bc.ResultsCSV)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if bc.ResultsSQLite != "" {
		s, err := experiment.OpenSQLiteSink(ctx, bc.ResultsSQLite)
		if err != nil {
			_ = sinks.Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if len(sinks) == 0 {
		return nil, fmt.Errorf("%w: no result sink configured", config.ErrInvalidConfig)
	}
	return sinks, nil
}

// progressLogger logs every tenth of the batch at info level.
func progressLogger(a *app, expected int) func(done, total int) {
	step := expected / 10
	if step < 1 {
		step = 1
	}
	return func(done, total int) {
		if done%step == 0 || done == total {
			a.log.Info().Int("done", done).Int("total", total).Msg("bench progress")
		}
	}
}

