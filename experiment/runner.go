package experiment

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statespace/heuristics"
	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// DefaultWorkers is the number of concurrent searches when WithWorkers is not given.
const DefaultWorkers = 4

// RunnerOption configures a Runner via functional arguments.
// An invalid option is recorded and surfaced as ErrOptionViolation by NewRunner.
type RunnerOption func(*RunnerOptions)

// RunnerOptions holds Runner parameters.
type RunnerOptions struct {
	// Workers bounds the number of searches running at once.
	Workers int

	// Timeout cancels a single search; 0 disables it. A timed-out search is
	// recorded as unsolved with the statistics gathered so far.
	Timeout time.Duration

	// DepthLimit bounds DFS trials.
	DepthLimit int

	// CacheSize is the per-heuristic LRU size; 0 disables memoization.
	CacheSize int

	// Metrics receives per-search observations; nil disables them.
	Metrics *telemetry.Metrics

	// Logger receives batch events at info level and per-search events at debug.
	Logger zerolog.Logger

	// Progress, if set, is called after each search with the number done so far.
	Progress func(done, total int)

	err error
}

// DefaultRunnerOptions returns DefaultWorkers workers, no timeout, the default
// DFS depth limit, no cache, no metrics and a disabled logger.
func DefaultRunnerOptions() RunnerOptions {
	return RunnerOptions{
		Workers:    DefaultWorkers,
		DepthLimit: search.DefaultDepthLimit,
		Logger:     zerolog.Nop(),
	}
}

// WithWorkers sets the parallelism (n >= 1).
func WithWorkers(n int) RunnerOption {
	return func(o *RunnerOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTimeout sets the per-search timeout (d >= 0).
func WithTimeout(d time.Duration) RunnerOption {
	return func(o *RunnerOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: timeout cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithDepthLimit sets the DFS depth bound (d >= 0).
func WithDepthLimit(d int) RunnerOption {
	return func(o *RunnerOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithCacheSize memoizes each heuristic in an LRU of n boards (n >= 0).
func WithCacheSize(n int) RunnerOption {
	return func(o *RunnerOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CacheSize = n
	}
}

// WithMetrics records every search in m.
func WithMetrics(m *telemetry.Metrics) RunnerOption {
	return func(o *RunnerOptions) { o.Metrics = m }
}

// WithLogger routes batch and search events to l.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(o *RunnerOptions) { o.Logger = l }
}

// WithProgress registers a progress callback. It may be called concurrently.
func WithProgress(fn func(done, total int)) RunnerOption {
	return func(o *RunnerOptions) { o.Progress = fn }
}

// resolvedTrial is a Trial with its strategy canonicalized and heuristic looked up.
type resolvedTrial struct {
	Trial
	strategy  search.Strategy
	heuristic heuristics.Heuristic
}

// Runner executes trials over scenarios.
type Runner struct {
	trials []resolvedTrial
	opts   RunnerOptions
}

// Batch is the outcome of one Run.
type Batch struct {
	RunID   string
	Records []Record // scenario-major, trials in the order given
	Started time.Time
	Elapsed time.Duration
}

// NewRunner validates trials and options.
func NewRunner(trials []Trial, opts ...RunnerOption) (*Runner, error) {
	if len(trials) == 0 {
		return nil, fmt.Errorf("%w: no trials", ErrInvalidTrial)
	}
	o := DefaultRunnerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	resolved := make([]resolvedTrial, len(trials))
	for i, t := range trials {
		st, h, err := t.resolve()
		if err != nil {
			return nil, err
		}
		resolved[i] = resolvedTrial{Trial: t, strategy: st, heuristic: h}
		if st.Informed() {
			resolved[i].Heuristic = t.heuristicName()
		} else {
			resolved[i].Heuristic = ""
		}
	}

	return &Runner{trials: resolved, opts: o}, nil
}

// Run searches every scenario with every trial, writes the records to sink (when
// non-nil) in scenario-major order and returns them. Canceling ctx aborts the
// batch with ctx's error; a per-search timeout does not.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario, sink Sink) (*Batch, error) {
	batch := &Batch{RunID: uuid.NewString(), Started: time.Now()}
	log := r.opts.Logger.With().Str("run_id", batch.RunID).Logger()
	total := len(scenarios) * len(r.trials)

	log.Info().
		Int("scenarios", len(scenarios)).
		Int("trials", len(r.trials)).
		Int("workers", r.opts.Workers).
		Msg("batch started")
	r.opts.Metrics.RecordBatch()

	trials, err := r.withCaches()
	if err != nil {
		return nil, err
	}

	records := make([]Record, total)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

schedule:
	for i, sc := range scenarios {
		for j, t := range trials {
			if gctx.Err() != nil {
				break schedule
			}
			slot := i*len(trials) + j
			g.Go(func() error {
				rec, err := r.runOne(gctx, log, batch.RunID, sc, t)
				if err != nil {
					return err
				}
				records[slot] = rec
				if r.opts.Progress != nil {
					r.opts.Progress(int(done.Add(1)), total)
				}
				return nil
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	batch.Records = records
	batch.Elapsed = time.Since(batch.Started)

	if sink != nil {
		if err = sink.Write(ctx, records); err != nil {
			return batch, fmt.Errorf("experiment: write records: %w", err)
		}
	}

	log.Info().
		Int("records", len(records)).
		Dur("elapsed", batch.Elapsed).
		Msg("batch finished")

	return batch, nil
}

// withCaches wraps every informed trial's heuristic in an LRU shared across
// the batch's searches, one per heuristic name.
func (r *Runner) withCaches() ([]resolvedTrial, error) {
	trials := make([]resolvedTrial, len(r.trials))
	copy(trials, r.trials)
	if r.opts.CacheSize == 0 {
		return trials, nil
	}

	caches := make(map[string]*heuristics.Cache)
	for i := range trials {
		t := &trials[i]
		if t.heuristic == nil {
			continue
		}
		c, ok := caches[t.Heuristic]
		if !ok {
			var err error
			if c, err = heuristics.NewCache(t.heuristic, r.opts.CacheSize); err != nil {
				return nil, err
			}
			caches[t.Heuristic] = c
		}
		t.heuristic = c.Heuristic()
	}
	return trials, nil
}

func (r *Runner) runOne(ctx context.Context, log zerolog.Logger, runID string, sc Scenario, t resolvedTrial) (Record, error) {
	sctx, cancel := ctx, context.CancelFunc(func() {})
	if r.opts.Timeout > 0 {
		sctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
	}
	defer cancel()

	searchLog := log.With().Int("puzzle_id", sc.ID).Str("label", t.Label).Logger()

	r.opts.Metrics.SearchStarted()
	start := time.Now()
	res, err := search.Solve[puzzle.Board, puzzle.Move](t.strategy, puzzle.NewProblem(sc.Board), t.heuristic,
		search.WithContext(sctx),
		search.WithDepthLimit(r.opts.DepthLimit),
		search.WithLogger(searchLog),
	)
	elapsed := time.Since(start)

	outcome := telemetry.OutcomeUnsolved
	switch {
	case err == nil && res.Found:
		outcome = telemetry.OutcomeSolved
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		outcome = telemetry.OutcomeTimeout
		searchLog.Warn().Dur("timeout", r.opts.Timeout).Msg("search timed out")
	default:
		r.opts.Metrics.SearchFinished(string(t.strategy), t.Heuristic, telemetry.OutcomeError, elapsed, 0, 0)
		return Record{}, fmt.Errorf("experiment: puzzle %d %q: %w", sc.ID, t.Label, err)
	}

	rec := Record{
		RunID:     runID,
		PuzzleID:  sc.ID,
		Label:     t.Label,
		Strategy:  string(t.strategy),
		Heuristic: t.Heuristic,
		Solved:    res.Found,
		Depth:     res.Depth(),
		Expanded:  res.Expansions,
		MaxFringe: res.MaxFringe,
		Duration:  elapsed,
	}
	r.opts.Metrics.SearchFinished(rec.Strategy, rec.Heuristic, outcome, elapsed, rec.Expanded, rec.MaxFringe)
	searchLog.Debug().
		Bool("solved", rec.Solved).
		Int("depth", rec.Depth).
		Int("expanded", rec.Expanded).
		Int("max_fringe", rec.MaxFringe).
		Dur("elapsed", elapsed).
		Msg("search recorded")

	return rec, nil
}
