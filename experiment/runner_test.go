package experiment_test

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/experiment"
	"github.com/katalvlaran/statespace/heuristics"
	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

func eightScenarios(t *testing.T, n int) []experiment.Scenario {
	t.Helper()
	sc, err := experiment.GenerateScenarios(n, 12, puzzle.EightPuzzle, 99)
	require.NoError(t, err)
	return sc
}

func TestPreset(t *testing.T) {
	h, err := experiment.Preset(experiment.PresetHeuristics)
	require.NoError(t, err)
	var labels []string
	for _, tr := range h {
		labels = append(labels, tr.Label)
		assert.Equal(t, search.AStarStrategy, tr.Strategy)
	}
	assert.Equal(t, []string{
		"A* with Misplaced Tiles",
		"A* with Euclidean Distance",
		"A* with Manhattan Distance",
		"A* with Row-Column Misplacements",
	}, labels)

	s, err := experiment.Preset(experiment.PresetStrategies)
	require.NoError(t, err)
	require.Len(t, s, 4)
	assert.Equal(t, "DFS", s[0].Label)
	assert.Equal(t, "manhattan_distance", s[3].Heuristic)

	_, err = experiment.Preset("everything")
	require.ErrorIs(t, err, experiment.ErrUnknownPreset)
}

func TestNewRunner_Invalid(t *testing.T) {
	_, err := experiment.NewRunner(nil)
	require.ErrorIs(t, err, experiment.ErrInvalidTrial)

	_, err = experiment.NewRunner([]experiment.Trial{{Label: "x", Strategy: "beam"}})
	require.ErrorIs(t, err, experiment.ErrInvalidTrial)

	_, err = experiment.NewRunner([]experiment.Trial{{Label: "x", Strategy: search.AStarStrategy, Heuristic: "chebyshev"}})
	require.ErrorIs(t, err, experiment.ErrInvalidTrial)

	trials := []experiment.Trial{{Label: "BFS", Strategy: search.BFS}}
	for _, opt := range []experiment.RunnerOption{
		experiment.WithWorkers(0),
		experiment.WithTimeout(-time.Second),
		experiment.WithDepthLimit(-1),
		experiment.WithCacheSize(-1),
	} {
		_, err = experiment.NewRunner(trials, opt)
		assert.ErrorIs(t, err, experiment.ErrOptionViolation)
	}
}

func TestRunner_HeuristicsPreset(t *testing.T) {
	trials, err := experiment.Preset(experiment.PresetHeuristics)
	require.NoError(t, err)

	var progressed atomic.Int64
	r, err := experiment.NewRunner(trials,
		experiment.WithWorkers(3),
		experiment.WithProgress(func(done, total int) {
			progressed.Add(1)
			assert.LessOrEqual(t, done, total)
		}),
	)
	require.NoError(t, err)

	scenarios := eightScenarios(t, 4)
	var buf bytes.Buffer
	batch, err := r.Run(context.Background(), scenarios, experiment.NewCSVSink(&buf))
	require.NoError(t, err)

	_, err = uuid.Parse(batch.RunID)
	require.NoError(t, err)
	require.Len(t, batch.Records, len(scenarios)*len(trials))
	assert.EqualValues(t, len(batch.Records), progressed.Load())

	for i, rec := range batch.Records {
		sc, tr := scenarios[i/len(trials)], trials[i%len(trials)]
		assert.Equal(t, batch.RunID, rec.RunID)
		assert.Equal(t, sc.ID, rec.PuzzleID, "records are scenario-major")
		assert.Equal(t, tr.Label, rec.Label)
		assert.Equal(t, "astar", rec.Strategy)
		assert.Equal(t, tr.Heuristic, rec.Heuristic)
		assert.True(t, rec.Solved)
		assert.GreaterOrEqual(t, rec.Expanded, rec.Depth, "every move on the path was generated by an expansion")

		// every heuristic is admissible, so depths agree per scenario
		first := batch.Records[(i/len(trials))*len(trials)]
		assert.Equal(t, first.Depth, rec.Depth)
	}

	back, err := experiment.ReadRecords(&buf)
	require.NoError(t, err)
	assert.Equal(t, withoutRunID(batch.Records), back)
}

func TestRunner_StrategiesPreset(t *testing.T) {
	trials, err := experiment.Preset(experiment.PresetStrategies)
	require.NoError(t, err)
	r, err := experiment.NewRunner(trials, experiment.WithWorkers(2))
	require.NoError(t, err)

	batch, err := r.Run(context.Background(), eightScenarios(t, 3), nil)
	require.NoError(t, err)

	for _, rec := range batch.Records {
		switch rec.Label {
		case "DFS":
			assert.Empty(t, rec.Heuristic)
			if rec.Solved {
				assert.LessOrEqual(t, rec.Depth, search.DefaultDepthLimit)
			}
		case "BFS", "UCS":
			assert.Empty(t, rec.Heuristic)
			assert.True(t, rec.Solved)
		default:
			assert.Equal(t, "manhattan_distance", rec.Heuristic)
			assert.True(t, rec.Solved)
		}
	}
}

func TestRunner_ExpandedCountsSuccessorGenerations(t *testing.T) {
	r, err := experiment.NewRunner([]experiment.Trial{
		{Label: "A*", Strategy: search.AStarStrategy, Heuristic: heuristics.NameManhattanDistance},
	})
	require.NoError(t, err)

	oneMove := puzzle.MustBoard(1, 2, 3, 4, 5, 6, 7, 0, 8)
	batch, err := r.Run(context.Background(), []experiment.Scenario{{ID: 1, Board: oneMove}}, nil)
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)

	rec := batch.Records[0]
	assert.True(t, rec.Solved)
	assert.Equal(t, 1, rec.Depth)
	assert.Equal(t, 1, rec.Expanded, "the goal is popped but never expanded")
}

func TestRunner_CacheDoesNotChangeResults(t *testing.T) {
	trials := []experiment.Trial{{Label: "manhattan", Strategy: search.AStarStrategy, Heuristic: "manhattan_distance"}}
	scenarios := eightScenarios(t, 3)

	plain, err := experiment.NewRunner(trials, experiment.WithWorkers(1))
	require.NoError(t, err)
	cached, err := experiment.NewRunner(trials, experiment.WithWorkers(1), experiment.WithCacheSize(4096))
	require.NoError(t, err)

	a, err := plain.Run(context.Background(), scenarios, nil)
	require.NoError(t, err)
	b, err := cached.Run(context.Background(), scenarios, nil)
	require.NoError(t, err)

	for i := range a.Records {
		assert.Equal(t, a.Records[i].Depth, b.Records[i].Depth)
		assert.Equal(t, a.Records[i].Expanded, b.Records[i].Expanded)
	}
}

func TestRunner_TimeoutRecordsUnsolved(t *testing.T) {
	// swapping two tiles of a solved board makes it unsolvable, so BFS cannot finish
	unsolvable := puzzle.MustBoard(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0)
	require.False(t, unsolvable.Solvable())

	cfg := telemetry.DefaultMetricsConfig()
	cfg.Enabled = true
	m, err := telemetry.NewMetrics(cfg)
	require.NoError(t, err)

	r, err := experiment.NewRunner(
		[]experiment.Trial{{Label: "BFS", Strategy: search.BFS}},
		experiment.WithTimeout(50*time.Millisecond),
		experiment.WithMetrics(m),
	)
	require.NoError(t, err)

	batch, err := r.Run(context.Background(), []experiment.Scenario{{ID: 1, Board: unsolvable}}, nil)
	require.NoError(t, err, "a per-search timeout is an outcome, not an error")
	require.Len(t, batch.Records, 1)
	assert.False(t, batch.Records[0].Solved)
	assert.Positive(t, batch.Records[0].Expanded)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() != "statespace_searches_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "outcome" && lp.GetValue() == telemetry.OutcomeTimeout {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "timeout outcome is counted")
}

func TestRunner_Canceled(t *testing.T) {
	r, err := experiment.NewRunner([]experiment.Trial{{Label: "BFS", Strategy: search.BFS}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, eightScenarios(t, 2), nil)
	require.ErrorIs(t, err, context.Canceled)
}
