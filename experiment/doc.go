// Package experiment runs batches of sliding-tile searches and compares them.
//
// What:
//
//   - Scenarios: reproducible scrambled boards, stored as CSV rows
//     "PuzzleID,State" with State in nested-row form ("[[1, 2, 3, 4], ...]").
//   - Trials: one labelled (strategy, heuristic) pair. Two presets exist:
//     "heuristics" runs A* with each informative heuristic and "strategies"
//     runs DFS, BFS, UCS and A* with Manhattan distance.
//   - Runner: every scenario × trial pair is one search. Searches run in
//     parallel up to a worker limit, each under its own timeout, and produce one
//     Record apiece. The batch shares a RunID.
//   - Sinks: records go to CSV, SQLite, or both.
//   - Summary: per-label averages of expanded nodes, execution time and max
//     fringe, plus the label that wins each metric.
//
// Why:
//
//	The search core reports statistics for a single run; comparing heuristics or
//	strategies needs the same statistics across hundreds of boards, persisted
//	so reports can be rebuilt without re-running the searches.
//
// Usage:
//
//	scenarios, _ := experiment.GenerateScenarios(100, 25, puzzle.FifteenPuzzle, 1)
//	trials, _ := experiment.Preset(experiment.PresetHeuristics)
//	r, _ := experiment.NewRunner(trials, experiment.WithWorkers(4))
//	sink := experiment.NewCSVSink(f)
//	batch, _ := r.Run(ctx, scenarios, sink)
//	experiment.Summarize(batch.Records).WriteTo(os.Stdout)
//
// Errors:
//
//	ErrInvalidScenario - a scenario row cannot be parsed into a board.
//	ErrUnknownPreset   - Preset was given an unregistered name.
//	ErrInvalidTrial    - a trial names an unknown strategy or heuristic.
//	ErrInvalidRecord   - a results row cannot be parsed.
//	ErrOptionViolation - a RunnerOption was given an invalid value.
package experiment
