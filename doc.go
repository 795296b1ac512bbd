// Package statespace is a toolkit for generic state-space search and the
// experiments built on it.
//
// What is statespace?
//
//	A small set of packages that separate the search algorithms from the
//	problems they solve:
//		• search/       DFS, BFS, UCS and A* over any Problem[S, A]
//		• frontier/     stack, FIFO queue and min-priority queues
//		• puzzle/       the n×n sliding-tile domain (8- and 15-puzzle)
//		• heuristics/   admissible tile heuristics, a registry and an LRU memo
//		• roadmap/      weighted road graphs with straight-line A* estimates
//		• experiment/   scenario files, concurrent batches, CSV/SQLite sinks, summaries
//
// Every strategy reports the same statistics (nodes expanded, successor
// calls and the peak fringe size), so strategies and heuristics can be
// compared on equal terms.
//
// Quick example:
//
//	start := puzzle.MustBoard(1, 2, 3, 4, 5, 6, 0, 7, 8)
//	res, _ := search.AStar[puzzle.Board, puzzle.Move](puzzle.NewProblem(start), heuristics.ManhattanDistance)
//	fmt.Println(res.Actions) // [right right]
//
// The statespace command (cmd/statespace) wraps all of it: solve and demo
// single boards, generate scenario files, bench presets and analyze results.
//
//	go install github.com/katalvlaran/statespace/cmd/statespace@latest
package statespace
