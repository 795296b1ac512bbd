// Package heuristics provides admissible estimates of the remaining move count for
// the sliding-tile puzzle, and a name registry so drivers can select them by string.
//
// Heuristics (blank excluded from every sum):
//
//	misplaced_tiles           number of tiles not on their goal cell
//	euclidean_distance        Σ straight-line distance of each tile to its goal cell
//	manhattan_distance        Σ |Δrow| + |Δcol| of each tile to its goal cell
//	row_column_misplacements  tiles outside their goal row + tiles outside their goal column
//	null                      always 0 (A* degenerates to uniform-cost search)
//
// Each one is 0 exactly on the goal board and never exceeds the optimal number of
// moves, because one move relocates a single tile by one cell. Manhattan distance and
// row-column misplacements both dominate misplaced tiles; Manhattan distance also
// dominates the Euclidean sum. Manhattan and misplaced tiles are consistent.
//
// Usage
//
//	h, err := heuristics.Lookup("manhattan_distance")
//	if err != nil {
//		// errors.Is(err, heuristics.ErrUnknownHeuristic)
//	}
//	res, err := search.AStar(puzzle.NewProblem(start), h)
//
// Cached wraps any heuristic with an LRU memo keyed by board.
package heuristics
