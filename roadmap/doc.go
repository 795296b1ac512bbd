// Package roadmap is a weighted route-finding domain for the search strategies.
//
// What:
//
//	A Graph of named places joined by non-negative weighted roads, optionally
//	with planar positions, and a Problem that asks for a route between two
//	places. Every road is a search.Successor whose Action is the next place ID,
//	so a solution reads as the list of places visited after the start.
//
// Why:
//
//   - Sliding-tile puzzles have unit step costs, so BFS and UCS agree on them.
//     Road networks do not: BFS returns the route with the fewest roads while
//     UCS and A* return the cheapest one.
//   - StraightLine is the classic admissible heuristic for maps whose road
//     weights are at least the Euclidean distance between their endpoints.
//
// Complexity:
//
//   - AddEdge, SetPosition: O(1) amortized.
//   - Neighbors / Successors: O(d log d) where d is the out-degree (sorted output).
//
// Usage:
//
//	g := roadmap.NewGraph()
//	_ = g.AddUndirected("A", "B", 1)
//	_ = g.AddUndirected("B", "C", 2)
//	_ = g.AddUndirected("A", "C", 5)
//	p, _ := roadmap.NewProblem(g, "A", "C")
//	res, _ := search.UniformCost[string, string](p)
//	// res.Actions == ["B", "C"], res.Cost == 3
//
// Errors:
//
//	ErrEmptyVertexID  - a place ID is the empty string.
//	ErrNegativeWeight - a road weight is negative or NaN.
//	ErrVertexNotFound - a referenced place does not exist.
//
// The Graph is safe for concurrent use; a Problem reads it under a read lock.
package roadmap
