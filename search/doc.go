// Package search implements domain-agnostic state-space search: depth-first with a
// depth bound, breadth-first, uniform-cost and A*, all written against the Problem
// interface and returning the same Result shape.
//
// What
//
//   - A caller describes a state space by implementing Problem[S, A]:
//     a start state, a goal test, a successor generator and the cost of an
//     action sequence. States must be comparable so they can key the explored set.
//   - Each strategy pulls nodes from its frontier, tests them for the goal,
//     expands them through Problem.Successors and pushes the children back.
//   - Every strategy returns *Result[A]: the action sequence (empty when the
//     reachable space is exhausted), its cost, and statistics
//     (MaxFringe, NodesExpanded, Expansions).
//
// Strategies
//
//	DepthFirst   Stack, explored set checked at pop, hard depth bound (DefaultDepthLimit = 10).
//	BreadthFirst Queue, explored set checked at pop, no bound.
//	UniformCost  PriorityQueue on path cost with decrease-key (Update); a popped node is
//	             processed only if its state is new or strictly cheaper than recorded.
//	AStar        PriorityQueue on cost + heuristic; no check at pop; a successor is
//	             skipped only if an already-expanded record of its state has cost <= the
//	             successor's cost. Optimal when the heuristic is consistent.
//
// The explored policies are deliberately different per strategy; they determine which
// states may be re-expanded and therefore the reported statistics.
//
// Statistics
//
//   - NodesExpanded counts every pop, including nodes discarded as already explored,
//     so it is at least 1 even when the start state is a goal.
//   - Expansions counts calls to Problem.Successors.
//   - MaxFringe is the largest frontier size sampled before each pop. For priority
//     frontiers this is the heap size including superseded entries.
//
// Instrumentation
//
//	WithFringeObserver(fn) and WithExpansionObserver(fn) receive per-iteration samples
//	(frontier size before each pop, one call per expansion). Trace collects both into an
//	explicit statistics object:
//
//		var tr search.Trace
//		res, err := search.AStar(p, h, tr.Options()...)
//		fmt.Println(res.Actions, tr.MaxFringe(), tr.Expansions)
//
// Errors
//
//   - ErrNilProblem        if the problem is nil.
//   - ErrOptionViolation   if an option is invalid (e.g. negative depth limit).
//   - ErrUnknownStrategy   from ParseStrategy / Solve.
//   - ErrNotImplemented    wrapped in the panic raised by UnimplementedProblem methods.
//   - ctx.Err()            when the context passed with WithContext is done; the partial
//     Result is returned alongside.
//
// An exhausted frontier is not an error: Result.Found is false and Actions is empty.
//
// Concurrency
//
//	A call owns its frontier and explored structures and runs to completion on the
//	calling goroutine. Problems and heuristics are only read, so an immutable Problem
//	may serve several concurrent searches.
package search
