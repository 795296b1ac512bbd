package search

import "github.com/katalvlaran/statespace/frontier"

// AStar expands the frontier node with the lowest cost + h(state).
//
// Popped nodes are not checked against the explored records: the goal test runs
// first, then the node's (state, cost) is recorded as expanded. A successor is
// dropped only when an expanded record for its state has cost <= the successor's
// cost. This pruning is weaker than UniformCost's and returns optimal paths only
// when h is consistent; with an admissible but inconsistent h a state may be
// expanded again at a lower cost.
//
// A nil h is treated as NullHeuristic.
func AStar[S comparable, A any](p Problem[S, A], h Heuristic[S, A], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if h == nil {
		h = NullHeuristic[S, A]
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := newRunner(p, o, AStarStrategy)
	pq := frontier.NewPriorityQueue(nodeState[S, A])
	// lowest cost at which each state has been expanded
	expanded := make(map[S]float64)

	start := p.StartState()
	pq.Push(node[S, A]{state: start}, h(start, p))

	for !pq.IsEmpty() {
		if err = r.canceled(); err != nil {
			return r.res, err
		}

		r.sample(pq.Len())
		n, _, _ := pq.Pop()
		r.popped()

		if p.IsGoal(n.state) {
			return r.found(n), nil
		}

		if c, ok := expanded[n.state]; !ok || n.cost < c {
			expanded[n.state] = n.cost
		}

		for _, s := range r.expand(n.state) {
			c := n.child(s)
			if best, ok := expanded[c.state]; ok && best <= c.cost {
				continue
			}
			pq.Push(c, c.cost+h(c.state, p))
		}
	}

	return r.exhausted(), nil
}
