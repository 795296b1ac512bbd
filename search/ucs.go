package search

import "github.com/katalvlaran/statespace/frontier"

// UniformCost expands the frontier node with the lowest accumulated path cost.
//
// Children are offered with PriorityQueue.Update keyed by state, so a state
// re-reached more cheaply while still queued has its entry replaced. The explored
// map records the best cost at which each state was processed; a popped node is
// processed only if its state is new or strictly cheaper than that record, which
// keeps the search correct when one state is queued several times.
func UniformCost[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := newRunner(p, o, UCS)
	pq := frontier.NewPriorityQueue(nodeState[S, A])
	explored := make(map[S]float64)

	pq.Push(node[S, A]{state: p.StartState()}, 0)

	for !pq.IsEmpty() {
		if err = r.canceled(); err != nil {
			return r.res, err
		}

		r.sample(pq.Len())
		n, _, _ := pq.Pop()
		r.popped()

		if best, seen := explored[n.state]; seen && n.cost >= best {
			continue
		}
		explored[n.state] = n.cost

		if p.IsGoal(n.state) {
			return r.found(n), nil
		}

		for _, s := range r.expand(n.state) {
			c := n.child(s)
			pq.Update(c, c.cost)
		}
	}

	return r.exhausted(), nil
}
