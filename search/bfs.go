package search

import "github.com/katalvlaran/statespace/frontier"

// BreadthFirst expands the shallowest frontier node first.
//
// It shares DepthFirst's explored-at-pop policy but has no depth bound. With
// uniform step costs the first goal popped lies on a path with the fewest actions.
func BreadthFirst[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := newRunner(p, o, BFS)
	queue := frontier.NewQueue[node[S, A]](16)
	explored := make(map[S]struct{})

	queue.Push(node[S, A]{state: p.StartState()})

	for !queue.IsEmpty() {
		if err = r.canceled(); err != nil {
			return r.res, err
		}

		r.sample(queue.Len())
		n, _ := queue.Pop()
		r.popped()

		if _, seen := explored[n.state]; seen {
			continue
		}
		explored[n.state] = struct{}{}

		if p.IsGoal(n.state) {
			return r.found(n), nil
		}

		for _, s := range r.expand(n.state) {
			queue.Push(n.child(s))
		}
	}

	return r.exhausted(), nil
}
