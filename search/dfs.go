package search

import "github.com/katalvlaran/statespace/frontier"

// DepthFirst expands the deepest frontier node first.
//
// The explored set is consulted and filled at pop time, so a state may sit on the
// stack several times but is expanded at most once. Children deeper than
// Options.DepthLimit (DefaultDepthLimit unless WithDepthLimit is given) are not
// pushed, which makes the search complete only for goals within the bound.
// The returned path is valid but not necessarily shortest.
func DepthFirst[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := newRunner(p, o, DFS)
	stack := frontier.NewStack[node[S, A]](16)
	explored := make(map[S]struct{})

	stack.Push(node[S, A]{state: p.StartState()})

	for !stack.IsEmpty() {
		if err = r.canceled(); err != nil {
			return r.res, err
		}

		r.sample(stack.Len())
		n, _ := stack.Pop()
		r.popped()

		if _, seen := explored[n.state]; seen {
			continue
		}
		explored[n.state] = struct{}{}

		if p.IsGoal(n.state) {
			return r.found(n), nil
		}

		for _, s := range r.expand(n.state) {
			if n.depth+1 > o.DepthLimit {
				continue
			}
			stack.Push(n.child(s))
		}
	}

	return r.exhausted(), nil
}
