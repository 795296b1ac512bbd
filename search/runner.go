package search

import (
	"time"
)

// node is a frontier entry: a state, the actions that reached it, its path cost
// and depth. Once popped it belongs to the loop, which copies its action slice
// into each child.
type node[S comparable, A any] struct {
	state   S
	actions []A
	cost    float64
	depth   int
}

// child builds the successor node reached from n through s.
func (n node[S, A]) child(s Successor[S, A]) node[S, A] {
	actions := make([]A, len(n.actions)+1)
	copy(actions, n.actions)
	actions[len(n.actions)] = s.Action

	return node[S, A]{
		state:   s.State,
		actions: actions,
		cost:    n.cost + s.Cost,
		depth:   n.depth + 1,
	}
}

// nodeState keys priority frontiers by state.
func nodeState[S comparable, A any](n node[S, A]) S { return n.state }

// runner holds the bookkeeping shared by every strategy loop.
type runner[S comparable, A any] struct {
	problem  Problem[S, A]
	opts     Options
	strategy Strategy
	res      *Result[A]
	started  time.Time
}

func newRunner[S comparable, A any](p Problem[S, A], o Options, s Strategy) *runner[S, A] {
	o.Logger.Debug().Str("strategy", string(s)).Msg("search started")

	return &runner[S, A]{
		problem:  p,
		opts:     o,
		strategy: s,
		res:      &Result[A]{Actions: []A{}},
		started:  time.Now(),
	}
}

// canceled reports the context error, if any, once per loop iteration.
func (r *runner[S, A]) canceled() error {
	select {
	case <-r.opts.Ctx.Done():
		r.finish("canceled")
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// sample records the frontier size before a pop.
func (r *runner[S, A]) sample(size int) {
	if size > r.res.MaxFringe {
		r.res.MaxFringe = size
	}
	r.opts.OnFringe(size)
}

// popped counts a node taken off the frontier.
func (r *runner[S, A]) popped() { r.res.NodesExpanded++ }

// expand generates the successors of state and notifies the expansion observer.
func (r *runner[S, A]) expand(state S) []Successor[S, A] {
	r.res.Expansions++
	r.opts.OnExpand()

	return r.problem.Successors(state)
}

// found finalizes the result with n as the goal node.
func (r *runner[S, A]) found(n node[S, A]) *Result[A] {
	r.res.Found = true
	r.res.Actions = n.actions
	if r.res.Actions == nil {
		r.res.Actions = []A{}
	}
	r.res.Cost = n.cost
	r.finish("found")

	return r.res
}

// exhausted finalizes the result after the frontier ran dry.
func (r *runner[S, A]) exhausted() *Result[A] {
	r.finish("exhausted")
	return r.res
}

func (r *runner[S, A]) finish(outcome string) {
	r.opts.Logger.Debug().
		Str("strategy", string(r.strategy)).
		Str("outcome", outcome).
		Int("depth", len(r.res.Actions)).
		Float64("cost", r.res.Cost).
		Int("nodes_expanded", r.res.NodesExpanded).
		Int("expansions", r.res.Expansions).
		Int("max_fringe", r.res.MaxFringe).
		Dur("elapsed", time.Since(r.started)).
		Msg("search finished")
}
