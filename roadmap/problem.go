package roadmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/statespace/search"
)

// Problem asks for a route from start to goal over a Graph.
type Problem struct {
	g     *Graph
	start string
	goal  string
}

var _ search.Problem[string, string] = (*Problem)(nil)

// NewProblem validates that both endpoints exist in g.
// Returns ErrVertexNotFound otherwise.
func NewProblem(g *Graph, start, goal string) (*Problem, error) {
	for _, id := range []string{start, goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	return &Problem{g: g, start: start, goal: goal}, nil
}

// StartState returns the start place.
func (p *Problem) StartState() string { return p.start }

// IsGoal reports whether id is the goal place.
func (p *Problem) IsGoal(id string) bool { return id == p.goal }

// Goal returns the goal place.
func (p *Problem) Goal() string { return p.goal }

// Successors lists the roads leaving id; the action is the destination ID.
func (p *Problem) Successors(id string) []search.Successor[string, string] {
	edges, err := p.g.Neighbors(id)
	if err != nil {
		return nil
	}
	out := make([]search.Successor[string, string], len(edges))
	for i, e := range edges {
		out[i] = search.Successor[string, string]{State: e.To, Action: e.To, Cost: e.Weight}
	}
	return out
}

// CostOfActions sums the road weights along actions from the start. An action
// that is not a road from the current place makes the sequence illegal and the
// cost +Inf.
func (p *Problem) CostOfActions(actions []string) float64 {
	cur, total := p.start, 0.0
	for _, next := range actions {
		w, ok := p.g.Weight(cur, next)
		if !ok {
			return math.Inf(1)
		}
		total += w
		cur = next
	}
	return total
}

// StraightLine is the Euclidean distance between the positions of id and the
// goal of a roadmap Problem. It returns 0 when either position is unknown or p
// is not a *Problem.
func StraightLine(id string, p search.Problem[string, string]) float64 {
	rp, ok := p.(*Problem)
	if !ok {
		return 0
	}
	a, okA := rp.g.Position(id)
	b, okB := rp.g.Position(rp.goal)
	if !okA || !okB {
		return 0
	}
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
