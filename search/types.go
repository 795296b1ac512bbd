package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a strategy.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned for an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrNotImplemented marks a Problem operation the domain did not provide.
	ErrNotImplemented = errors.New("search: not implemented")
)

// Successor is one transition out of a state.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64 // step cost, >= 0
}

// Problem describes a state space. Implementations must be safe to read while a
// search runs and should not change for its duration.
type Problem[S comparable, A any] interface {
	// StartState returns the initial state.
	StartState() S

	// IsGoal reports whether state satisfies the goal test.
	IsGoal(state S) bool

	// Successors lists the transitions available from state.
	Successors(state S) []Successor[S, A]

	// CostOfActions returns the total cost of a complete, legal action
	// sequence applied from the start state.
	CostOfActions(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
// It must return a non-negative value; A* is optimal only with an admissible
// heuristic, and its explored-set pruning assumes a consistent one.
// p may be nil.
type Heuristic[S comparable, A any] func(state S, p Problem[S, A]) float64

// NullHeuristic always returns 0, which reduces A* to uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }

// UnimplementedProblem can be embedded by Problem implementations that are
// built up incrementally. Every method panics with an error wrapping ErrNotImplemented.
type UnimplementedProblem[S comparable, A any] struct{}

func notImplemented(op string) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, op)
}

// StartState panics with ErrNotImplemented.
func (UnimplementedProblem[S, A]) StartState() S { panic(notImplemented("StartState")) }

// IsGoal panics with ErrNotImplemented.
func (UnimplementedProblem[S, A]) IsGoal(S) bool { panic(notImplemented("IsGoal")) }

// Successors panics with ErrNotImplemented.
func (UnimplementedProblem[S, A]) Successors(S) []Successor[S, A] {
	panic(notImplemented("Successors"))
}

// CostOfActions panics with ErrNotImplemented.
func (UnimplementedProblem[S, A]) CostOfActions([]A) float64 {
	panic(notImplemented("CostOfActions"))
}

// Result is the outcome of a search.
//   - Actions: the path from start to goal; empty (non-nil) when no goal was reached.
//   - Found: whether a goal was reached.
//   - Cost: accumulated step cost along Actions.
//   - MaxFringe: high-water mark of the frontier size, sampled before each pop.
//   - NodesExpanded: number of nodes popped from the frontier.
//   - Expansions: number of Successors calls.
type Result[A any] struct {
	Actions       []A
	Found         bool
	Cost          float64
	MaxFringe     int
	NodesExpanded int
	Expansions    int
}

// Depth returns the number of actions in the solution.
func (r *Result[A]) Depth() int { return len(r.Actions) }
