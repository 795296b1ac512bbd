package search

import (
	"fmt"
	"strings"
)

// Strategy names a search algorithm.
type Strategy string

const (
	DFS           Strategy = "dfs"
	BFS           Strategy = "bfs"
	UCS           Strategy = "ucs"
	AStarStrategy Strategy = "astar"
)

// Strategies lists every strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{DFS, BFS, UCS, AStarStrategy}
}

var strategyAliases = map[string]Strategy{
	"dfs":                DFS,
	"depth-first":        DFS,
	"depthfirstsearch":   DFS,
	"bfs":                BFS,
	"breadth-first":      BFS,
	"breadthfirstsearch": BFS,
	"ucs":                UCS,
	"uniform-cost":       UCS,
	"uniformcostsearch":  UCS,
	"astar":              AStarStrategy,
	"a*":                 AStarStrategy,
	"a-star":             AStarStrategy,
	"astarsearch":        AStarStrategy,
}

// ParseStrategy resolves a strategy name or alias, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, Strategies())
}

// Informed reports whether the strategy consumes a heuristic.
func (s Strategy) Informed() bool { return s == AStarStrategy }

// String returns the canonical name.
func (s Strategy) String() string { return string(s) }

// Solve dispatches to the named strategy. h is used only by AStar.
func Solve[S comparable, A any](s Strategy, p Problem[S, A], h Heuristic[S, A], opts ...Option) (*Result[A], error) {
	switch s {
	case DFS:
		return DepthFirst(p, opts...)
	case BFS:
		return BreadthFirst(p, opts...)
	case UCS:
		return UniformCost(p, opts...)
	case AStarStrategy:
		return AStar(p, h, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}
