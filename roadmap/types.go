package roadmap

import (
	"errors"
	"sync"
)

// Sentinel errors for roadmap operations.
var (
	// ErrEmptyVertexID indicates that a place ID is empty.
	ErrEmptyVertexID = errors.New("roadmap: vertex ID is empty")

	// ErrNegativeWeight indicates a negative or NaN road weight.
	ErrNegativeWeight = errors.New("roadmap: negative edge weight")

	// ErrVertexNotFound indicates an operation referenced a non-existent place.
	ErrVertexNotFound = errors.New("roadmap: vertex not found")
)

// Edge is a one-way road From→To with a non-negative Weight.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Point is a planar position.
type Point struct {
	X, Y float64
}

// Graph is a directed weighted graph of places.
//
// mu guards every map; adjacency[from][to] holds the lightest road between the
// pair, so re-adding a road with a new weight replaces it.
type Graph struct {
	mu        sync.RWMutex
	vertices  map[string]struct{}
	adjacency map[string]map[string]float64
	positions map[string]Point
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]float64),
		positions: make(map[string]Point),
	}
}
