package roadmap

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a place. Adding an existing place is a no-op.
// Returns ErrEmptyVertexID if id is empty.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]float64)
}

// HasVertex reports whether the place exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge adds the one-way road from→to, creating both places if needed.
// Re-adding an existing road overwrites its weight.
//
// Returns ErrEmptyVertexID or ErrNegativeWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: %s→%s = %v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adjacency[from][to] = weight

	return nil
}

// AddUndirected adds the road in both directions with the same weight.
func (g *Graph) AddUndirected(a, b string, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	return g.AddEdge(b, a, weight)
}

// SetPosition records the planar position of a place, creating it if needed.
func (g *Graph) SetPosition(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	g.positions[id] = Point{X: x, Y: y}

	return nil
}

// Position returns the recorded position of id, if any.
func (g *Graph) Position(id string) (Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.positions[id]

	return p, ok
}

// Neighbors returns the roads leaving id, sorted by destination ID for
// reproducible search order.
// Returns ErrVertexNotFound for an unknown place.
// Complexity: O(d log d)
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	edges := make([]Edge, 0, len(out))
	for to, w := range out {
		edges = append(edges, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// Weight returns the weight of the road from→to.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[from][to]

	return w, ok
}

// Vertices returns every place ID in sorted order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of places.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}
