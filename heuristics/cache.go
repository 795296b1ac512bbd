package heuristics

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Cache memoizes a heuristic by board in a bounded LRU. The LRU is internally
// locked, so one Cache may back concurrent searches.
type Cache struct {
	h    Heuristic
	memo *lru.Cache[puzzle.Board, float64]
}

// NewCache wraps h with an LRU of the given size (> 0).
func NewCache(h Heuristic, size int) (*Cache, error) {
	if h == nil {
		return nil, fmt.Errorf("heuristics: nil heuristic")
	}
	memo, err := lru.New[puzzle.Board, float64](size)
	if err != nil {
		return nil, fmt.Errorf("heuristics: cache: %w", err)
	}
	return &Cache{h: h, memo: memo}, nil
}

// Heuristic returns the memoized heuristic function.
func (c *Cache) Heuristic() Heuristic {
	return c.estimate
}

func (c *Cache) estimate(b puzzle.Board, p search.Problem[puzzle.Board, puzzle.Move]) float64 {
	if v, ok := c.memo.Get(b); ok {
		return v
	}
	v := c.h(b, p)
	c.memo.Add(b, v)

	return v
}

// Len returns the number of memoized boards.
func (c *Cache) Len() int { return c.memo.Len() }

// Purge drops every memoized value.
func (c *Cache) Purge() { c.memo.Purge() }
