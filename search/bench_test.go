package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/statespace/heuristics"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// benchBoards returns a fixed set of scrambled 8-puzzles.
func benchBoards(n, moves int) []puzzle.Board {
	rng := rand.New(rand.NewSource(7))
	out := make([]puzzle.Board, n)
	for i := range out {
		out[i] = puzzle.Scramble(puzzle.MustSolved(puzzle.EightPuzzle), moves, rng)
	}
	return out
}

func benchmarkStrategy(b *testing.B, st search.Strategy, h heuristics.Heuristic) {
	boards := benchBoards(16, 24)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := puzzle.NewProblem(boards[i%len(boards)])
		if _, err := search.Solve[puzzle.Board, puzzle.Move](st, p, h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBreadthFirst(b *testing.B) { benchmarkStrategy(b, search.BFS, nil) }

func BenchmarkUniformCost(b *testing.B) { benchmarkStrategy(b, search.UCS, nil) }

func BenchmarkAStar_Misplaced(b *testing.B) {
	benchmarkStrategy(b, search.AStarStrategy, heuristics.MisplacedTiles)
}

func BenchmarkAStar_Manhattan(b *testing.B) {
	benchmarkStrategy(b, search.AStarStrategy, heuristics.ManhattanDistance)
}
