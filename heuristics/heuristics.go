package heuristics

import (
	"math"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Heuristic is the concrete heuristic type for the sliding-tile domain.
type Heuristic = search.Heuristic[puzzle.Board, puzzle.Move]

// goalCell returns the goal row and column of tile t (t > 0) on an n-wide board.
func goalCell(t, n int) (row, col int) {
	return (t - 1) / n, (t - 1) % n
}

// Null always returns 0.
func Null(puzzle.Board, search.Problem[puzzle.Board, puzzle.Move]) float64 { return 0 }

// MisplacedTiles counts tiles that are not on their goal cell.
func MisplacedTiles(b puzzle.Board, _ search.Problem[puzzle.Board, puzzle.Move]) float64 {
	misplaced := 0
	for i := 0; i < b.Len(); i++ {
		if t := b.Cell(i); t != 0 && t != i+1 {
			misplaced++
		}
	}
	return float64(misplaced)
}

// EuclideanDistance sums the straight-line distance of every tile to its goal cell.
func EuclideanDistance(b puzzle.Board, _ search.Problem[puzzle.Board, puzzle.Move]) float64 {
	n := b.Size()
	total := 0.0
	for i := 0; i < b.Len(); i++ {
		t := b.Cell(i)
		if t == 0 {
			continue
		}
		gr, gc := goalCell(t, n)
		dr, dc := float64(gr-i/n), float64(gc-i%n)
		total += math.Sqrt(dr*dr + dc*dc)
	}
	return total
}

// ManhattanDistance sums |Δrow| + |Δcol| of every tile to its goal cell.
func ManhattanDistance(b puzzle.Board, _ search.Problem[puzzle.Board, puzzle.Move]) float64 {
	n := b.Size()
	total := 0
	for i := 0; i < b.Len(); i++ {
		t := b.Cell(i)
		if t == 0 {
			continue
		}
		gr, gc := goalCell(t, n)
		total += abs(gr-i/n) + abs(gc-i%n)
	}
	return float64(total)
}

// RowColumnMisplacements adds the number of tiles outside their goal row to the
// number of tiles outside their goal column.
func RowColumnMisplacements(b puzzle.Board, _ search.Problem[puzzle.Board, puzzle.Move]) float64 {
	n := b.Size()
	rows, cols := 0, 0
	for i := 0; i < b.Len(); i++ {
		t := b.Cell(i)
		if t == 0 {
			continue
		}
		gr, gc := goalCell(t, n)
		if gr != i/n {
			rows++
		}
		if gc != i%n {
			cols++
		}
	}
	return float64(rows + cols)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
