package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is an immutable N×N sliding-tile layout. 0 is the blank.
// The zero Board is invalid; build boards with NewBoard or Solved.
type Board struct {
	n     uint8
	blank uint8
	cells [MaxCells]uint8
}

// NewBoard builds a board from tiles in row-major order. len(tiles) must be 9 or 16
// and tiles must be a permutation of 0..len(tiles)-1.
func NewBoard(tiles []int) (Board, error) {
	var b Board
	switch len(tiles) {
	case EightPuzzle * EightPuzzle:
		b.n = EightPuzzle
	case FifteenPuzzle * FifteenPuzzle:
		b.n = FifteenPuzzle
	default:
		return Board{}, fmt.Errorf("%w: want 9 or 16 tiles, got %d", ErrInvalidBoard, len(tiles))
	}

	var seen [MaxCells]bool
	for i, t := range tiles {
		if t < 0 || t >= len(tiles) {
			return Board{}, fmt.Errorf("%w: tile %d out of range at index %d", ErrInvalidBoard, t, i)
		}
		if seen[t] {
			return Board{}, fmt.Errorf("%w: duplicate tile %d", ErrInvalidBoard, t)
		}
		seen[t] = true
		b.cells[i] = uint8(t)
		if t == 0 {
			b.blank = uint8(i)
		}
	}

	return b, nil
}

// MustBoard is like NewBoard but panics on invalid tiles.
func MustBoard(tiles ...int) Board {
	b, err := NewBoard(tiles)
	if err != nil {
		panic(err)
	}
	return b
}

// Solved returns the goal board of width n (3 or 4).
func Solved(n int) (Board, error) {
	if n != EightPuzzle && n != FifteenPuzzle {
		return Board{}, fmt.Errorf("%w: unsupported width %d", ErrInvalidBoard, n)
	}
	cells := n * n
	b := Board{n: uint8(n), blank: uint8(cells - 1)}
	for i := 0; i < cells-1; i++ {
		b.cells[i] = uint8(i + 1)
	}

	return b, nil
}

// MustSolved is like Solved but panics on an unsupported width.
func MustSolved(n int) Board {
	b, err := Solved(n)
	if err != nil {
		panic(err)
	}
	return b
}

// Size returns the board width N.
func (b Board) Size() int { return int(b.n) }

// Len returns the number of cells, N².
func (b Board) Len() int { return int(b.n) * int(b.n) }

// Valid reports whether b was built by NewBoard or Solved.
func (b Board) Valid() bool { return b.n != 0 }

// Cell returns the tile at row-major index i.
func (b Board) Cell(i int) int { return int(b.cells[i]) }

// At returns the tile at row r, column c.
func (b Board) At(r, c int) int { return int(b.cells[r*int(b.n)+c]) }

// Blank returns the row and column of the blank, or 0, 0 for the zero Board.
func (b Board) Blank() (row, col int) {
	n := int(b.n)
	if n == 0 {
		return 0, 0
	}
	return int(b.blank) / n, int(b.blank) % n
}

// Tiles returns the layout in row-major order.
func (b Board) Tiles() []int {
	out := make([]int, b.Len())
	for i := range out {
		out[i] = int(b.cells[i])
	}
	return out
}

// Rows returns the layout as a slice of rows.
func (b Board) Rows() [][]int {
	n := int(b.n)
	rows := make([][]int, n)
	for r := 0; r < n; r++ {
		rows[r] = make([]int, n)
		for c := 0; c < n; c++ {
			rows[r][c] = b.At(r, c)
		}
	}
	return rows
}

// IsGoal reports whether tiles read 1..N²-1 with the blank in the last cell.
func (b Board) IsGoal() bool {
	last := b.Len() - 1
	if last < 0 || int(b.blank) != last {
		return false
	}
	for i := 0; i < last; i++ {
		if int(b.cells[i]) != i+1 {
			return false
		}
	}
	return true
}

// LegalMoves returns the moves available to the blank, in up, down, left, right order.
// The zero Board has none.
func (b Board) LegalMoves() []Move {
	if !b.Valid() {
		return nil
	}
	row, col := b.Blank()
	last := int(b.n) - 1
	moves := make([]Move, 0, 4)
	if row != 0 {
		moves = append(moves, Up)
	}
	if row != last {
		moves = append(moves, Down)
	}
	if col != 0 {
		moves = append(moves, Left)
	}
	if col != last {
		moves = append(moves, Right)
	}
	return moves
}

// Result returns the board obtained by sliding the blank in direction m.
func (b Board) Result(m Move) (Board, error) {
	dr, dc, ok := m.delta()
	if !ok {
		return Board{}, fmt.Errorf("%w: unknown move %q", ErrIllegalMove, string(m))
	}
	row, col := b.Blank()
	nr, nc := row+dr, col+dc
	n := int(b.n)
	if nr < 0 || nr >= n || nc < 0 || nc >= n {
		return Board{}, fmt.Errorf("%w: %s from blank at (%d,%d)", ErrIllegalMove, m, row, col)
	}

	next := b
	target := uint8(nr*n + nc)
	next.cells[b.blank], next.cells[target] = next.cells[target], next.cells[b.blank]
	next.blank = target

	return next, nil
}

// Inversions counts tile pairs (blank excluded) that appear in the wrong relative order.
func (b Board) Inversions() int {
	inv := 0
	cells := b.Len()
	for i := 0; i < cells; i++ {
		if b.cells[i] == 0 {
			continue
		}
		for j := i + 1; j < cells; j++ {
			if b.cells[j] != 0 && b.cells[j] < b.cells[i] {
				inv++
			}
		}
	}
	return inv
}

// Solvable reports whether the goal is reachable from b.
//
//	odd width:  inversions must be even
//	even width: inversions + blank row counted from the bottom (1-based) must be odd
func (b Board) Solvable() bool {
	inv := b.Inversions()
	if b.n%2 == 1 {
		return inv%2 == 0
	}
	row, _ := b.Blank()
	fromBottom := int(b.n) - row

	return (inv+fromBottom)%2 == 1
}

// String renders the board as an ASCII grid with the blank left empty.
func (b Board) String() string {
	n := int(b.n)
	line := strings.Repeat("-", 5*n+1)

	var sb strings.Builder
	sb.WriteString(line)
	for r := 0; r < n; r++ {
		sb.WriteString("\n|")
		for c := 0; c < n; c++ {
			t := b.At(r, c)
			cell := ""
			if t != 0 {
				cell = strconv.Itoa(t)
			}
			fmt.Fprintf(&sb, " %2s |", cell)
		}
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String()
}

// Key returns a compact textual key, e.g. "1,2,3,4,5,6,7,8,0".
func (b Board) Key() string {
	var sb strings.Builder
	for i := 0; i < b.Len(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(b.cells[i])))
	}
	return sb.String()
}
