package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for puzzle operations.
var (
	// ErrInvalidBoard indicates tiles that do not form a supported board.
	ErrInvalidBoard = errors.New("puzzle: invalid board")

	// ErrIllegalMove indicates a move that is unknown or would push the blank off the board.
	ErrIllegalMove = errors.New("puzzle: illegal move")
)

// MaxCells is the number of cells of the largest supported board (4×4).
const MaxCells = 16

// Supported board widths.
const (
	EightPuzzle   = 3
	FifteenPuzzle = 4
)

// Move is the direction in which the blank slides.
type Move string

const (
	Up    Move = "up"
	Down  Move = "down"
	Left  Move = "left"
	Right Move = "right"
)

// Moves lists every move in the order LegalMoves reports them.
func Moves() []Move { return []Move{Up, Down, Left, Right} }

// delta returns the row/column offset of the blank for m.
func (m Move) delta() (dr, dc int, ok bool) {
	switch m {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	}
	return 0, 0, false
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return m
}

// ParseMove resolves a move name, case-insensitively.
func ParseMove(s string) (Move, error) {
	m := Move(strings.ToLower(strings.TrimSpace(s)))
	if _, _, ok := m.delta(); !ok {
		return "", fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	return m, nil
}
