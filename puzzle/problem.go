package puzzle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/search"
)

// Problem casts a sliding-tile puzzle as a search problem with unit step costs.
type Problem struct {
	start Board
}

var _ search.Problem[Board, Move] = (*Problem)(nil)

// NewProblem returns a Problem starting from start. A zero Board start has no
// successors and is never a goal, so every strategy reports it unsolved.
func NewProblem(start Board) *Problem {
	return &Problem{start: start}
}

// StartState returns the starting board.
func (p *Problem) StartState() Board { return p.start }

// IsGoal reports whether b is solved.
func (p *Problem) IsGoal(b Board) bool { return b.IsGoal() }

// Successors returns one successor per legal move, each with cost 1.
func (p *Problem) Successors(b Board) []search.Successor[Board, Move] {
	moves := b.LegalMoves()
	out := make([]search.Successor[Board, Move], 0, len(moves))
	for _, m := range moves {
		next, err := b.Result(m)
		if err != nil {
			// LegalMoves only yields moves Result accepts
			panic(err)
		}
		out = append(out, search.Successor[Board, Move]{State: next, Action: m, Cost: 1})
	}
	return out
}

// CostOfActions returns the number of moves.
func (p *Problem) CostOfActions(actions []Move) float64 { return float64(len(actions)) }

// Replay applies actions to start in order and returns the final board.
func Replay(start Board, actions []Move) (Board, error) {
	cur := start
	for i, m := range actions {
		next, err := cur.Result(m)
		if err != nil {
			return cur, fmt.Errorf("step %d: %w", i+1, err)
		}
		cur = next
	}
	return cur, nil
}

// Scramble applies moves uniformly random legal moves to start. The walk may undo
// its own moves, so the optimal solution is usually shorter than moves.
func Scramble(start Board, moves int, rng *rand.Rand) Board {
	cur := start
	for i := 0; i < moves; i++ {
		legal := cur.LegalMoves()
		next, _ := cur.Result(legal[rng.Intn(len(legal))])
		cur = next
	}
	return cur
}

// ParseTiles reads a tile list written as "1,2,3", "1 2 3", "[1, 2, 3]" or the
// nested "[[1, 2], [3, 0]]" form and returns the flattened row-major tiles.
func ParseTiles(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '[', ']', '(', ')', ',', ';', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no tiles in %q", ErrInvalidBoard, s)
	}

	tiles := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: tile %q is not an integer", ErrInvalidBoard, f)
		}
		tiles[i] = v
	}
	return tiles, nil
}

// ParseBoard combines ParseTiles and NewBoard.
func ParseBoard(s string) (Board, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(tiles)
}

// FormatRows renders b as nested rows, e.g. "[[1, 2, 3], [4, 5, 6], [7, 8, 0]]".
func FormatRows(b Board) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r, row := range b.Rows() {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for c, t := range row {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(t))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
