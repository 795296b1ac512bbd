package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/puzzle"
)

// boardFlags selects a starting board: explicit tiles or a random scramble.
type boardFlags struct {
	tiles string
	moves int
	size  int
	seed  int64
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.tiles, "tiles", "t", "", `start tiles, e.g. "1,2,3,4,5,6,7,8,9,10,11,12,13,0,14,15"`)
	cmd.Flags().IntVar(&f.moves, "random", 25, "scramble a solved board with this many random moves when --tiles is empty")
	cmd.Flags().IntVar(&f.size, "size", puzzle.FifteenPuzzle, "board width for --random (3 or 4)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed for --random (0 uses the clock)")
}

func (f *boardFlags) board() (puzzle.Board, error) {
	if f.tiles != "" {
		b, err := puzzle.ParseBoard(f.tiles)
		if err != nil {
			return puzzle.Board{}, err
		}
		if !b.Solvable() {
			return puzzle.Board{}, fmt.Errorf("%w: board has no solution", puzzle.ErrInvalidBoard)
		}
		return b, nil
	}

	solved, err := puzzle.Solved(f.size)
	if err != nil {
		return puzzle.Board{}, err
	}
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return puzzle.Scramble(solved, f.moves, rand.New(rand.NewSource(seed))), nil
}
