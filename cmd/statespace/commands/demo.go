package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

func newDemoCommand(a *app) *cobra.Command {
	var (
		board boardFlags
		sf    searchFlags
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve a puzzle with A* and step through the solution",
		Long: `demo solves a board with A* and replays the solution one move at a time.
Press Enter to apply the next move or type q to quit. When input ends the
remaining moves are printed without pausing.`,
		Example: `  statespace demo --size 3 --random 15 --seed 7
  statespace demo --tiles 1,2,3,4,5,6,0,7,8 --heuristic misplaced_tiles`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := board.board()
			if err != nil {
				return err
			}
			sf.strategy = search.AStarStrategy.String()
			plan, err := sf.plan(cmd, a)
			if err != nil {
				return err
			}
			defer plan.cancel()

			res, err := search.Solve[puzzle.Board, puzzle.Move](plan.strategy, puzzle.NewProblem(start), plan.h, plan.opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Start:\n%s\n", start)
			if !res.Found {
				fmt.Fprintln(out, "No solution found.")
				return nil
			}
			fmt.Fprintf(out, "%s found a %d-move solution after expanding %d nodes.\n",
				plan.label(), res.Depth(), res.NodesExpanded)

			in := bufio.NewScanner(cmd.InOrStdin())
			interactive := true
			cur := start
			for i, m := range res.Actions {
				if interactive {
					fmt.Fprintf(out, "\n[%d/%d] Enter for next move, q to quit: ", i+1, res.Depth())
					if !in.Scan() {
						interactive = false
					} else if strings.EqualFold(strings.TrimSpace(in.Text()), "q") {
						fmt.Fprintln(out, "\nStopped.")
						return nil
					}
				}
				if cur, err = cur.Result(m); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nMove %d: %s\n%s\n", i+1, m, cur)
			}
			fmt.Fprintln(out, "\nSolved.")
			return in.Err()
		},
	}

	board.register(cmd)
	sf.register(cmd, false)

	return cmd
}
