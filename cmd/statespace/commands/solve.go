package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/heuristics"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// solveReport is the --json form of a solve.
type solveReport struct {
	Start         []int         `json:"start"`
	Strategy      string        `json:"strategy"`
	Heuristic     string        `json:"heuristic,omitempty"`
	Found         bool          `json:"found"`
	Actions       []puzzle.Move `json:"actions"`
	Depth         int           `json:"depth"`
	Cost          float64       `json:"cost"`
	NodesExpanded int           `json:"nodes_expanded"`
	Expansions    int           `json:"expansions"`
	MaxFringe     int           `json:"max_fringe"`
	ElapsedMS     float64       `json:"elapsed_ms"`
}

// searchFlags holds the strategy selection flags shared by solve and demo.
type searchFlags struct {
	strategy   string
	heuristic  string
	depthLimit int
	timeout    time.Duration
}

func (f *searchFlags) register(cmd *cobra.Command, withStrategy bool) {
	if withStrategy {
		cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "dfs, bfs, ucs or astar (default from config)")
		cmd.Flags().IntVar(&f.depthLimit, "depth-limit", 0, "dfs depth bound, 0 tests only the start (default from config)")
	}
	cmd.Flags().StringVarP(&f.heuristic, "heuristic", "H", "", "heuristic for astar (default from config)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "cancel the search after this long, 0 for never (default from config)")
}

// searchPlan is a fully resolved single search.
type searchPlan struct {
	strategy  search.Strategy
	heuristic string
	h         heuristics.Heuristic
	depth     int
	timeout   time.Duration
	opts      []search.Option
	cancel    context.CancelFunc
}

// plan merges the flags set on cmd over the loaded configuration. The caller
// must call plan.cancel once the search returns.
func (f *searchFlags) plan(cmd *cobra.Command, a *app) (*searchPlan, error) {
	name := f.strategy
	if name == "" {
		name = a.cfg.Search.Strategy
	}
	st, err := search.ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	p := &searchPlan{
		strategy: st,
		depth:    a.cfg.Search.DepthLimit,
		timeout:  a.cfg.Search.Timeout,
	}
	if st.Informed() {
		p.heuristic = f.heuristic
		if p.heuristic == "" {
			p.heuristic = a.cfg.Search.Heuristic
		}
		if p.h, err = heuristics.Lookup(p.heuristic); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("depth-limit") {
		p.depth = f.depthLimit
	}
	if cmd.Flags().Changed("timeout") {
		p.timeout = f.timeout
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if p.timeout > 0 {
		ctx, p.cancel = context.WithTimeout(ctx, p.timeout)
	} else {
		ctx, p.cancel = context.WithCancel(ctx)
	}
	p.opts = []search.Option{
		search.WithContext(ctx),
		search.WithDepthLimit(p.depth),
		search.WithLogger(a.log),
	}
	return p, nil
}

// label is the report label, e.g. "astar (Manhattan Distance)".
func (p *searchPlan) label() string {
	if p.heuristic == "" {
		return p.strategy.String()
	}
	return p.strategy.String() + " (" + heuristics.Label(p.heuristic) + ")"
}

func newSolveCommand(a *app) *cobra.Command {
	var (
		board boardFlags
		sf    searchFlags
		steps bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one puzzle and report search statistics",
		Example: `  # A* with Manhattan distance on an explicit board
  statespace solve --tiles 1,2,3,4,5,6,7,8,9,10,11,12,13,0,14,15

  # Breadth-first search on a random 8-puzzle, printing every step
  statespace solve --size 3 --random 20 --strategy bfs --steps`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := board.board()
			if err != nil {
				return err
			}
			plan, err := sf.plan(cmd, a)
			if err != nil {
				return err
			}
			defer plan.cancel()

			began := time.Now()
			res, err := search.Solve[puzzle.Board, puzzle.Move](plan.strategy, puzzle.NewProblem(start), plan.h, plan.opts...)
			if err != nil {
				return err
			}
			elapsed := time.Since(began)

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), solveReport{
					Start:         start.Tiles(),
					Strategy:      plan.strategy.String(),
					Heuristic:     plan.heuristic,
					Found:         res.Found,
					Actions:       res.Actions,
					Depth:         res.Depth(),
					Cost:          res.Cost,
					NodesExpanded: res.NodesExpanded,
					Expansions:    res.Expansions,
					MaxFringe:     res.MaxFringe,
					ElapsedMS:     float64(elapsed.Microseconds()) / 1000,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Start:\n%s\n", start)
			fmt.Fprintf(out, "Strategy:       %s\n", plan.label())
			fmt.Fprintf(out, "Solved:         %t\n", res.Found)
			if res.Found {
				fmt.Fprintf(out, "Depth:          %d\n", res.Depth())
			} else {
				fmt.Fprintf(out, "Depth:          N/A\n")
			}
			fmt.Fprintf(out, "Nodes expanded: %d\n", res.NodesExpanded)
			fmt.Fprintf(out, "Expansions:     %d\n", res.Expansions)
			fmt.Fprintf(out, "Max fringe:     %d\n", res.MaxFringe)
			fmt.Fprintf(out, "Elapsed:        %s\n", elapsed.Round(time.Microsecond))
			fmt.Fprintf(out, "Actions:        %s\n", formatMoves(res.Actions))

			if steps && res.Found {
				return printSteps(out, start, res.Actions)
			}
			return nil
		},
	}

	board.register(cmd)
	sf.register(cmd, true)
	cmd.Flags().BoolVar(&steps, "steps", false, "print the board after every move")

	return cmd
}

func formatMoves(moves []puzzle.Move) string {
	if len(moves) == 0 {
		return "(none)"
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = string(m)
	}
	return strings.Join(parts, " ")
}

func printSteps(w io.Writer, start puzzle.Board, moves []puzzle.Move) error {
	cur := start
	for i, m := range moves {
		next, err := cur.Result(m)
		if err != nil {
			return err
		}
		cur = next
		fmt.Fprintf(w, "\nAfter move %d (%s):\n%s\n", i+1, m, cur)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
