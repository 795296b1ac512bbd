package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/heuristics"
	"github.com/katalvlaran/statespace/search"
)

type heuristicInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func newHeuristicsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "heuristics",
		Aliases: []string{"list"},
		Short:   "List registered strategies and heuristics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := heuristics.Names()
			if a.jsonOutput {
				infos := make([]heuristicInfo, len(names))
				for i, n := range names {
					infos[i] = heuristicInfo{Name: n, Label: heuristics.Label(n)}
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"strategies": search.Strategies(),
					"heuristics": infos,
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "STRATEGY")
			for _, s := range search.Strategies() {
				fmt.Fprintf(tw, "%s\n", s)
			}
			fmt.Fprintln(tw, "\nHEURISTIC\tLABEL")
			for _, n := range names {
				fmt.Fprintf(tw, "%s\t%s\n", n, heuristics.Label(n))
			}
			return tw.Flush()
		},
	}
}
