package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/experiment"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		count int
		moves int
		size  int
		seed  int64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a scenario file of scrambled boards",
		Long: `generate scrambles the solved board with random legal moves and writes
one scenario per row. The same seed always produces the same file. Defaults
come from the bench section of the configuration.`,
		Example: `  statespace generate --count 100 --moves 25 --out scenarios.csv
  statespace generate --size 3 --count 10 --seed 42 --out -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc := a.cfg.Bench
			if cmd.Flags().Changed("count") {
				bc.Count = count
			}
			if cmd.Flags().Changed("moves") {
				bc.Moves = moves
			}
			if cmd.Flags().Changed("size") {
				bc.Size = size
			}
			if cmd.Flags().Changed("seed") {
				bc.Seed = seed
			}
			if cmd.Flags().Changed("out") {
				bc.Scenarios = out
			}

			scenarios, err := experiment.GenerateScenarios(bc.Count, bc.Moves, bc.Size, bc.Seed)
			if err != nil {
				return err
			}
			if bc.Scenarios == "-" {
				return experiment.WriteScenarios(cmd.OutOrStdout(), scenarios)
			}
			if err = experiment.SaveScenarios(bc.Scenarios, scenarios); err != nil {
				return err
			}

			a.log.Info().
				Int("count", len(scenarios)).
				Int("moves", bc.Moves).
				Int64("seed", bc.Seed).
				Str("path", bc.Scenarios).
				Msg("scenarios written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d scenarios to %s\n", len(scenarios), bc.Scenarios)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of scenarios")
	cmd.Flags().IntVar(&moves, "moves", 0, "random moves per scramble")
	cmd.Flags().IntVar(&size, "size", 0, "board width (3 or 4)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output path, "-" for stdout`)

	return cmd
}
