package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/experiment"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var (
		csvPath    string
		sqlitePath string
		runID      string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarize benchmark results per label",
		Long: `analyze reads benchmark records from a results CSV or a SQLite database and
prints per-label averages followed by the label with the fewest expanded
nodes, the shortest execution time and the smallest max fringe.

Without --run-id the SQLite source summarizes the most recent run.`,
		Example: `  statespace analyze --results results.csv
  statespace analyze --sqlite runs.db --run-id 6f1c2d9e-...`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if csvPath == "" && sqlitePath == "" {
				if sqlitePath = a.cfg.Bench.ResultsSQLite; sqlitePath == "" {
					csvPath = a.cfg.Bench.ResultsCSV
				}
			}

			var (
				records []experiment.Record
				err     error
			)
			if sqlitePath != "" {
				records, runID, err = loadRun(cmd, sqlitePath, runID)
			} else {
				records, err = experiment.LoadRecords(csvPath)
			}
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("%w: no records to analyze", experiment.ErrInvalidRecord)
			}

			summary := experiment.Summarize(records)
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			if runID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Run %s\n\n", runID)
			}
			_, err = summary.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVarP(&csvPath, "results", "r", "", "results CSV path")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "results SQLite path")
	cmd.Flags().StringVar(&runID, "run-id", "", "run to summarize (SQLite only; default latest)")
	cmd.MarkFlagsMutuallyExclusive("results", "sqlite")

	return cmd
}

// loadRun reads one run from the database at path, the latest when runID is empty.
func loadRun(cmd *cobra.Command, path, runID string) ([]experiment.Record, string, error) {
	db, err := experiment.OpenSQLiteSink(cmd.Context(), path)
	if err != nil {
		return nil, "", err
	}
	defer db.Close()

	if runID == "" {
		if runID, err = db.LatestRunID(cmd.Context()); err != nil {
			return nil, "", err
		}
		if runID == "" {
			return nil, "", fmt.Errorf("%w: %s holds no runs", experiment.ErrInvalidRecord, path)
		}
	}
	records, err := db.Records(cmd.Context(), runID)
	return records, runID, err
}
