package experiment

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const runsSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT    NOT NULL,
	puzzle_id   INTEGER NOT NULL,
	label       TEXT    NOT NULL,
	strategy    TEXT    NOT NULL,
	heuristic   TEXT    NOT NULL DEFAULT '',
	solved      INTEGER NOT NULL,
	depth       INTEGER,
	expanded    INTEGER NOT NULL,
	max_fringe  INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_run_id ON runs(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_label ON runs(label);
`

// SQLiteSink stores records in the runs table of a SQLite database.
type SQLiteSink struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// OpenSQLiteSink opens (creating if needed) the database at path and ensures the
// schema. An empty path opens an in-memory database.
func OpenSQLiteSink(ctx context.Context, path string) (*SQLiteSink, error) {
	dsn := ":memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("experiment: create directory for %s: %w", path, err)
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("experiment: open database: %w", err)
	}
	// one connection keeps writes serialized and an in-memory database alive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err = db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("experiment: set pragma: %w", err)
		}
	}
	if _, err = db.ExecContext(ctx, runsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("experiment: create schema: %w", err)
	}

	return &SQLiteSink{db: db, path: path}, nil
}

// Write inserts records in one transaction.
func (s *SQLiteSink) Write(ctx context.Context, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("experiment: sqlite sink %s is closed", s.path)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("experiment: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO runs (run_id, puzzle_id, label, strategy, heuristic, solved, depth, expanded, max_fringe, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("experiment: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		var depth sql.NullInt64
		if r.Solved {
			depth = sql.NullInt64{Int64: int64(r.Depth), Valid: true}
		}
		if _, err = stmt.ExecContext(ctx,
			r.RunID, r.PuzzleID, r.Label, r.Strategy, r.Heuristic,
			r.Solved, depth, r.Expanded, r.MaxFringe, int64(r.Duration),
		); err != nil {
			return fmt.Errorf("experiment: insert puzzle %d %q: %w", r.PuzzleID, r.Label, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("experiment: commit: %w", err)
	}
	return nil
}

// Records returns the records of runID in insertion order; an empty runID
// returns every record.
func (s *SQLiteSink) Records(ctx context.Context, runID string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT run_id, puzzle_id, label, strategy, heuristic, solved, depth, expanded, max_fringe, duration_ns
		FROM runs`
	var args []any
	if runID != "" {
		query += ` WHERE run_id = ?`
		args = append(args, runID)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("experiment: query runs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r     Record
			depth sql.NullInt64
			dur   int64
		)
		if err = rows.Scan(&r.RunID, &r.PuzzleID, &r.Label, &r.Strategy, &r.Heuristic,
			&r.Solved, &depth, &r.Expanded, &r.MaxFringe, &dur); err != nil {
			return nil, fmt.Errorf("experiment: scan run: %w", err)
		}
		if depth.Valid {
			r.Depth = int(depth.Int64)
		}
		r.Duration = time.Duration(dur)
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestRunID returns the run ID of the most recently inserted record, or ""
// when the table is empty.
func (s *SQLiteSink) LatestRunID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	err := s.db.QueryRowContext(ctx, `SELECT run_id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("experiment: latest run: %w", err)
	}
	return id, nil
}

// Close closes the database. Closing twice is a no-op.
func (s *SQLiteSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
