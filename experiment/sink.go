package experiment

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Sink receives the records of a batch.
type Sink interface {
	Write(ctx context.Context, records []Record) error
	Close() error
}

// CSV column names.
const (
	colPuzzleID  = "PuzzleID"
	colLabel     = "Label"
	colStrategy  = "Strategy"
	colHeuristic = "Heuristic"
	colSolved    = "Solved"
	colDepth     = "Solution Depth"
	colExpanded  = "Expanded Nodes"
	colFringe    = "Max Fringe Size"
	colTime      = "Execution Time"
)

var recordHeader = []string{
	colPuzzleID, colLabel, colStrategy, colHeuristic, colSolved,
	colDepth, colExpanded, colFringe, colTime,
}

// notApplicable fills Solution Depth for unsolved searches.
const notApplicable = "N/A"

// CSVSink writes records as CSV rows under a fixed header. Execution Time is in
// seconds. It is safe for concurrent use.
type CSVSink struct {
	mu     sync.Mutex
	w      *csv.Writer
	closer io.Closer
	header bool
}

// NewCSVSink writes to w; Close flushes but does not close w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

// CreateCSVSink creates (or truncates) the file at path and owns it.
func CreateCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: create %s: %w", path, err)
	}
	return &CSVSink{w: csv.NewWriter(f), closer: f}, nil
}

// Write appends records and flushes.
func (s *CSVSink) Write(_ context.Context, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeHeaderLocked(); err != nil {
		return err
	}
	for _, r := range records {
		if err := s.w.Write(recordRow(r)); err != nil {
			return err
		}
	}
	s.w.Flush()

	return s.w.Error()
}

// Close writes the header if nothing was written, flushes and closes an owned file.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.writeHeaderLocked()
	s.w.Flush()
	err = errors.Join(err, s.w.Error())
	if s.closer != nil {
		err = errors.Join(err, s.closer.Close())
		s.closer = nil
	}
	return err
}

func (s *CSVSink) writeHeaderLocked() error {
	if s.header {
		return nil
	}
	s.header = true
	return s.w.Write(recordHeader)
}

func recordRow(r Record) []string {
	depth := notApplicable
	if r.Solved {
		depth = strconv.Itoa(r.Depth)
	}
	return []string{
		strconv.Itoa(r.PuzzleID),
		r.Label,
		r.Strategy,
		r.Heuristic,
		strconv.FormatBool(r.Solved),
		depth,
		strconv.Itoa(r.Expanded),
		strconv.Itoa(r.MaxFringe),
		strconv.FormatFloat(r.Duration.Seconds(), 'f', 9, 64),
	}
}

// ReadRecords parses results CSV. Columns are located by header name, so files
// holding only one of Label, Strategy or Heuristic are accepted; the first
// present fills Label.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidRecord)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colPuzzleID, colSolved, colDepth, colExpanded, colFringe, colTime} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidRecord, required)
		}
	}
	field := func(row []string, name string) string {
		if i, ok := idx[name]; ok {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}

		rec, err := parseRecord(row, field)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRecord, line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRecord(row []string, field func([]string, string) string) (Record, error) {
	var (
		rec Record
		err error
	)
	if rec.PuzzleID, err = strconv.Atoi(field(row, colPuzzleID)); err != nil {
		return rec, err
	}
	rec.Strategy = field(row, colStrategy)
	rec.Heuristic = field(row, colHeuristic)
	rec.Label = field(row, colLabel)
	if rec.Label == "" {
		rec.Label = rec.Strategy
	}
	if rec.Label == "" {
		rec.Label = rec.Heuristic
	}
	if rec.Solved, err = strconv.ParseBool(field(row, colSolved)); err != nil {
		return rec, err
	}
	if d := field(row, colDepth); d != notApplicable && d != "" {
		if rec.Depth, err = strconv.Atoi(d); err != nil {
			return rec, err
		}
	}
	if rec.Expanded, err = strconv.Atoi(field(row, colExpanded)); err != nil {
		return rec, err
	}
	if rec.MaxFringe, err = strconv.Atoi(field(row, colFringe)); err != nil {
		return rec, err
	}
	secs, err := strconv.ParseFloat(field(row, colTime), 64)
	if err != nil {
		return rec, err
	}
	rec.Duration = time.Duration(math.Round(secs * float64(time.Second)))

	return rec, nil
}

// LoadRecords reads the results CSV at path.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRecords(f)
}

// MultiSink fans records out to several sinks.
type MultiSink []Sink

// Write forwards records to every sink and joins their errors.
func (m MultiSink) Write(ctx context.Context, records []Record) error {
	var err error
	for _, s := range m {
		err = errors.Join(err, s.Write(ctx, records))
	}
	return err
}

// Close closes every sink and joins their errors.
func (m MultiSink) Close() error {
	var err error
	for _, s := range m {
		err = errors.Join(err, s.Close())
	}
	return err
}
