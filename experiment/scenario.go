package experiment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/puzzle"
)

var scenarioHeader = []string{"PuzzleID", "State"}

// GenerateScenarios scrambles count solved size×size boards with moves random
// legal moves each. The same seed always yields the same scenarios. IDs start at 1.
func GenerateScenarios(count, moves, size int, seed int64) ([]Scenario, error) {
	if count < 0 || moves < 0 {
		return nil, fmt.Errorf("%w: count=%d moves=%d", ErrOptionViolation, count, moves)
	}
	solved, err := puzzle.Solved(size)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]Scenario, count)
	for i := range out {
		out[i] = Scenario{ID: i + 1, Board: puzzle.Scramble(solved, moves, rng)}
	}
	return out, nil
}

// WriteScenarios writes scenarios as CSV with a "PuzzleID,State" header.
func WriteScenarios(w io.Writer, scenarios []Scenario) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scenarioHeader); err != nil {
		return err
	}
	for _, s := range scenarios {
		if err := cw.Write([]string{strconv.Itoa(s.ID), puzzle.FormatRows(s.Board)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadScenarios parses CSV written by WriteScenarios. The State column may hold
// nested rows or a flat tile list.
func ReadScenarios(r io.Reader) ([]Scenario, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(scenarioHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidScenario)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if !strings.EqualFold(header[0], scenarioHeader[0]) || !strings.EqualFold(header[1], scenarioHeader[1]) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrInvalidScenario, header)
	}

	var out []Scenario
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: puzzle id %q", ErrInvalidScenario, line, row[0])
		}
		b, err := puzzle.ParseBoard(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidScenario, line, err)
		}
		out = append(out, Scenario{ID: id, Board: b})
	}
	return out, nil
}

// LoadScenarios reads the scenario file at path.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadScenarios(f)
}

// SaveScenarios writes scenarios to path, replacing any existing file.
func SaveScenarios(path string, scenarios []Scenario) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteScenarios(f, scenarios); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
