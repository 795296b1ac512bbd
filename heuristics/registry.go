package heuristics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownHeuristic is returned by Lookup for an unregistered name.
var ErrUnknownHeuristic = errors.New("heuristics: unknown heuristic")

// Registered names.
const (
	NameNull                   = "null"
	NameMisplacedTiles         = "misplaced_tiles"
	NameEuclideanDistance      = "euclidean_distance"
	NameManhattanDistance      = "manhattan_distance"
	NameRowColumnMisplacements = "row_column_misplacements"
)

// names fixes the listing order.
var names = []string{
	NameNull,
	NameMisplacedTiles,
	NameEuclideanDistance,
	NameManhattanDistance,
	NameRowColumnMisplacements,
}

var registry = map[string]Heuristic{
	NameNull:                   Null,
	NameMisplacedTiles:         MisplacedTiles,
	NameEuclideanDistance:      EuclideanDistance,
	NameManhattanDistance:      ManhattanDistance,
	NameRowColumnMisplacements: RowColumnMisplacements,
}

// labels are the human-readable names used in reports.
var labels = map[string]string{
	NameNull:                   "Null",
	NameMisplacedTiles:         "Misplaced Tiles",
	NameEuclideanDistance:      "Euclidean Distance",
	NameManhattanDistance:      "Manhattan Distance",
	NameRowColumnMisplacements: "Row-Column Misplacements",
}

// Names returns every registered heuristic name.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Lookup returns the heuristic registered under name.
func Lookup(name string) (Heuristic, error) {
	h, ok := registry[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownHeuristic, name, strings.Join(names, ", "))
	}
	return h, nil
}

// Label returns the display label for a registered name, or the name itself.
func Label(name string) string {
	if l, ok := labels[name]; ok {
		return l
	}
	return name
}

// Informative returns the registered heuristics other than null, in listing order.
func Informative() []string {
	return Names()[1:]
}
