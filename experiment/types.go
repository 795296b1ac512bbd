package experiment

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/statespace/heuristics"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Sentinel errors for experiment operations.
var (
	// ErrInvalidScenario indicates a scenario row that is not a valid board.
	ErrInvalidScenario = errors.New("experiment: invalid scenario")

	// ErrUnknownPreset indicates an unregistered preset name.
	ErrUnknownPreset = errors.New("experiment: unknown preset")

	// ErrInvalidTrial indicates a trial with an unknown strategy or heuristic.
	ErrInvalidTrial = errors.New("experiment: invalid trial")

	// ErrInvalidRecord indicates a results row that cannot be parsed.
	ErrInvalidRecord = errors.New("experiment: invalid record")

	// ErrOptionViolation indicates an invalid RunnerOption.
	ErrOptionViolation = errors.New("experiment: invalid option supplied")
)

// Scenario is one numbered starting board.
type Scenario struct {
	ID    int
	Board puzzle.Board
}

// Trial is one labelled search configuration. Heuristic is ignored by
// uninformed strategies.
type Trial struct {
	Label     string
	Strategy  search.Strategy
	Heuristic string
}

// resolve canonicalizes the strategy and looks up the heuristic; the heuristic
// is nil for uninformed strategies.
func (t Trial) resolve() (search.Strategy, heuristics.Heuristic, error) {
	st, err := search.ParseStrategy(string(t.Strategy))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrInvalidTrial, t.Label, err)
	}
	if !st.Informed() {
		return st, nil, nil
	}
	h, err := heuristics.Lookup(t.heuristicName())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrInvalidTrial, t.Label, err)
	}
	return st, h, nil
}

func (t Trial) heuristicName() string {
	if t.Heuristic == "" {
		return heuristics.NameNull
	}
	return t.Heuristic
}

// Record is the outcome of one search in a batch.
type Record struct {
	RunID     string
	PuzzleID  int
	Label     string
	Strategy  string
	Heuristic string
	Solved    bool
	Depth     int // meaningful only when Solved
	Expanded  int // successor generations (search.Result.Expansions)
	MaxFringe int
	Duration  time.Duration
}

// Preset names.
const (
	PresetHeuristics = "heuristics"
	PresetStrategies = "strategies"
)

// Presets lists the registered preset names.
func Presets() []string { return []string{PresetHeuristics, PresetStrategies} }

// Preset returns the trial list registered under name.
func Preset(name string) ([]Trial, error) {
	switch name {
	case PresetHeuristics:
		informative := heuristics.Informative()
		trials := make([]Trial, 0, len(informative))
		for _, h := range informative {
			trials = append(trials, Trial{
				Label:     "A* with " + heuristics.Label(h),
				Strategy:  search.AStarStrategy,
				Heuristic: h,
			})
		}
		return trials, nil
	case PresetStrategies:
		return []Trial{
			{Label: "DFS", Strategy: search.DFS},
			{Label: "BFS", Strategy: search.BFS},
			{Label: "UCS", Strategy: search.UCS},
			{
				Label:     "A* with " + heuristics.Label(heuristics.NameManhattanDistance),
				Strategy:  search.AStarStrategy,
				Heuristic: heuristics.NameManhattanDistance,
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, Presets())
	}
}
