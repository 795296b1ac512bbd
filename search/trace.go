package search

// Trace records per-iteration statistics of one search: the frontier size before
// each pop and the number of expansions. Attach it with Options; reuse across
// searches requires Reset.
type Trace struct {
	FringeSizes []int
	Expansions  int
}

// Options returns the observer options that feed t.
func (t *Trace) Options() []Option {
	return []Option{
		WithFringeObserver(t.observeFringe),
		WithExpansionObserver(t.observeExpansion),
	}
}

func (t *Trace) observeFringe(size int) { t.FringeSizes = append(t.FringeSizes, size) }

func (t *Trace) observeExpansion() { t.Expansions++ }

// MaxFringe returns the largest recorded frontier size.
func (t *Trace) MaxFringe() int {
	m := 0
	for _, s := range t.FringeSizes {
		if s > m {
			m = s
		}
	}
	return m
}

// Iterations returns the number of loop iterations observed.
func (t *Trace) Iterations() int { return len(t.FringeSizes) }

// Reset clears the trace for reuse.
func (t *Trace) Reset() {
	t.FringeSizes = t.FringeSizes[:0]
	t.Expansions = 0
}
