package experiment

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// LabelStats aggregates the records of one label. Averages cover every record,
// solved or not, except AvgDepth which covers solved records only.
type LabelStats struct {
	Label        string        `json:"label"`
	Runs         int           `json:"runs"`
	Solved       int           `json:"solved"`
	AvgExpanded  float64       `json:"avg_expanded"`
	AvgDuration  time.Duration `json:"avg_duration_ns"`
	AvgMaxFringe float64       `json:"avg_max_fringe"`
	AvgDepth     float64       `json:"avg_depth"`
}

// Summary compares labels across a batch.
type Summary struct {
	Labels []LabelStats // first-appearance order

	// Winners per metric; ties go to the label listed first.
	LeastExpanded string
	LeastTime     string
	LeastFringe   string
}

// Summarize groups records by label and picks the winners.
func Summarize(records []Record) *Summary {
	type acc struct {
		runs, solved     int
		expanded, fringe float64
		depth            float64
		duration         time.Duration
	}
	var order []string
	accs := make(map[string]*acc)
	for _, r := range records {
		a, ok := accs[r.Label]
		if !ok {
			a = &acc{}
			accs[r.Label] = a
			order = append(order, r.Label)
		}
		a.runs++
		a.expanded += float64(r.Expanded)
		a.fringe += float64(r.MaxFringe)
		a.duration += r.Duration
		if r.Solved {
			a.solved++
			a.depth += float64(r.Depth)
		}
	}

	s := &Summary{Labels: make([]LabelStats, 0, len(order))}
	for _, label := range order {
		a := accs[label]
		st := LabelStats{
			Label:        label,
			Runs:         a.runs,
			Solved:       a.solved,
			AvgExpanded:  a.expanded / float64(a.runs),
			AvgDuration:  a.duration / time.Duration(a.runs),
			AvgMaxFringe: a.fringe / float64(a.runs),
		}
		if a.solved > 0 {
			st.AvgDepth = a.depth / float64(a.solved)
		}
		s.Labels = append(s.Labels, st)
	}

	s.LeastExpanded = s.winner(func(l LabelStats) float64 { return l.AvgExpanded })
	s.LeastTime = s.winner(func(l LabelStats) float64 { return float64(l.AvgDuration) })
	s.LeastFringe = s.winner(func(l LabelStats) float64 { return l.AvgMaxFringe })

	return s
}

func (s *Summary) winner(metric func(LabelStats) float64) string {
	best, label := 0.0, ""
	for i, l := range s.Labels {
		if v := metric(l); i == 0 || v < best {
			best, label = v, l.Label
		}
	}
	return label
}

// Stats returns the aggregate for label.
func (s *Summary) Stats(label string) (LabelStats, bool) {
	for _, l := range s.Labels {
		if l.Label == label {
			return l, true
		}
	}
	return LabelStats{}, false
}

// WriteTo renders the summary as an aligned table followed by the winners.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tRUNS\tSOLVED\tAVG EXPANDED\tAVG TIME\tAVG MAX FRINGE\tAVG DEPTH")
	for _, l := range s.Labels {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%s\t%.1f\t%.2f\n",
			l.Label, l.Runs, l.Solved, l.AvgExpanded, l.AvgDuration.Round(time.Microsecond), l.AvgMaxFringe, l.AvgDepth)
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	if len(s.Labels) > 0 {
		least := func(metric, label, value string) {
			fmt.Fprintf(&sb, "Winner for least %s: %s (%s)\n", metric, label, value)
		}
		e, _ := s.Stats(s.LeastExpanded)
		t, _ := s.Stats(s.LeastTime)
		f, _ := s.Stats(s.LeastFringe)
		sb.WriteByte('\n')
		least("expanded nodes", e.Label, fmt.Sprintf("%.1f", e.AvgExpanded))
		least("execution time", t.Label, t.AvgDuration.Round(time.Microsecond).String())
		least("max fringe size", f.Label, fmt.Sprintf("%.1f", f.AvgMaxFringe))
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
