// Package sink writes the textual report a scan run produces: one
// header per failure scenario, the before/after paths and label count
// for each evaluated pair, and a closing statistics block. Every
// writer takes an io.Writer so the core scan/tilfa/stats packages stay
// free of any notion of "where output goes."
package sink

import (
	"fmt"
	"io"

	"github.com/okdaichi/tilfa/internal/stats"
)

// Sink formats a scan run onto an underlying io.Writer. Node indices
// are always displayed 1-indexed, matching the original tool's
// convention.
type Sink struct {
	w io.Writer
}

// New wraps w in a Sink.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// LinkFailureHeader announces the start of a link-removal scenario.
func (s *Sink) LinkFailureHeader(a, b int) {
	fmt.Fprintf(s.w, "\nLink %d->%d removed:\n", a+1, b+1)
}

// NodeFailureHeader announces the start of a node-removal scenario.
func (s *Sink) NodeFailureHeader(v int) {
	fmt.Fprintf(s.w, "\nNode %d removed:\n", v+1)
}

// Path writes one 1-indexed, space-separated node sequence. An empty
// path (the pair is unreachable) prints a blank line.
func (s *Sink) Path(path []int) {
	for _, node := range path {
		fmt.Fprintf(s.w, "%d ", node+1)
	}
	fmt.Fprintln(s.w)
}

// PairResult writes the before/after paths for one (i, j) pair
// followed by its label count, or a skip note if the pair is
// unreachable post-failure.
func (s *Sink) PairResult(i, j int, before, after []int, labelCount int, ok bool) {
	fmt.Fprintf(s.w, "\n%d -> %d:\n", i+1, j+1)
	s.Path(before)
	if !ok {
		fmt.Fprintln(s.w, "(unreachable after failure, skipped)")
		return
	}
	s.Path(after)
	fmt.Fprintf(s.w, "labels required: %d\n", labelCount)
}

// Stats writes the closing six-bin histogram, matching the original
// tool's "Total times rerouting was needed" summary.
func (s *Sink) Stats(summary stats.Summary) {
	fmt.Fprintf(s.w, "\nTotal times rerouting was needed: %d\n", summary.Total)
	fmt.Fprint(s.w, "Number of labels required: 0 1 2 3 4 4<\n")
	fmt.Fprint(s.w, "Times this many were required: ")
	for _, c := range summary.Bins {
		fmt.Fprintf(s.w, "%d ", c)
	}
	fmt.Fprintln(s.w)
	fmt.Fprint(s.w, "Percentage this many were required: ")
	for bin := range summary.Bins {
		fmt.Fprintf(s.w, "%.2f%% ", summary.Percentage(bin))
	}
	fmt.Fprintln(s.w)
}

// Reachability writes the binary aggregator's "still reachable after
// failure" ratio over the whole scan.
func (s *Sink) Reachability(summary stats.BinarySummary) {
	fmt.Fprintf(s.w, "Pairs reachable after failure: %d/%d (%.2f%%)\n",
		summary.OfInterest, summary.Total, summary.Percentage())
}
