package stats

import "sync"

// BinaryAggregator counts how many of a stream of observed events
// matched some binary condition of interest ("still reachable after
// failure", "needed any rerouting at all") against how many events
// were observed in total. This is the simpler counterpart to
// Aggregator's six-bin histogram: a single interesting/total ratio
// rather than a distribution.
type BinaryAggregator struct {
	mu         sync.Mutex
	total      int
	ofInterest int
}

// NewBinary creates an empty BinaryAggregator.
func NewBinary() *BinaryAggregator {
	return &BinaryAggregator{}
}

// Record adds one observation. interesting marks whether this
// particular event counts toward the "of interest" tally.
func (b *BinaryAggregator) Record(interesting bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.total++
	if interesting {
		b.ofInterest++
	}
}

// Reset clears all accumulated observations.
func (b *BinaryAggregator) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.total = 0
	b.ofInterest = 0
}

// BinarySummary is an immutable snapshot of a BinaryAggregator's
// state.
type BinarySummary struct {
	Total      int
	OfInterest int
}

// Snapshot returns the current totals without mutating the
// BinaryAggregator.
func (b *BinaryAggregator) Snapshot() BinarySummary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BinarySummary{Total: b.total, OfInterest: b.ofInterest}
}

// Percentage returns what fraction of observations were of interest,
// as a value in [0, 100]. It returns 0 when no observations have been
// recorded yet.
func (s BinarySummary) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.OfInterest) / float64(s.Total) * 100
}
