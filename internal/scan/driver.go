// Package scan runs the full single-failure sweep over a topology: a
// node-removal pass followed by a link-removal pass, comparing each
// post-failure APSP result against one shared pre-failure baseline.
package scan

import (
	"sync"

	"github.com/okdaichi/tilfa/internal/apsp"
	"github.com/okdaichi/tilfa/internal/pathrecon"
	"github.com/okdaichi/tilfa/internal/stats"
	"github.com/okdaichi/tilfa/internal/tilfa"
	"github.com/okdaichi/tilfa/internal/topology"
)

// PairOutcome is the label-counting result for one ordered (i, j)
// pair under one failure scenario.
type PairOutcome struct {
	I, J   int
	Before []int
	After  []int
	Labels int
	Events []tilfa.Event
	OK     bool // false when the pair is unreachable post-failure
}

// ScenarioResult groups every pair outcome produced by removing one
// node, or one link.
type ScenarioResult struct {
	IsNodeFailure bool
	Node          int // valid when IsNodeFailure
	A, B          int // valid when !IsNodeFailure
	Pairs         []PairOutcome
}

// Driver runs the node-pass + link-pass failure scan over a topology.
type Driver struct {
	// Concurrency is the worker count used to evaluate scenarios.
	// <= 1 runs scenarios sequentially. Output order is deterministic
	// (node pass ascending, then link pass in (a, b) lexical order)
	// regardless of concurrency, since results are collected by index
	// before the caller ever sees them.
	Concurrency int
}

// Run computes the pre-failure APSP once, evaluates every single-node
// and single-link removal scenario, records every reachable pair's
// label count into agg and every pair's post-failure reachability
// into reach, and returns the per-scenario results in deterministic
// order.
func (d *Driver) Run(t *topology.Topology, agg *stats.Aggregator, reach *stats.BinaryAggregator) []ScenarioResult {
	before := apsp.Compute(t)

	jobs := make([]func() ScenarioResult, 0, t.N+len(t.Edges()))
	for v := 0; v < t.N; v++ {
		v := v
		jobs = append(jobs, func() ScenarioResult {
			return evalNodeFailure(t, before, v)
		})
	}
	for _, e := range t.Edges() {
		a, b := e[0], e[1]
		jobs = append(jobs, func() ScenarioResult {
			return evalLinkFailure(t, before, a, b)
		})
	}

	results := make([]ScenarioResult, len(jobs))

	if d.Concurrency > 1 {
		sem := make(chan struct{}, d.Concurrency)
		var wg sync.WaitGroup
		for i, job := range jobs {
			i, job := i, job
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				results[i] = job()
			}()
		}
		wg.Wait()
	} else {
		for i, job := range jobs {
			results[i] = job()
		}
	}

	for _, r := range results {
		for _, p := range r.Pairs {
			reach.Record(p.OK)
			if p.OK {
				agg.Record(p.Labels)
			}
		}
	}

	return results
}

func evalNodeFailure(t *topology.Topology, before apsp.Result, v int) ScenarioResult {
	clone := t.Clone()
	clone.RemoveNode(v) //nolint:errcheck // v is always in [0, t.N) here
	after := apsp.Compute(clone)

	res := ScenarioResult{IsNodeFailure: true, Node: v}
	for i := 0; i < t.N; i++ {
		if i == v {
			continue
		}
		for j := 0; j < t.N; j++ {
			if j == v || j == i {
				continue
			}
			res.Pairs = append(res.Pairs, evalPair(before, after, i, j))
		}
	}
	return res
}

func evalLinkFailure(t *topology.Topology, before apsp.Result, a, b int) ScenarioResult {
	clone := t.Clone()
	clone.RemoveLink(a, b) //nolint:errcheck // a, b are always in [0, t.N) here
	after := apsp.Compute(clone)

	res := ScenarioResult{A: a, B: b}
	for i := 0; i < t.N; i++ {
		for j := 0; j < t.N; j++ {
			if i == j {
				continue
			}
			res.Pairs = append(res.Pairs, evalPair(before, after, i, j))
		}
	}
	return res
}

func evalPair(before, after apsp.Result, i, j int) PairOutcome {
	count, events, ok := tilfa.CountLabels(before, after, i, j)
	return PairOutcome{
		I:      i,
		J:      j,
		Before: pathrecon.Primary(before, i, j),
		After:  pathrecon.Primary(after, i, j),
		Labels: count,
		Events: events,
		OK:     ok,
	}
}
