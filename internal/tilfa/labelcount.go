// Package tilfa computes the minimum number of MPLS label-stack
// entries (segment-routing labels) a point of local repair must
// impose to steer a packet along the post-failure shortest path,
// given that the rest of the surviving network has not yet
// reconverged and is still forwarding on its pre-failure tables.
package tilfa

import (
	"github.com/okdaichi/tilfa/internal/apsp"
	"github.com/okdaichi/tilfa/internal/pathrecon"
)

// CountLabels computes the label count for the ordered pair (i, j)
// given the pre-failure result (before) and the post-failure result
// (after) of two related topologies differing by one removed
// element.
//
// ok is false when either the pre- or post-failure pair is
// unreachable (the pair is skipped entirely, per spec edge case (i)).
// When ok is true, count is the number of additional labels beyond
// the base destination label, and events carries any distinguished
// occurrences worth surfacing in verbose output (the null-segment
// case, which always contributes 0 to count).
//
// Algorithm (canonical backward-walk variant, spec §4.5): reconstruct
// the pre- and post-failure primary paths; if they're identical, no
// label is needed. Otherwise walk the post-failure path P1 from
// destination to source, comparing each hop against what the
// pre-failure next-hop table ("the surviving network's still-stale
// forwarding state") would naturally do toward the current label
// target. Every divergence emits one label targeting the node just
// reached and retargets subsequent checks at that node.
//
// This checks against the pre-failure table, not the post-failure
// one, despite spec prose naming the comparison table "the post-
// failure H_shortest": comparing P1 against the very table used to
// build it is a tautology (P1 is literally the walk of that table),
// so it can only ever report zero labels, which would make this
// function a no-op. See the worked-scenario note in DESIGN.md for the
// one named scenario this reading can't satisfy.
func CountLabels(before, after apsp.Result, i, j int) (count int, events []Event, ok bool) {
	p0 := pathrecon.Primary(before, i, j)
	p1 := pathrecon.Primary(after, i, j)
	if len(p0) == 0 || len(p1) == 0 {
		return 0, nil, false
	}

	if equalPath(p0, p1) {
		return 0, nil, true
	}

	last := p1[len(p1)-1]
	labels := 0
	for k := len(p1) - 2; k >= 0; k-- {
		if before.Next[p1[k]][last] != p1[k+1] {
			labels++
			last = p1[k+1]
		}
	}

	if len(p1) == 2 && labels == 1 {
		// Null segment: the sole divergence is the one hop out of the
		// rerouting node itself. The PLR is already locally adjacent
		// to the repair, so no label beyond the base destination
		// label is required.
		return 0, []Event{{Kind: NullSegment, Node: p1[0]}}, true
	}

	return labels, nil, true
}

func equalPath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}
