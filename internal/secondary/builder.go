// Package secondary builds, for every ordered pair (i, j), an
// edge-disjoint alternate next hop that avoids the primary first hop,
// by removing that link on a fresh topology clone and running
// single-source Dijkstra.
package secondary

import (
	"github.com/okdaichi/tilfa/internal/apsp"
	"github.com/okdaichi/tilfa/internal/topology"
)

// Build computes the secondary next-hop matrix for every (i, j) pair
// with i != j, using primary as the already-computed primary APSP
// result over the same pre-failure topology t.
//
// For each pair, the link between i and primary.Next[i][j] is removed
// (in both directions, via RemoveLink) from a fresh clone of t; a
// shortest path out of i never uses the reverse direction, so only
// the hop i -> primary.Next[i][j] is affected. Dijkstra is run from i to
// recover an edge-disjoint alternate via parent pointers. If that
// alternate has length >= 2, every consecutive hop (u, v) on it is
// installed into the result — provided the primary already differs
// at u (primary.Next[u][j] != v) — using first-writer-wins so the
// first (i, j) pair to reach a given (u, j) entry owns it
// deterministically.
func Build(t *topology.Topology, primary apsp.Result) [][]int {
	n := t.N
	next := make([][]int, n)
	for i := range next {
		next[i] = make([]int, n)
		for j := range next[i] {
			next[i][j] = apsp.NoHop
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			firstHop := primary.Next[i][j]
			if firstHop == apsp.NoHop {
				continue // no primary path to puncture
			}

			clone := t.Clone()
			clone.RemoveLink(i, firstHop) //nolint:errcheck // i, firstHop are always valid indices here

			detour, _ := dijkstra(clone, i, j)
			if len(detour) < 2 {
				continue
			}

			for k := 0; k+1 < len(detour); k++ {
				u, v := detour[k], detour[k+1]
				if primary.Next[u][j] == v {
					continue // primary already does this; no alternate needed here
				}
				if next[u][j] == apsp.NoHop {
					next[u][j] = v // first-writer-wins
				}
			}
		}
	}

	return next
}
