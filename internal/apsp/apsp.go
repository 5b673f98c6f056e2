// Package apsp computes all-pairs shortest paths over a topology
// snapshot using a modified Floyd-Warshall that threads a next-hop
// matrix alongside the usual distance matrix.
package apsp

import "github.com/okdaichi/tilfa/internal/topology"

// NoHop is the sentinel next-hop value meaning "no known successor".
const NoHop = -1

// Result is the tuple (D, Next) produced by Compute: the distance
// matrix and the primary next-hop (successor) matrix.
//
// Invariants (see topology.Weight for the edge-weight sentinel):
//   - Next[i][i] == i
//   - D[i][j] == 0 means i and j are unreachable, for i != j
//   - if Next[i][j] == k != NoHop and i != j, there is a real edge
//     i->k and following Next from i toward j terminates at j.
type Result struct {
	N    int
	D    [][]topology.Weight
	Next [][]int
}

// Compute runs the modified Floyd-Warshall over t, producing the
// distance and primary next-hop matrices. It performs exactly n^3
// relaxation triples with a deterministic k->i->j iteration order, so
// first-improvement wins and the primary successor for any input is
// reproducible.
//
// The loop shape (pre-declared indices, in-place relaxation, no early
// exit) mirrors a dense in-place Floyd-Warshall; next-hop is threaded
// through Next[i][k] (not k itself) so repeated successor lookups
// reconstruct the true first hop along the discovered path.
func Compute(t *topology.Topology) Result {
	n := t.N
	d := make([][]topology.Weight, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		d[i] = make([]topology.Weight, n)
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			d[i][j] = t.W[i][j]
			switch {
			case i == j:
				next[i][j] = i
			case t.W[i][j] > topology.NoEdge:
				next[i][j] = j
			default:
				next[i][j] = NoHop
			}
		}
	}

	var k, i, j int
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			dik := d[i][k]
			if dik <= topology.NoEdge {
				continue // i cannot reach k yet
			}
			for j = 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				dkj := d[k][j]
				if dkj <= topology.NoEdge {
					continue // k cannot reach j yet
				}
				cand := dik + dkj
				if d[i][j] <= topology.NoEdge || cand < d[i][j] {
					d[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return Result{N: n, D: d, Next: next}
}
