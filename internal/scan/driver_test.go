package scan

import (
	"reflect"
	"strings"
	"testing"

	"github.com/okdaichi/tilfa/internal/stats"
	"github.com/okdaichi/tilfa/internal/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadT(t *testing.T, s string) *topology.Topology {
	t.Helper()
	topo, err := topology.Load(strings.NewReader(s))
	require.NoError(t, err)
	return topo
}

func TestDriver_CoversEveryNodeAndLinkScenario(t *testing.T) {
	topo := loadT(t, "4\n0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n") // 4-cycle, 4 edges
	agg := stats.New()
	results := (&Driver{}).Run(topo, agg, stats.NewBinary())

	assert.Len(t, results, topo.N+len(topo.Edges()), "one scenario per node plus one per edge")

	for v := 0; v < topo.N; v++ {
		assert.True(t, results[v].IsNodeFailure)
		assert.Equal(t, v, results[v].Node)
	}
	for k, e := range topo.Edges() {
		r := results[topo.N+k]
		assert.False(t, r.IsNodeFailure)
		assert.Equal(t, e[0], r.A)
		assert.Equal(t, e[1], r.B)
	}
}

func TestDriver_NodeFailureExcludesTheRemovedNode(t *testing.T) {
	topo := loadT(t, "3\n0 1 5\n1 0 1\n5 1 0\n")
	agg := stats.New()
	results := (&Driver{}).Run(topo, agg, stats.NewBinary())

	nodeResult := results[1] // removing node 1
	for _, p := range nodeResult.Pairs {
		assert.NotEqual(t, 1, p.I)
		assert.NotEqual(t, 1, p.J)
	}
}

func TestDriver_RecordsOnlyReachablePairsIntoAggregator(t *testing.T) {
	topo := loadT(t, "3\n0 1 0\n1 0 1\n0 1 0\n") // line 0-1-2, (0,2) depends on node 1
	agg := stats.New()
	results := (&Driver{}).Run(topo, agg, stats.NewBinary())

	var wantTotal int
	for _, r := range results {
		for _, p := range r.Pairs {
			if p.OK {
				wantTotal++
			}
		}
	}

	assert.Equal(t, wantTotal, agg.Snapshot().Total)
}

func TestDriver_RecordsEveryPairIntoReachabilityAggregator(t *testing.T) {
	topo := loadT(t, "3\n0 1 0\n1 0 1\n0 1 0\n") // line 0-1-2, (0,2) depends on node 1
	reach := stats.NewBinary()
	results := (&Driver{}).Run(topo, stats.New(), reach)

	var wantTotal, wantReachable int
	for _, r := range results {
		for _, p := range r.Pairs {
			wantTotal++
			if p.OK {
				wantReachable++
			}
		}
	}

	snap := reach.Snapshot()
	assert.Equal(t, wantTotal, snap.Total)
	assert.Equal(t, wantReachable, snap.OfInterest)
}

func TestDriver_ConcurrentMatchesSequential(t *testing.T) {
	topo := loadT(t, "5\n0 1 0 0 2\n1 0 3 0 0\n0 3 0 1 0\n0 0 1 0 4\n2 0 0 4 0\n")

	seqAgg, seqReach := stats.New(), stats.NewBinary()
	seq := (&Driver{Concurrency: 1}).Run(topo, seqAgg, seqReach)

	parAgg, parReach := stats.New(), stats.NewBinary()
	par := (&Driver{Concurrency: 4}).Run(topo, parAgg, parReach)

	assert.True(t, reflect.DeepEqual(seq, par), "scenario results must be identical regardless of concurrency")
	assert.Equal(t, seqAgg.Snapshot(), parAgg.Snapshot())
	assert.Equal(t, seqReach.Snapshot(), parReach.Snapshot())
}
