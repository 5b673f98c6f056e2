package secondary

import (
	"container/heap"
	"math"

	"github.com/okdaichi/tilfa/internal/apsp"
	"github.com/okdaichi/tilfa/internal/topology"
)

// dijkstra computes the shortest path from src to dst on t using
// Dijkstra's algorithm over non-negative integer weights, ties broken
// by lowest node index (the priority queue orders equal-cost entries
// by node index, so the lower-index node is settled first, and a
// later equal-cost route never replaces a parent pointer because
// relaxation requires a strictly smaller distance). It returns the ordered node
// sequence and total cost, or a nil path if dst is unreachable. It is
// a pure function of its input clone: it never errors.
func dijkstra(t *topology.Topology, src, dst int) ([]int, topology.Weight) {
	n := t.N
	dist := make([]topology.Weight, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = topology.Weight(math.MaxInt64)
		prev[i] = apsp.NoHop
	}
	dist[src] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: src, dist: 0})

	visited := make([]bool, n)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}

		for v := 0; v < n; v++ {
			w := t.W[u][v]
			if v == u || w <= topology.NoEdge {
				continue
			}
			alt := dist[u] + w
			if alt < dist[v] {
				dist[v] = alt
				prev[v] = u
				heap.Push(pq, &pqItem{node: v, dist: alt})
			}
		}
	}

	if dist[dst] == topology.Weight(math.MaxInt64) {
		return nil, 0
	}

	var path []int
	for at := dst; at != apsp.NoHop; at = prev[at] {
		path = append(path, at)
		if at == src {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst]
}

type pqItem struct {
	node  int
	dist  topology.Weight
	index int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
