package topology

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Topology is the value-semantic weighted adjacency matrix for a
// network of N nodes indexed 0..N-1.
//
// A Topology is created once by Load and never mutated thereafter by
// the scan driver; every failure scenario operates on an independent
// Clone. Invariants preserved by every operation: W[i][i] == 0 for
// all i, and W[i][j] == W[j][i] (the graph is undirected).
type Topology struct {
	N int
	W [][]Weight
}

// New creates an empty N-node topology with no edges.
func New(n int) *Topology {
	w := make([][]Weight, n)
	for i := range w {
		w[i] = make([]Weight, n)
	}
	return &Topology{N: n, W: w}
}

// Load parses a topology from r: the first whitespace-separated token
// is n, followed by n*n non-negative integer weights in row-major
// order. It fails with *InputError when the stream is truncated, a
// weight is negative, n < 1, any diagonal entry is non-zero, or tokens
// remain after the n*n weights (a non-square matrix).
func Load(r io.Reader) (*Topology, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	readInt := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, inputErrorf(err, "reading %s", what)
			}
			return 0, inputErrorf(nil, "unexpected end of input reading %s", what)
		}
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return 0, inputErrorf(err, "parsing %s %q", what, sc.Text())
		}
		return v, nil
	}

	n, err := readInt("n")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, inputErrorf(nil, "n must be >= 1, got %d", n)
	}

	t := New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := readInt(fmt.Sprintf("weight[%d][%d]", i, j))
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, inputErrorf(nil, "negative weight at [%d][%d]: %d", i, j, v)
			}
			if i == j && v != 0 {
				return nil, inputErrorf(nil, "diagonal entry [%d][%d] must be zero, got %d", i, j, v)
			}
			t.W[i][j] = Weight(v)
		}
	}
	if sc.Scan() {
		return nil, inputErrorf(nil, "unexpected token %q after the %dx%d weight matrix", sc.Text(), n, n)
	}
	return t, nil
}

// LoadFile opens path and delegates to Load. It fails with
// *InputError when the file cannot be opened.
func LoadFile(path string) (*Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inputErrorf(err, "opening %s", path)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Clone produces a deep, value-independent copy. No slice in the
// clone aliases a slice in the original.
func (t *Topology) Clone() *Topology {
	cp := New(t.N)
	for i := range t.W {
		copy(cp.W[i], t.W[i])
	}
	return cp
}

// RemoveNode disconnects node v from every other node (sets
// W[u][v] = W[v][u] = 0 for all u). It fails with *IndexError when v
// is out of range.
func (t *Topology) RemoveNode(v int) error {
	if v < 0 || v >= t.N {
		return &IndexError{Index: v, N: t.N}
	}
	for u := 0; u < t.N; u++ {
		t.W[u][v] = NoEdge
		t.W[v][u] = NoEdge
	}
	return nil
}

// RemoveLink removes the undirected edge between a and b (sets
// W[a][b] = W[b][a] = 0). It fails with *IndexError when either
// endpoint is out of range. Removing a non-existent link is a no-op,
// not an error.
func (t *Topology) RemoveLink(a, b int) error {
	if a < 0 || a >= t.N {
		return &IndexError{Index: a, N: t.N}
	}
	if b < 0 || b >= t.N {
		return &IndexError{Index: b, N: t.N}
	}
	t.W[a][b] = NoEdge
	t.W[b][a] = NoEdge
	return nil
}

// HasEdge reports whether there is a real edge from i to j.
func (t *Topology) HasEdge(i, j int) bool {
	return i != j && t.W[i][j] > NoEdge
}

// Edges returns every unordered edge {a,b} with a < b and weight > 0.
func (t *Topology) Edges() [][2]int {
	var edges [][2]int
	for a := 0; a < t.N; a++ {
		for b := a + 1; b < t.N; b++ {
			if t.W[a][b] > NoEdge {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	return edges
}
