package topology

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleInput() string {
	return "3\n0 1 5\n1 0 1\n5 1 0\n"
}

func TestLoad_Triangle(t *testing.T) {
	topo, err := Load(strings.NewReader(triangleInput()))
	require.NoError(t, err)
	assert.Equal(t, 3, topo.N)
	assert.Equal(t, Weight(1), topo.W[0][1])
	assert.Equal(t, Weight(5), topo.W[0][2])
	assert.Equal(t, Weight(0), topo.W[0][0])
}

func TestLoad_TruncatedInput(t *testing.T) {
	_, err := Load(strings.NewReader("3\n0 1 5\n1 0 1\n"))
	require.Error(t, err)
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
}

func TestLoad_NegativeWeight(t *testing.T) {
	_, err := Load(strings.NewReader("2\n0 -1\n-1 0\n"))
	require.Error(t, err)
}

func TestLoad_NonPositiveN(t *testing.T) {
	_, err := Load(strings.NewReader("0\n"))
	require.Error(t, err)
}

func TestLoad_NonZeroDiagonal(t *testing.T) {
	_, err := Load(strings.NewReader("2\n1 1\n1 0\n"))
	require.Error(t, err)
}

func TestClone_NoAliasing(t *testing.T) {
	topo, err := Load(strings.NewReader(triangleInput()))
	require.NoError(t, err)

	clone := topo.Clone()
	clone.W[0][1] = 99

	assert.Equal(t, Weight(1), topo.W[0][1], "mutating clone must not affect original")
	assert.Equal(t, Weight(99), clone.W[0][1])
}

func TestRemoveNode_IsolatesAllEdges(t *testing.T) {
	topo, err := Load(strings.NewReader(triangleInput()))
	require.NoError(t, err)

	require.NoError(t, topo.RemoveNode(1))

	for u := 0; u < topo.N; u++ {
		assert.Equal(t, Weight(0), topo.W[u][1], "W[%d][1] should be 0", u)
		assert.Equal(t, Weight(0), topo.W[1][u], "W[1][%d] should be 0", u)
	}
	// Edge 0-2 untouched.
	assert.Equal(t, Weight(5), topo.W[0][2])
	assert.Equal(t, Weight(5), topo.W[2][0])
}

func TestRemoveNode_OutOfRange(t *testing.T) {
	topo := New(3)
	err := topo.RemoveNode(5)
	require.Error(t, err)
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
}

func TestRemoveLink_DisablesExactlyOneEdge(t *testing.T) {
	topo, err := Load(strings.NewReader(triangleInput()))
	require.NoError(t, err)

	require.NoError(t, topo.RemoveLink(0, 1))

	assert.Equal(t, Weight(0), topo.W[0][1])
	assert.Equal(t, Weight(0), topo.W[1][0])
	assert.Equal(t, Weight(5), topo.W[0][2], "other entries must be unchanged")
	assert.Equal(t, Weight(1), topo.W[1][2], "other entries must be unchanged")
}

func TestRemoveLink_NonExistentIsNoop(t *testing.T) {
	topo := New(3)
	err := topo.RemoveLink(0, 2)
	require.NoError(t, err)
}

func TestRemoveLink_OutOfRange(t *testing.T) {
	topo := New(3)
	err := topo.RemoveLink(0, 9)
	require.Error(t, err)
}

func TestSymmetryPreserved_AfterMutations(t *testing.T) {
	topo, err := Load(strings.NewReader("4\n0 1 1 1\n1 0 1 1\n1 1 0 1\n1 1 1 0\n"))
	require.NoError(t, err)

	require.NoError(t, topo.RemoveLink(0, 1))
	require.NoError(t, topo.RemoveNode(2))

	for i := 0; i < topo.N; i++ {
		for j := 0; j < topo.N; j++ {
			assert.Equal(t, topo.W[i][j], topo.W[j][i], "symmetry broken at [%d][%d]", i, j)
		}
	}
}

func TestEdges_ListsUnorderedPairs(t *testing.T) {
	topo, err := Load(strings.NewReader(triangleInput()))
	require.NoError(t, err)

	edges := topo.Edges()
	assert.Len(t, edges, 3)
}
