package unitflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalexmills/cutmatching/unitflow"
)

func TestAddEdgeRejectsUnknownVertexAndSelfLoop(t *testing.T) {
	g := unitflow.NewGraph(3)
	require.ErrorIs(t, g.AddEdge(0, 5, 1), unitflow.ErrUnknownVertex)
	require.ErrorIs(t, g.AddEdge(1, 1, 1), unitflow.ErrSelfLoop)
}

func TestDegreeCountsOnlyAliveNeighbours(t *testing.T) {
	g := unitflow.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))

	require.Equal(t, 3, g.Degree(0))
	require.EqualValues(t, 3, g.EdgeCount())

	g.Remove(1)
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 3, g.Size())
	require.Equal(t, 1, g.RemovedSize())
}

func TestRestoreRemovedRecomputesDegree(t *testing.T) {
	g := unitflow.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	g.Remove(1)
	require.Equal(t, 0, g.Degree(0))
	require.Equal(t, 0, g.Degree(2))

	g.RestoreRemoved()
	require.Equal(t, 0, g.RemovedSize())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(1))
	require.Equal(t, 1, g.Degree(2))
}

func TestReverseIsAntisymmetricPosition(t *testing.T) {
	g := unitflow.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 7))

	e := *g.EdgeAt(0, 0)
	rev := g.Reverse(e)
	require.Equal(t, 1, rev.From)
	require.Equal(t, 0, rev.To)
	require.EqualValues(t, 7, rev.Capacity)
}

func TestReindexSplitVerticesAssignsDenseIndices(t *testing.T) {
	g := unitflow.NewGraph(5)
	g.MarkSplit(2)
	g.MarkSplit(4)

	n := g.ReindexSplitVertices()
	require.Equal(t, 2, n)
	require.Equal(t, 2, g.NumSplit())

	require.GreaterOrEqual(t, g.SplitIndex(2), 0)
	require.GreaterOrEqual(t, g.SplitIndex(4), 0)
	require.Equal(t, -1, g.SplitIndex(0))

	require.Equal(t, 2, g.FromSplitIndex(g.SplitIndex(2)))
	require.Equal(t, 4, g.FromSplitIndex(g.SplitIndex(4)))
}

func TestVolumeOfSumsDegrees(t *testing.T) {
	g := unitflow.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	require.EqualValues(t, 4, g.Volume())
	require.EqualValues(t, 1, g.VolumeOf([]int{0}))
	require.EqualValues(t, 2, g.VolumeOf([]int{1}))
}
