package cutmatching

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalexmills/cutmatching/unitflow"
)

// allSplitGraph builds a subdivision-shaped graph with every vertex marked
// as a split vertex and no edges between them. proposeCut never touches
// edges, only alive-ness and split indices, so this is enough to drive it
// directly without a real subdivision graph.
func allSplitGraph(k int) *unitflow.Graph {
	h := unitflow.NewGraph(k)
	for i := 0; i < k; i++ {
		h.MarkSplit(i)
	}
	return h
}

func newTestSolver(t *testing.T, k int, params Parameters) *Solver {
	t.Helper()
	g := unitflow.NewGraph(1)
	h := allSplitGraph(k)
	s, err := NewSolver(g, h, rand.New(rand.NewSource(1)), 0.1, params)
	require.NoError(t, err)
	return s
}

func TestProposeCutEmptyAFallbackRecovers(t *testing.T) {
	s := newTestSolver(t, 20, DefaultParameters())
	f := make([]float64, 20)
	for i := range f {
		f[i] = 5.0 // every split vertex lands exactly on avgFlow
	}

	axLeft, axRight := s.proposeCut(f)

	require.NotEmpty(t, axLeft)
	require.NotEmpty(t, axRight)
	require.LessOrEqual(t, len(axLeft), len(axRight))
}

func TestProposeCutHeavyLeftKeepsOutlierAlone(t *testing.T) {
	s := newTestSolver(t, 20, DefaultParameters())
	f := make([]float64, 20)
	f[7] = 1000 // a single far outlier, everything else at 0

	axLeft, axRight := s.proposeCut(f)

	require.Len(t, axLeft, 1)
	require.Equal(t, unitflow.Vertex(7), axLeft[0])
	require.Len(t, axRight, 19)
}

func TestProposeCutBalancedCutStrategyEqualizesSides(t *testing.T) {
	params := DefaultParameters()
	params.BalancedCutStrategy = true
	s := newTestSolver(t, 20, params)

	f := make([]float64, 20)
	for i := range f {
		f[i] = 5.0
	}

	axLeft, axRight := s.proposeCut(f)

	require.Equal(t, len(axLeft), len(axRight))
}

func TestProposeCutGenericFlowSatisfiesSizeInvariant(t *testing.T) {
	s := newTestSolver(t, 24, DefaultParameters())
	f := make([]float64, 24)
	for i := range f {
		f[i] = float64(i%7) - 3 // a mixed, non-monotone spread
	}

	axLeft, axRight := s.proposeCut(f)

	require.NotEmpty(t, axLeft)
	require.NotEmpty(t, axRight)
	require.LessOrEqual(t, len(axLeft), len(axRight))

	seen := map[unitflow.Vertex]bool{}
	for _, u := range axLeft {
		require.False(t, seen[u], "vertex %d appears twice", u)
		seen[u] = true
	}
	for _, u := range axRight {
		require.False(t, seen[u], "vertex %d appears on both sides", u)
		seen[u] = true
	}
}
