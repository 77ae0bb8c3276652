package cutmatching

import (
	"sort"

	"github.com/kalexmills/cutmatching/unitflow"
)

// proposeCut partitions the currently alive split vertices into a source
// side A and a sink side R, guided by the flow vector f (indexed by split
// index): vertices below the average flow are candidates for A, the rest
// for R, with the split refined by how much potential A concentrates
// relative to the whole and trimmed so A stays a small minority of the
// alive split vertices (or exactly balances R, under the balanced-cut
// variant).
func (s *Solver) proposeCut(f []float64) (axLeft, axRight []unitflow.Vertex) {
	alive := s.aliveSplitVertices()
	curSplitCount := len(alive)

	var avgFlow float64
	for _, u := range alive {
		avgFlow += f[s.subdivGraph.SplitIndex(u)]
	}
	avgFlow /= float64(curSplitCount)

	for _, u := range alive {
		if f[s.subdivGraph.SplitIndex(u)] < avgFlow {
			axLeft = append(axLeft, u)
		} else {
			axRight = append(axRight, u)
		}
	}

	leftLarger := len(axLeft) > len(axRight)
	if leftLarger {
		axLeft, axRight = axRight, axLeft
	}

	var totalPotential, leftPotential float64
	for _, u := range alive {
		d := f[s.subdivGraph.SplitIndex(u)] - avgFlow
		totalPotential += d * d
	}
	for _, u := range axLeft {
		d := f[s.subdivGraph.SplitIndex(u)] - avgFlow
		leftPotential += d * d
	}

	byFlow := func(vs []unitflow.Vertex) func(i, j int) bool {
		return func(i, j int) bool {
			return f[s.subdivGraph.SplitIndex(vs[i])] < f[s.subdivGraph.SplitIndex(vs[j])]
		}
	}
	sort.Slice(axLeft, byFlow(axLeft))
	sort.Slice(axRight, byFlow(axRight))

	switch {
	case len(axLeft) == 0:
		// Floating-point degeneracy: every split vertex landed exactly at
		// avgFlow's boundary, leaving A empty. Recovered by moving vertices
		// off the top of R until A is at least as large as R, then swapping
		// the sides if A ended up larger.
		for len(axLeft) < len(axRight) {
			last := axRight[len(axRight)-1]
			axRight = axRight[:len(axRight)-1]
			axLeft = append(axLeft, last)
		}
		if len(axLeft) > len(axRight) {
			axLeft, axRight = axRight, axLeft
		}

	case leftPotential > totalPotential/20.0:
		if !leftLarger {
			reverseVertices(axRight)
		}

	default:
		var l float64
		for _, u := range axLeft {
			l += abs(f[s.subdivGraph.SplitIndex(u)] - avgFlow)
		}
		mu := avgFlow + 4.0*l/float64(curSplitCount)
		hi := avgFlow + 6.0*l/float64(curSplitCount)

		axLeft = axLeft[:0]
		axRight = axRight[:0]
		for _, u := range alive {
			v := f[s.subdivGraph.SplitIndex(u)]
			switch {
			case v < mu:
				axRight = append(axRight, u)
			case v >= hi:
				axLeft = append(axLeft, u)
			}
		}
		reverseVertices(axRight)
	}

	if len(axLeft) == 0 {
		panic("cutmatching: proposed cut has empty A after fallback")
	}

	if s.params.BalancedCutStrategy {
		for len(axRight) > 0 && len(axRight) > len(axLeft) {
			axRight = axRight[:len(axRight)-1]
		}
		if len(axLeft) != len(axRight) {
			panic("cutmatching: balanced cut strategy failed to equalize A and R")
		}
	} else {
		if leftLarger {
			reverseVertices(axLeft)
		}
		for len(axLeft)*8 > curSplitCount {
			axLeft = axLeft[:len(axLeft)-1]
		}
	}

	if len(axRight) == 0 || len(axLeft) > len(axRight) {
		panic("cutmatching: proposed cut violates |A| <= |R|")
	}

	return axLeft, axRight
}
