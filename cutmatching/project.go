package cutmatching

import "github.com/kalexmills/cutmatching/unitflow"

// Matching is one round's worth of (split_index, split_index) pairs, as
// recorded by Solver.Compute and replayed by ProjectFlow.
type Matching = []unitflow.Pair[int, int]

// ProjectFlow replays every round's averaging pairs onto x in place and
// returns x: each pair (i, j) in a round pulls x[i] and x[j] to their
// shared average, the same update the driver folds into its running flow
// vector as each round's matching is found. Applying every recorded round
// in sequence reconstructs what the flow vector would be had averaging
// been deferred to the end, so the total sum of x is preserved and a
// coordinate only ever moves toward values it was actually matched with.
func ProjectFlow(rounds []Matching, x []float64) []float64 {
	for _, round := range rounds {
		for _, p := range round {
			i, j := p.First, p.Second
			x[i] = 0.5 * (x[i] + x[j])
			x[j] = x[i]
		}
	}
	return x
}
