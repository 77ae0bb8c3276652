package unitflow

import "fmt"

// SanityCheck verifies the per-edge invariants of a graph that has had a
// flow computed: every directed edge's flow sits within
// [-capacity, capacity], its reverse carries the negated flow, and
// congestion matches its reverse and is non-negative. It also checks that
// no vertex's absorbed mass went negative.
//
// This is not one of the core flow-engine operations; it exists so client
// code and this package's own tests can assert these invariants directly
// rather than confining the checks to _test.go.
func SanityCheck(g *Graph) error {
	for u := range g.adj {
		if g.absorbed[u] < 0 {
			return fmt.Errorf("unitflow: vertex %d has negative absorbed mass %d", u, g.absorbed[u])
		}
		for i := range g.adj[u] {
			e := g.adj[u][i]
			rev := g.adj[e.To][e.BackIndex]

			if e.Flow+rev.Flow != 0 {
				return fmt.Errorf("unitflow: edge %d->%d has flow %d but reverse %d->%d has flow %d, want antisymmetric pair",
					e.From, e.To, e.Flow, rev.From, rev.To, rev.Flow)
			}
			if e.Flow > e.Capacity || e.Flow < -e.Capacity {
				return fmt.Errorf("unitflow: edge %d->%d has flow %d exceeding capacity %d", e.From, e.To, e.Flow, e.Capacity)
			}
			if e.Congestion != rev.Congestion {
				return fmt.Errorf("unitflow: edge %d->%d has congestion %d but reverse has %d", e.From, e.To, e.Congestion, rev.Congestion)
			}
			if e.Congestion < 0 {
				return fmt.Errorf("unitflow: edge %d->%d has negative congestion %d", e.From, e.To, e.Congestion)
			}
		}
	}
	return nil
}

// SanityCheckConservation verifies that total absorbed mass across every
// vertex equals the mass seeded via AddSource before the run.
func SanityCheckConservation(g *Graph, initialSource int64) error {
	var total int64
	for u := range g.adj {
		total += g.absorbed[u]
	}
	if total != initialSource {
		return fmt.Errorf("unitflow: total absorbed mass %d does not match initial source mass %d", total, initialSource)
	}
	return nil
}
