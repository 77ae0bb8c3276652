package unitflow

// NewSubdivision builds the subdivision graph H of g: one split vertex per
// edge of g, replacing each edge (u, v) with (u, s) and (v, s).
//
// g is consulted only for its current vertex count and edge list; it is
// not mutated. Every split vertex introduced is flagged via MarkSplit, but
// dense split indices are not assigned here — that happens once, at
// driver setup, via ReindexSplitVertices. Capacities are left at zero; the
// driver sets them before the first run.
func NewSubdivision(g *Graph) *Graph {
	n := g.N()
	m := g.EdgeCount()
	h := NewGraph(n + int(m))

	next := n
	for u := 0; u < n; u++ {
		for i := 0; i < g.NumEdges(u); i++ {
			e := g.EdgeAt(u, i)
			if e.From >= e.To {
				continue
			}
			s := next
			next++
			if err := h.AddEdge(e.From, s, 0); err != nil {
				panic(err)
			}
			if err := h.AddEdge(e.To, s, 0); err != nil {
				panic(err)
			}
			h.MarkSplit(s)
		}
	}
	return h
}
