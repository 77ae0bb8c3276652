package unitflow

// flowIn is the sum of flow arriving at u: the antisymmetric pairing
// stores incoming flow as a negative Flow value on u's own adjacency
// entries, so flowIn sums their negations.
func (g *Graph) flowIn(u Vertex) int64 {
	var total int64
	for i := range g.adj[u] {
		if f := g.adj[u][i].Flow; f < 0 {
			total += -f
		}
	}
	return total
}

// Matching recovers a matching between the given sources and sinks with
// positive flowIn and remaining sink capacity, by DFS along strictly
// positive-flow edges. The search is a single recursive closure over a
// generation-stamped visited array, equivalent to allocating a fresh
// visited slice per source without the reallocation.
//
// Edge order is H's adjacency insertion order, so DFS visits edges in
// that order and ties are broken by insertion order throughout.
func (g *Graph) Matching(sources []Vertex) []Pair[Vertex, Vertex] {
	var matches []Pair[Vertex, Vertex]

	stamp := make([]int, g.N())
	gen := 0

	var dfs func(u Vertex) Vertex
	dfs = func(u Vertex) Vertex {
		if stamp[u] == gen {
			return -1
		}
		stamp[u] = gen
		for i := range g.adj[u] {
			e := &g.adj[u][i]
			if e.Flow <= 0 {
				continue
			}
			if g.flowIn(e.To) > 0 && g.sinkCap[e.To] > 0 {
				e.Flow--
				g.adj[e.To][e.BackIndex].Flow++
				g.absorbed[e.To]--
				return e.To
			}
			if m := dfs(e.To); m != -1 {
				e.Flow--
				g.adj[e.To][e.BackIndex].Flow++
				return m
			}
		}
		return -1
	}

	for _, s := range sources {
		gen++
		if v := dfs(s); v != -1 {
			matches = append(matches, Pair[Vertex, Vertex]{First: s, Second: v})
		}
	}

	return matches
}
