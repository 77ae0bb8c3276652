package unitflow

// Vertex identifies a node by its dense integer id in [0, n).
type Vertex = int

// Edge is a directed half of an undirected connection. Edges are always
// stored in antisymmetric pairs: BackIndex on each side names the other's
// position in its owner's adjacency list, and Reverse(e).Flow == -e.Flow
// always holds.
type Edge struct {
	From, To   Vertex
	BackIndex  int
	Flow       int64
	Capacity   int64
	Congestion int64
}

// Residual is the remaining capacity available for pushing along e.
func (e *Edge) Residual() int64 { return e.Capacity - e.Flow }

// Graph is a removable-vertex adjacency-list graph. The same type serves
// as both an original graph G and its subdivision H, since both are built
// and manipulated the same way. It also carries the per-vertex flow-engine
// state (absorbed, sinkCap, height, nextEdgeIdx) the push-relabel engine
// and matching extractor in pushrelabel.go and matching.go operate on.
type Graph struct {
	adj [][]Edge

	liveDegree []int
	isRemoved  []bool

	aliveOrder   []Vertex
	aliveIdx     []int // position of vertex u within aliveOrder, or -1
	removedOrder []Vertex
	removedIdx   []int

	isSplit    []bool
	splitIndex []int // -1 until ReindexSplitVertices assigns a dense index
	fromSplit  []Vertex
	numSplit   int

	absorbed    []int64
	sinkCap     []int64
	height      []int
	nextEdgeIdx []int
}

// NewGraph allocates a graph over the vertex set {0, ..., n-1} with no
// edges. Panics if n <= 0: an empty vertex set is a construction-time
// fatal fault, not a recoverable error.
func NewGraph(n int) *Graph {
	if n <= 0 {
		panic("unitflow: NewGraph requires a non-empty vertex set")
	}
	g := &Graph{
		adj:         make([][]Edge, n),
		liveDegree:  make([]int, n),
		isRemoved:   make([]bool, n),
		aliveIdx:    make([]int, n),
		removedIdx:  make([]int, n),
		isSplit:     make([]bool, n),
		splitIndex:  make([]int, n),
		absorbed:    make([]int64, n),
		sinkCap:     make([]int64, n),
		height:      make([]int, n),
		nextEdgeIdx: make([]int, n),
	}
	g.aliveOrder = make([]Vertex, n)
	for u := 0; u < n; u++ {
		g.aliveOrder[u] = u
		g.aliveIdx[u] = u
		g.removedIdx[u] = -1
		g.splitIndex[u] = -1
	}
	return g
}

// N is the total number of vertices the graph was allocated for,
// including removed ones.
func (g *Graph) N() int { return len(g.adj) }

// AddEdge inserts an undirected edge of the given capacity between u and v.
func (g *Graph) AddEdge(u, v Vertex, capacity int64) error {
	if u < 0 || u >= g.N() || v < 0 || v >= g.N() {
		return ErrUnknownVertex
	}
	if u == v {
		return ErrSelfLoop
	}
	uPos := len(g.adj[u])
	vPos := len(g.adj[v])
	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, BackIndex: vPos, Capacity: capacity})
	g.adj[v] = append(g.adj[v], Edge{From: v, To: u, BackIndex: uPos, Capacity: capacity})
	g.liveDegree[u]++
	g.liveDegree[v]++
	return nil
}

// SetCapacities overwrites the capacity of every edge in both directions
// and zeroes congestion. Intended for use once, at driver construction; it
// is not called again between iterations.
func (g *Graph) SetCapacities(capacity int64) {
	for u := range g.adj {
		for i := range g.adj[u] {
			g.adj[u][i].Capacity = capacity
			g.adj[u][i].Congestion = 0
		}
	}
}

// Size is the number of currently alive vertices.
func (g *Graph) Size() int { return len(g.aliveOrder) }

// RemovedSize is the number of currently removed vertices.
func (g *Graph) RemovedSize() int { return len(g.removedOrder) }

// Degree is the number of edges from u to currently alive neighbours.
func (g *Graph) Degree(u Vertex) int { return g.liveDegree[u] }

// Volume is the sum of Degree over every alive vertex.
func (g *Graph) Volume() int64 {
	return g.VolumeOf(g.aliveOrder)
}

// VolumeOf is the sum of Degree over the given vertex set.
func (g *Graph) VolumeOf(vs []Vertex) int64 {
	var total int64
	for _, u := range vs {
		total += int64(g.liveDegree[u])
	}
	return total
}

// EdgeCount is the number of undirected edges among currently alive
// vertices.
func (g *Graph) EdgeCount() int64 { return g.Volume() / 2 }

// Alive returns a snapshot of the currently alive vertices. The order
// starts as insertion order; each Remove moves the last alive vertex into
// the removed vertex's position.
func (g *Graph) Alive() []Vertex {
	out := make([]Vertex, len(g.aliveOrder))
	copy(out, g.aliveOrder)
	return out
}

// Removed returns a snapshot of the currently removed vertices.
func (g *Graph) Removed() []Vertex {
	out := make([]Vertex, len(g.removedOrder))
	copy(out, g.removedOrder)
	return out
}

// IsRemoved reports whether u has been removed.
func (g *Graph) IsRemoved(u Vertex) bool { return g.isRemoved[u] }

// Remove moves u from the alive set into the removed set. O(deg(u))
// amortized: the live-degree counter of every still-alive neighbour is
// decremented so Degree stays O(1) to query.
func (g *Graph) Remove(u Vertex) {
	if g.isRemoved[u] {
		return
	}
	for i := range g.adj[u] {
		e := &g.adj[u][i]
		if !g.isRemoved[e.To] {
			g.liveDegree[e.To]--
		}
	}
	g.isRemoved[u] = true

	pos := g.aliveIdx[u]
	last := len(g.aliveOrder) - 1
	moved := g.aliveOrder[last]
	g.aliveOrder[pos] = moved
	g.aliveIdx[moved] = pos
	g.aliveOrder = g.aliveOrder[:last]
	g.aliveIdx[u] = -1

	g.removedIdx[u] = len(g.removedOrder)
	g.removedOrder = append(g.removedOrder, u)
}

// RestoreRemoved moves every removed vertex back into the alive set and
// recomputes live-degree counters from scratch.
func (g *Graph) RestoreRemoved() {
	if len(g.removedOrder) == 0 {
		return
	}
	for _, u := range g.removedOrder {
		g.isRemoved[u] = false
		g.aliveIdx[u] = len(g.aliveOrder)
		g.aliveOrder = append(g.aliveOrder, u)
		g.removedIdx[u] = -1
	}
	g.removedOrder = g.removedOrder[:0]
	for u := range g.adj {
		g.liveDegree[u] = len(g.adj[u])
	}
}

// Reverse returns the antisymmetric counterpart of e.
func (g *Graph) Reverse(e Edge) Edge {
	return g.adj[e.To][e.BackIndex]
}

// EdgeAt returns a mutable pointer to the i-th edge out of u, in insertion
// order. The push-relabel engine and matching extractor rely on this
// order for their tie-break and DFS-visit contracts respectively.
func (g *Graph) EdgeAt(u Vertex, i int) *Edge { return &g.adj[u][i] }

// NumEdges is the number of edges out of u (alive or not).
func (g *Graph) NumEdges(u Vertex) int { return len(g.adj[u]) }

// MarkSplit flags u as a subdivision (split) vertex pending index
// assignment by ReindexSplitVertices.
func (g *Graph) MarkSplit(u Vertex) { g.isSplit[u] = true }

// ReindexSplitVertices assigns each currently alive vertex marked by
// MarkSplit a dense index in [0, n), fills the reverse map, and returns
// the count. Called once, at driver setup; indices are not reassigned
// afterwards even as vertices are removed.
func (g *Graph) ReindexSplitVertices() int {
	count := 0
	for _, u := range g.aliveOrder {
		if g.isSplit[u] {
			g.splitIndex[u] = count
			count++
		}
	}
	g.fromSplit = make([]Vertex, count)
	for _, u := range g.aliveOrder {
		if g.splitIndex[u] >= 0 {
			g.fromSplit[g.splitIndex[u]] = u
		}
	}
	g.numSplit = count
	return count
}

// NumSplit is the number of split vertices assigned a dense index by
// ReindexSplitVertices.
func (g *Graph) NumSplit() int { return g.numSplit }

// SplitIndex returns u's dense split index, or -1 if u is not a split
// vertex.
func (g *Graph) SplitIndex(u Vertex) int { return g.splitIndex[u] }

// FromSplitIndex is the inverse of SplitIndex.
func (g *Graph) FromSplitIndex(idx int) Vertex { return g.fromSplit[idx] }
