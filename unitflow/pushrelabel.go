package unitflow

import "container/heap"

// excess is absorbed(u) - sinkCap(u) when positive, else 0.
func (g *Graph) excess(u Vertex) int64 {
	e := g.absorbed[u] - g.sinkCap[u]
	if e > 0 {
		return e
	}
	return 0
}

// Excess exposes excess(u) to callers outside the package (tests, sanity
// checks invoked by client code).
func (g *Graph) Excess(u Vertex) int64 { return g.excess(u) }

// Height is u's current push-relabel height.
func (g *Graph) Height(u Vertex) int { return g.height[u] }

// Absorbed is u's current absorbed mass.
func (g *Graph) Absorbed(u Vertex) int64 { return g.absorbed[u] }

// AddSource seeds u with the given amount of source mass.
func (g *Graph) AddSource(u Vertex, amount int64) { g.absorbed[u] += amount }

// AddSink gives u the given amount of sink capacity.
func (g *Graph) AddSink(u Vertex, capacity int64) { g.sinkCap[u] += capacity }

// Reset zeroes every vertex's absorbed/sinkCap/height/nextEdgeIdx and every
// edge's flow, ready for a fresh Compute call. Congestion is untouched —
// callers that track it across repeated calls rely on it accumulating.
func (g *Graph) Reset() {
	for u := range g.adj {
		g.absorbed[u] = 0
		g.sinkCap[u] = 0
		g.height[u] = 0
		g.nextEdgeIdx[u] = 0
		for i := range g.adj[u] {
			g.adj[u][i].Flow = 0
		}
	}
}

type pqItem struct {
	height int
	seq    int64
	vertex Vertex
}

// activeQueue is a smallest-height-first priority queue of active vertices,
// with FIFO tie-breaking among equal heights via a monotonic sequence
// number.
type activeQueue struct {
	items []pqItem
	next  int64
}

func (q *activeQueue) Len() int { return len(q.items) }
func (q *activeQueue) Less(i, j int) bool {
	if q.items[i].height != q.items[j].height {
		return q.items[i].height < q.items[j].height
	}
	return q.items[i].seq < q.items[j].seq
}
func (q *activeQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *activeQueue) Push(x any)    { q.items = append(q.items, x.(pqItem)) }
func (q *activeQueue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

func (q *activeQueue) enqueue(height int, v Vertex) {
	q.next++
	heap.Push(q, pqItem{height: height, seq: q.next, vertex: v})
}

// Compute runs bounded-height push-relabel with degree-capped pushes over
// the currently alive vertices and returns the excess set: the alive
// vertices whose excess is still positive once the queue empties.
func (g *Graph) Compute(maxHeight int) []Vertex {
	maxH := maxHeight
	if limit := 2*g.Size() + 1; limit < maxH {
		maxH = limit
	}

	q := &activeQueue{}
	for _, u := range g.aliveOrder {
		if g.excess(u) > 0 {
			q.enqueue(g.height[u], u)
		}
	}

	for q.Len() > 0 {
		u := q.items[0].vertex

		if g.isRemoved[u] || g.excess(u) <= 0 || len(g.adj[u]) == 0 {
			heap.Pop(q)
			continue
		}

		e := &g.adj[u][g.nextEdgeIdx[u]]

		if !g.isRemoved[e.To] && e.Residual() > 0 && g.height[e.From] == g.height[e.To]+1 {
			delta := e.Residual()
			if ex := g.excess(e.From); ex < delta {
				delta = ex
			}
			if deg := int64(g.liveDegree[e.To]); deg < delta {
				delta = deg
			}

			e.Flow += delta
			rev := &g.adj[e.To][e.BackIndex]
			rev.Flow -= delta
			if e.Flow > e.Capacity || rev.Flow != -e.Flow {
				panic("unitflow: push broke the flow/capacity invariant")
			}
			e.Congestion += delta
			rev.Congestion += delta

			g.absorbed[e.From] -= delta
			g.absorbed[e.To] += delta

			if g.height[e.From] >= maxH || g.excess(e.From) == 0 {
				heap.Pop(q)
			}
			if !g.isRemoved[e.To] && g.height[e.To] < maxH && g.excess(e.To) > 0 {
				q.enqueue(g.height[e.To], e.To)
			}
		} else if g.nextEdgeIdx[u] == len(g.adj[u])-1 {
			heap.Pop(q)
			g.height[u]++
			g.nextEdgeIdx[u] = 0
			if g.height[u] < maxH {
				q.enqueue(g.height[u], u)
			}
		} else {
			g.nextEdgeIdx[u]++
		}
	}

	var excessSet []Vertex
	for _, u := range g.aliveOrder {
		if g.excess(u) > 0 {
			excessSet = append(excessSet, u)
		}
	}
	return excessSet
}

// LevelCut scans heights 0..maxHeight and picks the level whose cut
// {height <= l} vs {height >= l+1} minimizes crossing-edges-per-unit of
// volume above it, returning the vertex set above that level. Meant to be
// called only when Compute leaves a non-empty excess set, to identify
// which vertices to remove next.
func (g *Graph) LevelCut(maxHeight int) []Vertex {
	maxH := maxHeight
	if limit := 2*g.Size() + 1; limit < maxH {
		maxH = limit
	}
	if maxH < 0 {
		maxH = 0
	}

	volAt := make([]int64, maxH+2)
	for _, u := range g.aliveOrder {
		h := clampHeight(g.height[u], maxH)
		volAt[h] += int64(g.liveDegree[u])
	}

	crossDiff := make([]int64, maxH+2)
	for _, u := range g.aliveOrder {
		for i := range g.adj[u] {
			e := &g.adj[u][i]
			v := e.To
			if g.isRemoved[v] || u >= v {
				continue
			}
			a := clampHeight(g.height[u], maxH)
			b := clampHeight(g.height[v], maxH)
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			crossDiff[a]++
			crossDiff[b]--
		}
	}

	suffix := make([]int64, maxH+2)
	for h := maxH; h >= 0; h-- {
		suffix[h] = suffix[h+1] + volAt[h]
	}

	bestLevel := -1
	bestScore := -1.0
	haveScore := false
	var cross int64
	for l := 0; l <= maxH; l++ {
		cross += crossDiff[l]
		if l == maxH {
			break
		}
		aboveVol := suffix[l+1]
		if aboveVol <= 0 {
			continue
		}
		score := float64(cross) / float64(aboveVol)
		if !haveScore || score < bestScore {
			haveScore = true
			bestScore = score
			bestLevel = l
		}
	}

	var result []Vertex
	for _, u := range g.aliveOrder {
		if clampHeight(g.height[u], maxH) >= bestLevel+1 {
			result = append(result, u)
		}
	}
	return result
}

func clampHeight(h, maxH int) int {
	if h > maxH {
		return maxH
	}
	return h
}
