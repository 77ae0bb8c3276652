// Package cutmatching implements the cut-matching game of
// Khandekar-Rao-Vazirani driven over a unitflow.Graph subdivision: an
// iterative loop that proposes a bipartition of the subdivision's split
// vertices, routes flow across it, and uses the resulting matching to pull
// a random flow vector toward uniformity, certifying either an expander or
// a balanced sparse cut.
package cutmatching

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/kalexmills/cutmatching/unitflow"
)

// Parameters is the closed enumeration of knobs the cut-matching driver
// accepts.
type Parameters struct {
	TConst              int
	TFactor             float64
	MinBalance          float64
	SamplePotential     bool
	ResampleUnitVector  bool
	RandomWalkSteps     int
	BalancedCutStrategy bool
}

// DefaultParameters returns the unparameterized variant: no potential
// sampling, no unit-vector resampling, no balanced-cut trimming.
func DefaultParameters() Parameters {
	return Parameters{
		TConst:              0,
		TFactor:             1,
		MinBalance:          0,
		SamplePotential:     false,
		ResampleUnitVector:  false,
		RandomWalkSteps:     0,
		BalancedCutStrategy: false,
	}
}

// ResultType is one of the three outcomes a cut-matching invocation can
// classify to.
type ResultType int

const (
	Expander ResultType = iota
	Balanced
	NearExpander
)

func (t ResultType) String() string {
	switch t {
	case Balanced:
		return "Balanced"
	case NearExpander:
		return "NearExpander"
	default:
		return "Expander"
	}
}

// Result is the surface the driver exposes to its caller.
type Result struct {
	Type              ResultType
	Iterations        int
	Congestion        int64
	SampledPotentials []float64
}

// Solver runs one cut-matching invocation over a graph G and its
// subdivision H. A Solver is single-use: construct one per recursive
// partition of the outer decomposition.
type Solver struct {
	graph       *unitflow.Graph
	subdivGraph *unitflow.Graph
	rng         RNG
	phi         float64
	params      Parameters

	t        int
	numSplit int

	flowMatrix [][]float64

	logger zerolog.Logger
}

// NewSolver sets edge capacities on h, assigns dense split indices, and
// (if requested) allocates the flow matrix used for potential sampling.
//
// g and h must already be scoped to the current recursive partition —
// constructing that subset is the outer decomposition driver's job, which
// this package does not implement. A nil g, h, or rng is a caller error
// reported via ErrNilGraph/ErrNilRNG rather than a panic, since a caller
// wiring this package into a larger recursive driver can hit it on bad
// input without a way to pre-validate.
func NewSolver(g, h *unitflow.Graph, rng RNG, phi float64, params Parameters) (*Solver, error) {
	if g == nil || h == nil {
		return nil, ErrNilGraph
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	if g.Size() == 0 {
		panic("cutmatching: NewSolver expected a non-empty vertex set")
	}

	m := g.EdgeCount()
	logm := 0.0
	if m > 1 {
		logm = math.Log10(float64(m))
	}
	t := Max(1, params.TConst+int(params.TFactor*logm*logm))

	capacity := int64(math.Ceil(1.0 / phi / float64(t)))
	h.SetCapacities(capacity)

	numSplit := h.ReindexSplitVertices()

	s := &Solver{
		graph:       g,
		subdivGraph: h,
		rng:         rng,
		phi:         phi,
		params:      params,
		t:           t,
		numSplit:    numSplit,
		logger:      zerolog.Nop(),
	}

	if params.SamplePotential {
		s.flowMatrix = make([][]float64, numSplit)
		for i := range s.flowMatrix {
			s.flowMatrix[i] = make([]float64, numSplit)
			s.flowMatrix[i][i] = 1
		}
	}

	return s, nil
}

// Logger routes the solver's iteration-boundary and inner-loop log lines
// into logger instead of the zerolog.Nop() default.
func (s *Solver) Logger(logger zerolog.Logger) *Solver {
	s.logger = logger
	return s
}

func (s *Solver) aliveSplitVertices() []unitflow.Vertex {
	alive := s.subdivGraph.Alive()
	out := alive[:0]
	for _, u := range alive {
		if s.subdivGraph.SplitIndex(u) >= 0 {
			out = append(out, u)
		}
	}
	return out
}

func (s *Solver) removedVolume() int64 {
	return s.subdivGraph.VolumeOf(s.subdivGraph.Removed())
}

// randomUnitVector draws a fresh flow vector: ±1 uniformly on every alive
// split vertex, normalized by their count.
func (s *Solver) randomUnitVector() []float64 {
	result := make([]float64, s.numSplit)

	count := 0
	for _, u := range s.subdivGraph.Alive() {
		idx := s.subdivGraph.SplitIndex(u)
		if idx < 0 {
			continue
		}
		count++
		if s.rng.Intn(2) == 0 {
			result[idx] = -1
		} else {
			result[idx] = 1
		}
	}
	for _, u := range s.subdivGraph.Alive() {
		if idx := s.subdivGraph.SplitIndex(u); idx >= 0 {
			result[idx] /= float64(count)
		}
	}

	return result
}

// samplePotential computes the sum of squared deviations of every alive
// split vertex's flow-matrix row from the column-wise average, a scalar
// measure of how far the current flow matrix is from uniform. O(|alive|^2);
// only called when SamplePotential is set.
func (s *Solver) samplePotential() float64 {
	alive := s.aliveSplitVertices()
	idx := make([]int, len(alive))
	for i, u := range alive {
		idx[i] = s.subdivGraph.SplitIndex(u)
	}

	avgFlow := make([]float64, s.numSplit)
	for _, u := range idx {
		for _, v := range idx {
			avgFlow[v] += s.flowMatrix[u][v]
		}
	}
	for _, v := range idx {
		avgFlow[v] /= float64(len(idx))
	}

	var result float64
	for _, u := range idx {
		for _, v := range idx {
			d := s.flowMatrix[u][v] - avgFlow[v]
			result += d * d
		}
	}
	return result
}

// Compute runs the main cut-matching loop: propose a cut, route flow
// across it, remove the vertices a non-empty excess implicates, extract a
// matching from the routed flow, and fold that matching into the flow
// vector, until enough volume has been removed or the iteration budget is
// spent. It then classifies the outcome as Expander, Balanced, or
// NearExpander.
func (s *Solver) Compute() Result {
	if s.numSplit <= 1 {
		s.logger.Debug().Int("num_split", s.numSplit).Msg("cut matching exited early")
		return Result{Type: Expander, Iterations: 0, Congestion: 1}
	}

	lowerVolumeBalance := int64(s.numSplit) / 10 / int64(s.t)
	targetVolumeBalance := Max(lowerVolumeBalance, int64(s.params.MinBalance*float64(s.subdivGraph.Volume())))

	var rounds []Matching
	result := Result{Type: Expander, Congestion: 1}

	flow := s.randomUnitVector()

	iterations := 0
	for ; iterations < s.t && s.removedVolume() <= targetVolumeBalance; iterations++ {
		s.logger.Debug().Int("iteration", iterations).Int("t", s.t).Msg("cut matching iteration")

		if s.params.SamplePotential {
			result.SampledPotentials = append(result.SampledPotentials, s.samplePotential())
		}

		if s.params.ResampleUnitVector {
			flow = s.randomUnitVector()
			for i := 0; i < s.params.RandomWalkSteps; i++ {
				ProjectFlow(rounds, flow)
			}
		}

		axLeft, axRight := s.proposeCut(flow)
		s.logger.Debug().Int("sources", len(axLeft)).Int("sinks", len(axRight)).Msg("proposed cut")

		s.subdivGraph.Reset()
		for _, u := range axLeft {
			s.subdivGraph.AddSource(u, 1)
		}
		for _, u := range axRight {
			s.subdivGraph.AddSink(u, 1)
		}

		logNumSplit := math.Log10(float64(s.numSplit))
		height := Max(int(math.Ceil(1.0/(s.phi*logNumSplit))), int(math.Ceil(logNumSplit)))
		s.logger.Trace().Int("sources", len(axLeft)).Int("sinks", len(axRight)).Int("max_height", height).Msg("computing flow")

		excess := s.subdivGraph.Compute(height)

		removed := map[unitflow.Vertex]bool{}
		if len(excess) == 0 {
			s.logger.Trace().Msg("all flow routed")
		} else {
			cut := s.subdivGraph.LevelCut(height)
			s.logger.Trace().Int("excess", len(excess)).Int("level_cut", len(cut)).Msg("has excess, computed level cut")
			for _, u := range cut {
				removed[u] = true
			}
		}

		isRemoved := func(u unitflow.Vertex) bool { return removed[u] }
		axLeft = filterOut(axLeft, isRemoved)
		axRight = filterOut(axRight, isRemoved)

		for u := range removed {
			if s.subdivGraph.SplitIndex(u) == -1 {
				s.graph.Remove(u)
			}
			s.subdivGraph.Remove(u)
		}

		var zeroDegree []unitflow.Vertex
		for _, u := range s.subdivGraph.Alive() {
			if s.subdivGraph.Degree(u) == 0 {
				zeroDegree = append(zeroDegree, u)
				removed[u] = true
			}
		}
		for _, u := range zeroDegree {
			if s.subdivGraph.SplitIndex(u) == -1 {
				s.graph.Remove(u)
			}
			s.subdivGraph.Remove(u)
		}
		s.logger.Debug().Int("removed", len(removed)).Msg("vertices removed")

		if s.params.ResampleUnitVector {
			removedSplit := func(p unitflow.Pair[int, int]) bool {
				return isRemoved(s.subdivGraph.FromSplitIndex(p.First)) || isRemoved(s.subdivGraph.FromSplitIndex(p.Second))
			}
			for i, round := range rounds {
				rounds[i] = filterOut(round, removedSplit)
			}
		}

		s.logger.Trace().Int("sources", len(axLeft)).Int("sinks", len(axRight)).Msg("computing matching")
		matching := s.subdivGraph.Matching(axLeft)
		if len(matching) != len(axLeft) {
			panic("cutmatching: matching did not saturate all sources")
		}

		for _, p := range matching {
			i := s.subdivGraph.SplitIndex(p.First)
			j := s.subdivGraph.SplitIndex(p.Second)

			flow[i] = 0.5 * (flow[i] + flow[j])
			flow[j] = flow[i]

			if s.params.SamplePotential {
				for w := 0; w < s.numSplit; w++ {
					s.flowMatrix[i][w] = 0.5 * (s.flowMatrix[i][w] + s.flowMatrix[j][w])
					s.flowMatrix[j][w] = s.flowMatrix[i][w]
				}
			}
		}

		if s.params.ResampleUnitVector {
			round := make(Matching, len(matching))
			for k, p := range matching {
				round[k] = unitflow.Pair[int, int]{
					First:  s.subdivGraph.SplitIndex(p.First),
					Second: s.subdivGraph.SplitIndex(p.Second),
				}
			}
			rounds = append(rounds, round)
		}
	}

	result.Iterations = iterations
	result.Congestion = 1
	for _, u := range s.subdivGraph.Alive() {
		for i := 0; i < s.subdivGraph.NumEdges(u); i++ {
			e := s.subdivGraph.EdgeAt(u, i)
			if c := e.Congestion * int64(iterations); c > result.Congestion {
				result.Congestion = c
			}
		}
	}

	if s.params.SamplePotential {
		result.SampledPotentials = append(result.SampledPotentials, s.samplePotential())
	}

	switch {
	case s.graph.Size() > 0 && s.graph.RemovedSize() > 0 && s.removedVolume() > lowerVolumeBalance:
		result.Type = Balanced
	case s.graph.RemovedSize() == 0:
		result.Type = Expander
	case s.graph.Size() == 0:
		s.graph.RestoreRemoved()
		result.Type = Expander
	default:
		result.Type = NearExpander
	}

	s.logger.Debug().
		Stringer("type", result.Type).
		Int("iterations", result.Iterations).
		Int64("congestion", result.Congestion).
		Msg("cut matching finished")

	return result
}
