package cutmatching

import "golang.org/x/exp/constraints"

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// filterOut returns vs with every element satisfying drop removed,
// reusing vs's backing array.
func filterOut[T any](vs []T, drop func(T) bool) []T {
	out := vs[:0]
	for _, v := range vs {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

func reverseVertices[T any](vs []T) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}
