package cutmatching

// RNG is the source-of-randomness interface the driver consumes: uniform
// draws in [0, k). The ±1 sampler in solver.go builds on Intn(2);
// *math/rand.Rand satisfies this directly, with no adapter needed.
type RNG interface {
	Intn(k int) int
}
