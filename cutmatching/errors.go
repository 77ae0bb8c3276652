// errors.go — sentinel errors for the cutmatching package.
//
// Error policy: only the two genuinely recoverable construction-time
// validations below are returned as errors. Every other contract violation
// (empty A surviving the fallback, a broken flow/capacity invariant,
// non-saturating matching) is a programming bug and panics instead — see
// cut.go, solver.go, and unitflow's push-relabel Compute.
package cutmatching

import "errors"

// ErrNilGraph is returned by NewSolver when g or h is nil.
var ErrNilGraph = errors.New("cutmatching: graph must not be nil")

// ErrNilRNG is returned by NewSolver when rng is nil.
var ErrNilRNG = errors.New("cutmatching: rng must not be nil")
