// Package unitflow implements the subdivision graph model, the
// bounded-height degree-capped push-relabel engine, and the DFS matching
// extractor that the cut-matching game drives.
//
// errors.go — sentinel errors for the unitflow package.
//
// Error policy: only the two genuinely recoverable construction-time
// validations below are returned as errors. Every other contract
// violation is a programming bug and panics instead: NewGraph in graph.go
// panics on an empty vertex set, Compute in pushrelabel.go on a broken
// flow/capacity invariant, and the cutmatching driver on a non-saturating
// matching. SanityCheck in sanitycheck.go reports flow invariants as
// errors, for use from tests.
package unitflow

import "errors"

// ErrUnknownVertex is returned by AddEdge when either endpoint is outside
// the graph's allocated vertex range.
var ErrUnknownVertex = errors.New("unitflow: no vertex with that id is known")

// ErrSelfLoop is returned by AddEdge when asked to connect a vertex to
// itself; self-loops never carry meaningful flow in a subdivision graph.
var ErrSelfLoop = errors.New("unitflow: self-loops are not permitted")
