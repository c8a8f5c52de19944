package digraph

import "errors"

// ErrVertexNotFound is reserved for genuine invariant violations: asking a
// Digraph (or its TupleSpace) about a vertex that was never inserted is
// programmer error, not a runtime condition a caller should branch on with
// errors.Is — it panics instead (spec.md §7). ContractVertices panics with
// an error wrapping this sentinel, so code that recovers the panic can
// still identify it with errors.Is.
var ErrVertexNotFound = errors.New("digraph: vertex not found")
