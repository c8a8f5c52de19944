// Package store implements file-backed persistence for the triad
// enumeration caches and polymorphism results (the external collaborator
// described in SPEC_FULL.md §6) — append-safe, duplicate-tolerant readers
// and writers, grounded on original_source/src/triad.rs's FileParser and
// Cache file layout.
//
// Error policy: sentinel variables only, wrapped with github.com/pkg/errors
// for file-path context at the call site. Callers branch with errors.Is.
package store

import "errors"

// ErrNotFound indicates the requested cache key has no backing file yet —
// not a failure, just "nothing cached", mirroring the source's pattern of
// falling through to population when fs::read fails.
var ErrNotFound = errors.New("store: cache entry not found")

// ErrMalformed indicates an existing cache file's contents could not be
// parsed into the expected record shape.
var ErrMalformed = errors.New("store: malformed cache file")
