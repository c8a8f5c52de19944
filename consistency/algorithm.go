package consistency

import (
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
)

// Algorithm identifies which local-consistency algorithm a caller wants
// applied before and during backtracking search, selectable via the
// CLI's --consistency flag (spec.md §6).
type Algorithm int

const (
	// AC3Only applies arc-consistency only.
	AC3Only Algorithm = iota
	// SAC1Only applies singleton-arc-consistency (which already performs
	// an initial AC3 pass internally).
	SAC1Only
)

// Run applies a to (g0, g1, l), mutating l in place and reporting whether
// the result is consistent.
func (a Algorithm) Run(g0, g1 *digraph.Digraph, l *domain.Map) bool {
	switch a {
	case SAC1Only:
		return SAC1(g0, g1, l)
	default:
		return AC3(g0, g1, l)
	}
}

// String renders the algorithm name as accepted by --consistency.
func (a Algorithm) String() string {
	switch a {
	case SAC1Only:
		return "sac1"
	default:
		return "ac3"
	}
}
