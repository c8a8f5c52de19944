package consistency

import (
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
)

// SAC1 runs Bessiere & Debruyne's 1997 singleton-arc-consistency
// algorithm: it repeatedly probes every remaining candidate value by
// pinning it as a singleton and re-running AC3 on a snapshot, discarding
// any value whose singleton assignment collapses some other domain to
// empty. It converges when a full pass removes nothing.
//
// Complexity: O(ac3-complexity · Σ|L(v)|) per spec.md §4.3 — one AC3 run
// per remaining candidate, repeated until a fixed point.
func SAC1(g0, g1 *digraph.Digraph, l *domain.Map) bool {
	if !AC3(g0, g1, l) {
		return false
	}

	changed := true
	for changed {
		changed = false
		for _, v := range l.Vertices() {
			dom := l.Get(v)
			if dom.IsEmpty() {
				return false
			}
			keep := make([]int, 0, dom.Size())
			for _, val := range dom.Values() {
				probe := l.Snapshot()
				probe.Assign(v, domain.Singleton(val))
				if AC3(g0, g1, probe) {
					keep = append(keep, val)
				}
			}
			if len(keep) < dom.Size() {
				l.Assign(v, domain.NewSet(keep...))
				changed = true
			}
			if l.Get(v).IsEmpty() {
				return false
			}
		}
	}
	return true
}
