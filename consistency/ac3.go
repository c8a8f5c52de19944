// Package consistency implements local-consistency algorithms (AC-3,
// SAC-1) that prune a domain.Map against the edge structure of two
// digraphs, specialized to deciding graph homomorphism existence
// (Component C of SPEC_FULL.md).
package consistency

import (
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
)

// arc is a worklist entry: "recheck vertex x's candidates against vertex
// y's candidates, in direction dir". dir mirrors the source's bool: false
// means check the edge x->y, true means check y->x (arc_reduce's `dir`
// parameter in original_source/src/consistency.rs).
type arc struct {
	x, y int
	dir  bool
}

// AC3 runs the Mackworth 1977 arc-consistency algorithm over the domain
// map l, restricting candidates so that every edge of g0 has a
// corresponding edge among candidates in g1. l is mutated in place; only
// the consistency verdict is returned. The boolean result is false iff some
// vertex's domain was reduced to empty, in which case l is left in
// whatever partially-reduced state triggered the failure — callers that
// need the pre-AC3 state must domain.Map.Snapshot() before calling.
//
// Complexity: O(e·d³) where e = |E(g0)| and d = max domain size, per
// spec.md §4.3 — each arc can be enqueued up to d times and arc-reduce is
// O(d²).
func AC3(g0, g1 *digraph.Digraph, l *domain.Map) bool {
	worklist := make(map[arc]struct{})
	dependents := make(map[int][]arc)

	for _, e := range g0.Edges() {
		x, y := e[0], e[1]
		fwd := arc{x: x, y: y, dir: false}
		bwd := arc{x: y, y: x, dir: true}
		worklist[fwd] = struct{}{}
		worklist[bwd] = struct{}{}
		dependents[y] = append(dependents[y], fwd)
		dependents[x] = append(dependents[x], bwd)
	}

	for len(worklist) > 0 {
		var a arc
		for k := range worklist {
			a = k
			break
		}
		delete(worklist, a)

		if !arcReduce(a, l, g1) {
			continue
		}
		if l.Get(a.x).IsEmpty() {
			return false
		}
		for _, dep := range dependents[a.x] {
			worklist[dep] = struct{}{}
		}
	}
	return true
}

// arcReduce removes every candidate vx from l.Get(a.x) that has no
// supporting candidate vy in l.Get(a.y) under the edge direction a.dir.
// Returns whether x's domain actually changed.
func arcReduce(a arc, l *domain.Map, g1 *digraph.Digraph) bool {
	xDom := l.Get(a.x)
	yDom := l.Get(a.y)

	supported := domain.NewSet()
	for _, vx := range xDom.Values() {
		ok := false
		for _, vy := range yDom.Values() {
			if a.dir {
				ok = g1.HasEdge(vy, vx)
			} else {
				ok = g1.HasEdge(vx, vy)
			}
			if ok {
				break
			}
		}
		if ok {
			supported = domain.NewSet(append(supported.Values(), vx)...)
		}
	}
	return l.Shrink(a.x, supported)
}
