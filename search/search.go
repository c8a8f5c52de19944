// Package search implements the backtracking half of the solver
// (Component D of SPEC_FULL.md): given a domain map already reduced by
// package consistency, find a total, edge-respecting assignment or prove
// none exists.
package search

import (
	"sort"

	"github.com/WhatDothLife/triads/consistency"
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
)

// Result carries the outcome of Solve, including the metrics the source's
// Metrics struct tracked (see package metrics for the persisted form).
type Result struct {
	Found       bool
	Assignment  *domain.Map
	Backtracked int
}

// Solve runs the Propagate → Select → Branch state machine of spec.md
// §4.4 over indicator and target, starting from the (already possibly
// precoloured) domain map l. It does not mutate l; the returned
// Assignment is an independent copy safe to keep after Solve returns.
//
// Depth is bounded by |V(indicator)|: each recursive branch fixes exactly
// one previously-undetermined vertex.
func Solve(indicator, target *digraph.Digraph, l *domain.Map, algo consistency.Algorithm) Result {
	work := l.Clone()
	if !algo.Run(indicator, target, work) {
		return Result{Found: false}
	}

	order := selectOrder(indicator, work)
	backtracked := 0

	var branch func(idx int) bool
	branch = func(idx int) bool {
		if idx == len(order) {
			return true
		}
		v := order[idx]
		dom := work.Get(v)
		if dom.Size() == 1 {
			return branch(idx + 1)
		}

		for _, val := range dom.Values() {
			snap := work.Snapshot()
			work.Assign(v, domain.Singleton(val))
			if algo.Run(indicator, target, work) && branch(idx+1) {
				return true
			}
			work.Restore(snap)
			backtracked++
		}
		return false
	}

	if branch(0) {
		return Result{Found: true, Assignment: work.Clone(), Backtracked: backtracked}
	}
	return Result{Found: false, Backtracked: backtracked}
}

// selectOrder returns indicator's vertices in the order they should be
// branched on: smallest current domain first (most-constrained-first,
// the standard fail-fast heuristic), ties broken by indicator vertex
// insertion order for determinism. This is the branching order that
// original_source/src/consistency.rs's search_precolour actually
// produces — it sorts its vertex list by descending domain size and then
// pops from the end of that list, which nets out to ascending-size,
// most-constrained-first branching.
func selectOrder(indicator *digraph.Digraph, l *domain.Map) []int {
	vertices := indicator.Vertices()
	order := make([]int, len(vertices))
	copy(order, vertices)

	position := make(map[int]int, len(vertices))
	for i, v := range vertices {
		position[v] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		si, sj := l.Get(order[i]).Size(), l.Get(order[j]).Size()
		if si != sj {
			return si < sj
		}
		return position[order[i]] < position[order[j]]
	})
	return order
}
