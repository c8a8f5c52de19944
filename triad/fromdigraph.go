package triad

import (
	"fmt"
	"sort"

	"github.com/WhatDothLife/triads/digraph"
)

// FromDigraph recovers a Triad from its digraph encoding (the inverse of
// Digraph), used by the polymorphism package's level-based optimization
// to recover arm structure from an already-built target graph. Ported
// from original_source/src/triad.rs's `TryFrom<AdjacencyList<u32>> for
// Triad`.
//
// Returns an error wrapping ErrNotATriad unless exactly three arms leave
// g's degree-3 vertices; partial triads are not accepted.
func FromDigraph(g *digraph.Digraph) (*Triad, error) {
	remaining := make(map[[2]int]struct{})
	for _, e := range g.Edges() {
		remaining[e] = struct{}{}
	}

	type armStart struct {
		first int
		arm   string
	}
	var starts []armStart

	for _, u := range g.Vertices() {
		if g.Degree(u) != 3 {
			continue
		}
		for e := range remaining {
			switch {
			case e[0] == u:
				delete(remaining, e)
				starts = append(starts, armStart{e[1], "0" + armString(e[1], remaining)})
			case e[1] == u:
				delete(remaining, e)
				starts = append(starts, armStart{e[0], "1" + armString(e[0], remaining)})
			}
		}
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].first < starts[j].first })
	if len(starts) != 3 {
		return nil, fmt.Errorf("%w: found %d arms", ErrNotATriad, len(starts))
	}
	return FromArms(starts[0].arm, starts[1].arm, starts[2].arm), nil
}

// armString walks remaining from u, consuming the unique edge chain
// leaving it and encoding each step as '0' (forward) or '1' (backward),
// mirroring the source's recursive `arm_string`.
func armString(u int, remaining map[[2]int]struct{}) string {
	s := ""
	for {
		found := false
		for e := range remaining {
			switch {
			case e[0] == u:
				delete(remaining, e)
				s += "0"
				u = e[1]
				found = true
			case e[1] == u:
				delete(remaining, e)
				s += "1"
				u = e[0]
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return s
		}
	}
}
