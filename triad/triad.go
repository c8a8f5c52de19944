// Package triad implements the triad digraph model (Component E of
// SPEC_FULL.md): oriented trees with exactly one vertex of degree 3 and
// three arms leaving it, encoded as strings of '0' (forward edge) and
// '1' (backward edge) — directly grounded on
// original_source/src/triad.rs.
package triad

import (
	"fmt"
	"strings"

	"github.com/WhatDothLife/triads/consistency"
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
)

// Triad is a triad digraph, represented as up to three arm strings. Per
// the source's comment, a Triad with fewer than three arms is a "partial
// triad", used while enumerating and while checking candidate arms for
// rooted-coreness on their own.
//
// Contract: each arm string must consist only of '0'/'1' characters.
// AddArm panics if the triad already has three arms.
type Triad struct {
	arms []string
}

// New returns an empty (zero-arm) Triad.
func New() *Triad { return &Triad{} }

// FromArms builds a Triad from up to three arm strings directly, without
// validating character content — callers that parsed untrusted input
// should use FromString instead.
func FromArms(arms ...string) *Triad {
	if len(arms) > 3 {
		panic("triad: at most three arms allowed")
	}
	t := &Triad{arms: make([]string, len(arms))}
	copy(t.arms, arms)
	return t
}

// AddArm appends arm to the triad.
//
// Panics if the triad already has three arms.
func (t *Triad) AddArm(arm string) {
	if len(t.arms) == 3 {
		panic("triad: already has 3 arms")
	}
	t.arms = append(t.arms, arm)
}

// Arms returns the triad's arm strings, in root order.
func (t *Triad) Arms() []string {
	out := make([]string, len(t.arms))
	copy(out, t.arms)
	return out
}

// NumArms reports how many arms the (possibly partial) triad has.
func (t *Triad) NumArms() int { return len(t.arms) }

// String renders the triad in the CLI's comma-joined arm format, e.g.
// "100,11,0".
func (t *Triad) String() string {
	return strings.Join(t.arms, ",")
}

// FromString parses the CLI's comma-joined arm format. At most three
// comma-separated fields are accepted, each consisting only of '0'/'1'
// characters (or empty, for a stub arm).
func FromString(s string) (*Triad, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: %q has %d", ErrTooManyArms, s, len(parts))
	}
	for _, arm := range parts {
		for _, c := range arm {
			if c != '0' && c != '1' {
				return nil, fmt.Errorf("%w: %q", ErrMalformedArm, arm)
			}
		}
	}
	return FromArms(parts...), nil
}

// Digraph builds the oriented-tree digraph for t. The degree-3 root is
// vertex 0; each arm is laid out as a path of fresh vertex IDs leaving
// the root, '0' meaning an edge directed away from the root and '1'
// meaning an edge directed toward it — ported directly from
// original_source/src/triad.rs's `From<&Triad> for AdjacencyList<u32>`.
func (t *Triad) Digraph() *digraph.Digraph {
	g := digraph.New()
	g.AddVertex(0)

	nextID := 1
	for _, arm := range t.arms {
		prev := 0
		for j, c := range arm {
			id := nextID
			nextID++
			g.AddVertex(id)
			if j == 0 {
				if c == '1' {
					g.AddEdge(id, 0)
				} else {
					g.AddEdge(0, id)
				}
			} else if c == '1' {
				g.AddEdge(id, prev)
			} else {
				g.AddEdge(prev, id)
			}
			prev = id
		}
	}
	return g
}

// IsCore reports whether t, as a digraph, is a core: every endomorphism
// of t is an automorphism. Soundness of deciding this via arc-consistency
// alone (rather than full backtracking search) is specific to the triad
// class — see original_source/src/triad.rs's comment on is_core, and
// SPEC_FULL.md's Open Question resolution. This method must not be
// applied to arbitrary digraphs and assumed sound.
func (t *Triad) IsCore() bool {
	g := t.Digraph()
	l := fullSelfMap(g)
	if !consistency.AC3(g, g, l) {
		// an empty domain here would mean g has no homomorphism to
		// itself, which is impossible (identity always works) — but we
		// still treat it uniformly with "not a core" rather than panic.
		return false
	}
	return allSingletons(l)
}

// IsRootedCore reports whether t is a rooted core: restricting vertex 0
// to map to itself, the only consistent extension is the identity.
func (t *Triad) IsRootedCore() bool {
	g := t.Digraph()
	l := fullSelfMap(g)
	l.Assign(0, domain.Singleton(0))
	if !consistency.AC3(g, g, l) {
		return false
	}
	return allSingletons(l)
}

func fullSelfMap(g *digraph.Digraph) *domain.Map {
	vertices := g.Vertices()
	return domain.NewMap(vertices, func(v int) domain.Set {
		return domain.NewSet(vertices...)
	})
}

func allSingletons(l *domain.Map) bool {
	for _, v := range l.Vertices() {
		if l.Get(v).Size() != 1 {
			return false
		}
	}
	return true
}

// Level returns the level of vertex v within t's digraph: the signed
// distance from the root along its arm, incrementing on a '0' edge and
// decrementing on a '1' edge. Panics if v does not name a vertex of t
// (vertex 0, the root, always has level 0 without walking an arm).
func (t *Triad) Level(v int) int {
	if v == 0 {
		return 0
	}
	count := v
	for _, arm := range t.arms {
		if count <= len(arm) {
			return levelArm(count, arm)
		}
		count -= len(arm)
	}
	panic("triad: vertex out of range")
}

func levelArm(count int, arm string) int {
	level := 0
	for i := 0; i < count; i++ {
		if arm[i] == '0' {
			level++
		} else {
			level--
		}
	}
	return level
}
