package polymorphism

import (
	"github.com/WhatDothLife/triads/consistency"
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
	"github.com/WhatDothLife/triads/search"
	"github.com/WhatDothLife/triads/triad"
)

// Finder configures and runs a polymorphism search, mirroring the
// builder pattern of original_source/src/polymorphism.rs's
// PolymorphismFinder. Construct with NewFinder, chain the With* methods,
// and call Find.
type Finder struct {
	arity        Arity
	identity     Identity
	conservative bool
	idempotent   bool
	majority     bool
	sameLevel    bool
}

// NewFinder returns a Finder for an operation of the given arity.
func NewFinder(arity Arity) *Finder {
	return &Finder{arity: arity}
}

// WithIdentity sets the identity the polymorphism must satisfy.
func (f *Finder) WithIdentity(identity Identity) *Finder {
	f.identity = identity
	return f
}

// WithConservative restricts every indicator vertex's initial domain to
// the set of original-graph vertices appearing in its tuple.
func (f *Finder) WithConservative(c bool) *Finder {
	f.conservative = c
	return f
}

// WithIdempotent precolours every constant-tuple indicator vertex
// (i,i,...,i) to {i}.
func (f *Finder) WithIdempotent(i bool) *Finder {
	f.idempotent = i
	return f
}

// WithMajority additionally precolours each identity class's anchor
// tuple to its own first coordinate — used for the majority identity,
// which is WNU at arity 3 plus this extra constraint.
func (f *Finder) WithMajority(m bool) *Finder {
	f.majority = m
	return f
}

// WithSameLevelOptimization restricts the indicator to components whose
// vertices' two tuple coordinates sit at the same triad level — valid
// only when g is (isomorphic to) a triad and the identity is
// commutative, per original_source/src/polymorphism.rs's
// Optimization::Commutative.
func (f *Finder) WithSameLevelOptimization(s bool) *Finder {
	f.sameLevel = s
	return f
}

// Result is the outcome of a polymorphism search.
type Result struct {
	Found       bool
	Poly        *Polymorphism
	Backtracked int
}

// tupleLookup is the common interface Finder.Find needs from whichever
// of CombinedPower's *digraph.TupleSpace or ChainPower's
// *digraph.ChainTupleSpace backs the indicator it just built.
type tupleLookup interface {
	Tuple(id int) []int
	Lookup(tuple []int) (int, bool)
}

// Find runs the configured search over g using algo as the local
// consistency heuristic, returning the discovered polymorphism if one
// exists.
func (f *Finder) Find(g *digraph.Digraph, algo consistency.Algorithm) Result {
	var indicator *digraph.Digraph
	var ts tupleLookup
	if f.arity.IsChain() {
		k, h := f.arity.ChainParams()
		indicator, ts = g.ChainPower(k, h)
	} else {
		indicator, ts = g.CombinedPower(f.arity.Arities())
	}

	uf := newUnionFind()
	l := domain.NewMap(indicator.Vertices(), func(v int) domain.Set {
		return domain.NewSet(g.Vertices()...)
	})

	if f.identity != nil {
		classes := f.identity(f.arity, g.NumVertices())
		for _, class := range classes {
			if len(class) == 0 {
				continue
			}
			anchorID, ok := ts.Lookup(class[0])
			if !ok {
				continue
			}
			for _, tuple := range class[1:] {
				id, ok := ts.Lookup(tuple)
				if !ok {
					continue
				}
				keep, remove := uf.union(anchorID, id)
				if remove != -1 {
					indicator.ContractVertices(keep, remove)
				}
				anchorID = keep
			}
			if f.majority {
				l.Assign(uf.find(anchorID), domain.Singleton(class[0][0]))
			}
		}
	}

	if f.sameLevel {
		// Only reachable for the commutative identity (Single(2)), never
		// for a Chain arity, so ts is always a *digraph.TupleSpace here.
		if plain, ok := ts.(*digraph.TupleSpace); ok {
			if t, err := triad.FromDigraph(g); err == nil {
				indicator = restrictToSameLevel(indicator, plain, t)
			}
		}
	}

	for _, v := range indicator.Vertices() {
		tuple := ts.Tuple(v)
		if f.conservative {
			l.Shrink(v, domain.NewSet(tuple...))
		}
		if f.idempotent && allEqual(tuple) {
			l.Assign(v, domain.Singleton(tuple[0]))
		}
	}

	res := search.Solve(indicator, g, l, algo)
	if !res.Found {
		return Result{Found: false, Backtracked: res.Backtracked}
	}
	return Result{Found: true, Poly: newPolymorphism(ts, res.Assignment), Backtracked: res.Backtracked}
}

func restrictToSameLevel(indicator *digraph.Digraph, ts *digraph.TupleSpace, t *triad.Triad) *digraph.Digraph {
	out := digraph.New()
	for _, comp := range indicator.Components() {
		verts := comp.Vertices()
		if len(verts) == 0 {
			continue
		}
		tuple := ts.Tuple(verts[0])
		if len(tuple) != 2 {
			continue
		}
		if t.Level(tuple[0]) != t.Level(tuple[1]) {
			continue
		}
		out = out.Union(comp)
	}
	return out
}

func allEqual(tuple []int) bool {
	for i := 1; i < len(tuple); i++ {
		if tuple[i] != tuple[0] {
			return false
		}
	}
	return true
}
