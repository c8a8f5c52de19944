package polymorphism

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/hashstructure"

	"github.com/WhatDothLife/triads/domain"
)

// Polymorphism is a homomorphism from G^k (or a union of powers, for
// Dual/Chain arities) back to G — the witness a successful Finder.Find
// produces. It is keyed by a structural hash of each input tuple rather
// than the tuple itself, since Go map keys cannot be slices: arity here
// is whatever the search's Arity allowed, not a single fixed number, so
// a fixed-size array key isn't an option either. This is the one place
// in the repo that needs github.com/mitchellh/hashstructure — contrast
// with digraph.TupleSpace's plain string-join key, which stays unambiguous
// even when one TupleSpace holds tuples of several arities (CombinedPower)
// because the comma-joined key encodes the tuple's length.
type Polymorphism struct {
	entries map[uint64]polyEntry
}

type polyEntry struct {
	tuple []int
	value int
}

func newPolymorphism(ts tupleLookup, assignment *domain.Map) *Polymorphism {
	p := &Polymorphism{entries: make(map[uint64]polyEntry)}
	for _, v := range assignment.Vertices() {
		dom := assignment.Get(v)
		if dom.Size() != 1 {
			continue
		}
		tuple := ts.Tuple(v)
		key, err := hashstructure.Hash(tuple, nil)
		if err != nil {
			continue
		}
		p.entries[key] = polyEntry{tuple: tuple, value: dom.Values()[0]}
	}
	return p
}

// Apply returns the value the polymorphism assigns to the given input
// tuple, and whether that tuple was part of the witness.
func (p *Polymorphism) Apply(tuple []int) (int, bool) {
	key, err := hashstructure.Hash(tuple, nil)
	if err != nil {
		return 0, false
	}
	e, ok := p.entries[key]
	return e.value, ok
}

// Len returns the number of input tuples the witness assigns a value to.
func (p *Polymorphism) Len() int { return len(p.entries) }

// String renders every tuple->value mapping, sorted for determinism.
func (p *Polymorphism) String() string {
	entries := make([]polyEntry, 0, len(p.entries))
	for _, e := range p.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].tuple, entries[j].tuple
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%v -> %d\n", e.tuple, e.value)
	}
	return sb.String()
}
