package polymorphism_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/polymorphism"
	"github.com/WhatDothLife/triads/triad"
)

type IdentitySuite struct {
	suite.Suite
}

// TestCommutativeIndicatorVertexCount is spec.md §8 property 5: for the
// commutative identity, the number of indicator vertices equals the
// number of unordered pairs {u,v} with u,v on the same triad level,
// counting u == v (the diagonal tuple (u,u) is an indicator vertex too).
func (s *IdentitySuite) TestCommutativeIndicatorVertexCount() {
	require := require.New(s.T())

	tr := triad.FromArms("10", "01", "1")
	g := tr.Digraph()

	level := make(map[int][]int)
	for _, v := range g.Vertices() {
		level[tr.Level(v)] = append(level[tr.Level(v)], v)
	}
	wantPairs := 0
	for _, vs := range level {
		n := len(vs)
		wantPairs += n * (n + 1) / 2
	}

	classes := polymorphism.Commutative(polymorphism.Single(2), g.NumVertices())

	indicator, ts := g.CombinedPower(polymorphism.Single(2).Arities())
	uf := map[int]int{}
	find := func(x int) int {
		for {
			p, ok := uf[x]
			if !ok {
				return x
			}
			x = p
		}
	}
	for _, class := range classes {
		anchorID, _ := ts.Lookup(class[0])
		for _, tuple := range class[1:] {
			id, _ := ts.Lookup(tuple)
			ra, rb := find(anchorID), find(id)
			if ra != rb {
				indicator.ContractVertices(ra, rb)
				uf[rb] = ra
			}
		}
	}

	samePairVertices := 0
	for _, v := range indicator.Vertices() {
		tuple := ts.Tuple(v)
		if len(tuple) == 2 && tr.Level(tuple[0]) == tr.Level(tuple[1]) {
			samePairVertices++
		}
	}
	require.Equal(wantPairs, samePairVertices)
}

// TestChainPowerDoesNotCollapseRepeatedArityLinks pins the h/k-wnu fix:
// distinct links of a Chain(k,h) arity share the same per-link arity k,
// so they must not alias onto one another's vertex space the way
// CombinedPower's value-only interning would.
func (s *IdentitySuite) TestChainPowerDoesNotCollapseRepeatedArityLinks() {
	require := require.New(s.T())

	g := digraph.New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)

	k, h := 3, 3
	indicator, cts := g.ChainPower(k, h)

	want := 1
	for i := 0; i < k; i++ {
		want *= g.NumVertices()
	}
	want *= h
	require.Equal(want, indicator.NumVertices())

	base := []int{0, 0, 0}
	id0, ok := cts.Lookup(append([]int{0}, base...))
	require.True(ok)
	id1, ok := cts.Lookup(append([]int{1}, base...))
	require.True(ok)
	require.NotEqual(id0, id1, "link 0 and link 1's identical-valued tuples must not alias")
	require.Equal(0, cts.Link(id0))
	require.Equal(1, cts.Link(id1))
}

// TestHKWNUTiesAcrossLinks pins the cross-link anchor identification
// HKWNU's own doc comment describes, for h == 3 (a height the earlier,
// broken implementation never exercised): non-adjacent links' "all-i"
// anchor tuples must end up in the same contracted indicator vertex.
func (s *IdentitySuite) TestHKWNUTiesAcrossLinks() {
	require := require.New(s.T())

	g := digraph.New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)

	k, h := 3, 3
	arity := polymorphism.Chain(k, h)
	classes := polymorphism.HKWNU(arity, g.NumVertices())
	require.NotEmpty(classes)

	indicator, cts := g.ChainPower(k, h)
	uf := map[int]int{}
	find := func(x int) int {
		for {
			p, ok := uf[x]
			if !ok {
				return x
			}
			x = p
		}
	}
	for _, class := range classes {
		if len(class) == 0 {
			continue
		}
		anchorID, ok := cts.Lookup(class[0])
		require.True(ok)
		anchorID = find(anchorID)
		for _, tuple := range class[1:] {
			id, ok := cts.Lookup(tuple)
			require.True(ok)
			ra, rb := find(anchorID), find(id)
			if ra != rb {
				indicator.ContractVertices(ra, rb)
				uf[rb] = ra
				anchorID = ra
			}
		}
	}

	base := []int{0, 0, 0}
	link0Anchor, ok := cts.Lookup(append([]int{0}, base...))
	require.True(ok)
	link2Anchor, ok := cts.Lookup(append([]int{2}, base...))
	require.True(ok)
	require.Equal(find(link0Anchor), find(link2Anchor),
		"link 0 and link 2's all-0 anchors must be identified even though they aren't adjacent")
}

func TestIdentitySuite(t *testing.T) {
	suite.Run(t, new(IdentitySuite))
}
