package consistency_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/WhatDothLife/triads/consistency"
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
)

func fullDomain(g1 *digraph.Digraph) func(v int) domain.Set {
	all := g1.Vertices()
	return func(v int) domain.Set { return domain.NewSet(all...) }
}

type ConsistencySuite struct {
	suite.Suite
}

// TestAC3RejectsNoHomomorphism: a directed triangle (3-cycle) has no
// homomorphism into a single directed edge (no self-loop, no 2-cycle).
func (s *ConsistencySuite) TestAC3RejectsNoHomomorphism() {
	require := require.New(s.T())

	g0 := digraph.New()
	g0.AddEdge(0, 1)
	g0.AddEdge(1, 2)
	g0.AddEdge(2, 0)

	g1 := digraph.New()
	g1.AddEdge(0, 1)

	l := domain.NewMap(g0.Vertices(), fullDomain(g1))
	require.False(consistency.AC3(g0, g1, l))
}

// TestAC3AcceptsHomomorphism: a directed path of length 2 maps into a
// 2-cycle by alternating its vertices 0, 1, 0.
func (s *ConsistencySuite) TestAC3AcceptsHomomorphism() {
	require := require.New(s.T())

	g0 := digraph.New()
	g0.AddEdge(0, 1)
	g0.AddEdge(1, 2)

	g1 := digraph.New()
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 0)

	l := domain.NewMap(g0.Vertices(), fullDomain(g1))
	require.True(consistency.AC3(g0, g1, l))
	require.False(l.IsEmpty())
}

// TestAC3Monotone is spec.md §8 property 1: AC3 never grows a domain.
func (s *ConsistencySuite) TestAC3Monotone() {
	require := require.New(s.T())

	g0 := digraph.New()
	g0.AddEdge(0, 1)
	g0.AddEdge(1, 2)

	g1 := digraph.New()
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 2)
	g1.AddEdge(2, 0)

	before := domain.NewMap(g0.Vertices(), fullDomain(g1))
	sizesBefore := map[int]int{}
	for _, v := range before.Vertices() {
		sizesBefore[v] = before.Get(v).Size()
	}

	consistency.AC3(g0, g1, before)
	for _, v := range before.Vertices() {
		require.LessOrEqual(before.Get(v).Size(), sizesBefore[v])
	}
}

// TestAC3Idempotent is spec.md §8 property 2: running AC3 again on an
// already arc-consistent map changes nothing.
func (s *ConsistencySuite) TestAC3Idempotent() {
	require := require.New(s.T())

	g0 := digraph.New()
	g0.AddEdge(0, 1)
	g0.AddEdge(1, 2)

	g1 := digraph.New()
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 2)
	g1.AddEdge(2, 0)

	l := domain.NewMap(g0.Vertices(), fullDomain(g1))
	require.True(consistency.AC3(g0, g1, l))

	sizes := map[int]int{}
	for _, v := range l.Vertices() {
		sizes[v] = l.Get(v).Size()
	}

	require.True(consistency.AC3(g0, g1, l))
	for _, v := range l.Vertices() {
		require.Equal(sizes[v], l.Get(v).Size())
	}
}

// TestSAC1RefinesAC3 is spec.md §8 property 3: SAC-1's result domains are
// always subsets of AC-3's on the same input, and SAC-1 can reject
// instances AC-3 accepts (stronger pruning).
func (s *ConsistencySuite) TestSAC1RefinesAC3() {
	require := require.New(s.T())

	// g0: two vertices with edges in both directions (a 2-cycle). A small
	// instance where AC3 is satisfiable but SAC1 is not is subtle to
	// construct by hand; instead assert the subset relationship, which
	// must hold on every instance.
	g0 := digraph.New()
	g0.AddEdge(0, 1)
	g0.AddEdge(1, 0)

	g1 := digraph.New()
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 0)
	g1.AddEdge(1, 2)

	ac3Map := domain.NewMap(g0.Vertices(), fullDomain(g1))
	require.True(consistency.AC3(g0, g1, ac3Map))

	sac1Map := domain.NewMap(g0.Vertices(), fullDomain(g1))
	require.True(consistency.SAC1(g0, g1, sac1Map))

	for _, v := range g0.Vertices() {
		for _, val := range sac1Map.Get(v).Values() {
			require.True(ac3Map.Get(v).Contains(val), "SAC1 must only remove, never add, candidates relative to AC3")
		}
	}
}

func TestConsistencySuite(t *testing.T) {
	suite.Run(t, new(ConsistencySuite))
}
