package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/WhatDothLife/triads/consistency"
	"github.com/WhatDothLife/triads/digraph"
	"github.com/WhatDothLife/triads/domain"
	"github.com/WhatDothLife/triads/search"
)

func fullDomain(g1 *digraph.Digraph) func(v int) domain.Set {
	all := g1.Vertices()
	return func(v int) domain.Set { return domain.NewSet(all...) }
}

type SearchSuite struct {
	suite.Suite
}

// TestSolveFindsHomomorphism: an oriented path of length 3 always maps
// homomorphically into a directed triangle (a core of itself), so a
// witness assignment must exist.
func (s *SearchSuite) TestSolveFindsHomomorphism() {
	require := require.New(s.T())

	g0 := digraph.New()
	g0.AddEdge(0, 1)
	g0.AddEdge(1, 2)
	g0.AddEdge(2, 3)

	g1 := digraph.New()
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 2)
	g1.AddEdge(2, 0)

	l := domain.NewMap(g0.Vertices(), fullDomain(g1))
	res := search.Solve(g0, g1, l, consistency.AC3Only)
	require.True(res.Found)
	require.NotNil(res.Assignment)

	for _, v := range g0.Vertices() {
		require.Equal(1, res.Assignment.Get(v).Size(), "every vertex must be fully assigned in a witness")
	}
	for _, e := range g0.Edges() {
		u := res.Assignment.Get(e[0]).Values()[0]
		w := res.Assignment.Get(e[1]).Values()[0]
		require.True(g1.HasEdge(u, w), "witness must preserve every edge")
	}
}

// TestSolveRejectsImpossibleHomomorphism: a directed triangle never maps
// into a single directed edge.
func (s *SearchSuite) TestSolveRejectsImpossibleHomomorphism() {
	require := require.New(s.T())

	g0 := digraph.New()
	g0.AddEdge(0, 1)
	g0.AddEdge(1, 2)
	g0.AddEdge(2, 0)

	g1 := digraph.New()
	g1.AddEdge(0, 1)

	l := domain.NewMap(g0.Vertices(), fullDomain(g1))
	res := search.Solve(g0, g1, l, consistency.AC3Only)
	require.False(res.Found)
}

// TestSolveDoesNotMutateInput ensures Solve's caller can reuse l after
// the call (Solve works on an internal clone).
func (s *SearchSuite) TestSolveDoesNotMutateInput() {
	require := require.New(s.T())

	g0 := digraph.New()
	g0.AddEdge(0, 1)

	g1 := digraph.New()
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 0)

	l := domain.NewMap(g0.Vertices(), fullDomain(g1))
	sizeBefore := l.Get(0).Size()
	search.Solve(g0, g1, l, consistency.AC3Only)
	require.Equal(sizeBefore, l.Get(0).Size())
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}
