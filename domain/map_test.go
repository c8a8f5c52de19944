package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/WhatDothLife/triads/domain"
)

type MapSuite struct {
	suite.Suite
}

func (s *MapSuite) TestShrinkIntersects() {
	require := require.New(s.T())
	m := domain.NewMap([]int{0, 1}, func(v int) domain.Set {
		return domain.NewSet(0, 1, 2)
	})

	changed := m.Shrink(0, domain.NewSet(1, 2))
	require.True(changed)
	require.False(m.Get(0).Contains(0))
	require.True(m.Get(0).Contains(1))
	require.True(m.Get(0).Contains(2))

	// vertex 1 untouched
	require.Equal(3, m.Get(1).Size())
}

func (s *MapSuite) TestShrinkNoopReportsUnchanged() {
	require := require.New(s.T())
	m := domain.NewMap([]int{0}, func(v int) domain.Set {
		return domain.NewSet(0, 1)
	})
	changed := m.Shrink(0, domain.NewSet(0, 1, 2))
	require.False(changed, "shrinking against a superset must not report a change")
}

func (s *MapSuite) TestIsEmptyDetectsWipeout() {
	require := require.New(s.T())
	m := domain.NewMap([]int{0}, func(v int) domain.Set {
		return domain.NewSet(0)
	})
	require.False(m.IsEmpty())
	m.Shrink(0, domain.NewSet(99))
	require.True(m.IsEmpty())
}

// TestSnapshotRestoreIsolatesMutation verifies the structural-sharing
// scheme: taking a snapshot, mutating the live map, then restoring from
// the snapshot must fully undo the mutation (Design Note 1).
func (s *MapSuite) TestSnapshotRestoreIsolatesMutation() {
	require := require.New(s.T())
	m := domain.NewMap([]int{0, 1}, func(v int) domain.Set {
		return domain.NewSet(0, 1, 2)
	})

	snap := m.Snapshot()
	m.Shrink(0, domain.NewSet(0))
	m.Shrink(1, domain.NewSet(1))
	require.Equal(1, m.Get(0).Size())
	require.Equal(1, m.Get(1).Size())

	m.Restore(snap)
	require.Equal(3, m.Get(0).Size())
	require.Equal(3, m.Get(1).Size())
}

// TestCloneIsFullyIndependent ensures that a Shrink on the original after
// Clone is not observed by the clone.
func (s *MapSuite) TestCloneIsFullyIndependent() {
	require := require.New(s.T())
	m := domain.NewMap([]int{0}, func(v int) domain.Set {
		return domain.NewSet(0, 1)
	})
	clone := m.Clone()
	m.Shrink(0, domain.NewSet(0))
	require.Equal(1, m.Get(0).Size())
	require.Equal(2, clone.Get(0).Size(), "clone must not observe mutation of the original")
}

func TestMapSuite(t *testing.T) {
	suite.Run(t, new(MapSuite))
}
