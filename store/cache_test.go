package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads/store"
)

func TestCacheMissReturnsErrNotFound(t *testing.T) {
	c := store.NewCache(t.TempDir())
	_, err := c.ReadLines("nodes/pairs_4")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCacheAppendThenReadRoundTrips(t *testing.T) {
	require := require.New(t)
	c := store.NewCache(t.TempDir())

	require.NoError(c.AppendLine("arms/arms3", "001"))
	require.NoError(c.AppendLine("arms/arms3", "011"))

	lines, err := c.ReadLines("arms/arms3")
	require.NoError(err)
	require.Equal([]string{"001", "011"}, lines)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	first := store.NewCache(dir)
	require.NoError(first.AppendLine("nodes/cores_8", "1,0,00"))

	second := store.NewCache(dir)
	lines, err := second.ReadLines("nodes/cores_8")
	require.NoError(err)
	require.Equal([]string{"1,0,00"}, lines)
	require.FileExists(filepath.Join(dir, "nodes", "cores_8"))
}
