package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads/internal/config"
)

func TestLoadParsesYAML(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "tripolys.yaml")
	require.NoError(os.WriteFile(path, []byte("data: /var/tripolys\nconsistency: sac1\nconservative: true\n"), 0o644))

	d, err := config.Load(path)
	require.NoError(err)
	require.Equal("/var/tripolys", d.Data)
	require.Equal("sac1", d.Consistency)
	require.True(d.Conservative)
	require.False(d.Idempotent)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
