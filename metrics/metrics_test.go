package metrics_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads/metrics"
)

func TestWriteCSVColumns(t *testing.T) {
	require := require.New(t)
	r := metrics.Recorder{
		Triad:         "10,01,1",
		Polymorphism:  "majority",
		Found:         true,
		Backtracked:   3,
		IndicatorTime: time.Millisecond,
		ACTime:        time.Microsecond,
		SearchTime:    time.Second,
	}

	var buf bytes.Buffer
	require.NoError(r.WriteCSV(&buf))
	require.Contains(buf.String(), "10,01,1")
	require.Contains(buf.String(), "majority")
	require.Contains(buf.String(), "y")
}

func TestPrintIncludesFoundStatus(t *testing.T) {
	require := require.New(t)
	r := metrics.Recorder{Triad: "0,0,0", Polymorphism: "majority", Found: false}
	var buf bytes.Buffer
	r.Print(&buf)
	require.Contains(buf.String(), "doesn't have")
}
