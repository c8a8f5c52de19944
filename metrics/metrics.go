// Package metrics records timing and search-effort statistics for one
// polymorphism search, persists them as CSV, and optionally exposes them
// as Prometheus gauges — grounded on
// original_source/src/metrics.rs's Metrics struct.
package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder accumulates the figures for a single search: how many times
// the solver backtracked, and how long indicator construction, AC-3/SAC-1
// propagation, and the backtracking search itself took.
type Recorder struct {
	Triad         string
	Polymorphism  string
	Found         bool
	Backtracked   int
	IndicatorTime time.Duration
	ACTime        time.Duration
	SearchTime    time.Duration
}

// WriteCSV appends one data row (no header) to w, matching the
// source's write() column order: triad, polymorphism, found, backtracked,
// indicator_time, ac_time, search_time.
func (r Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	found := "n"
	if r.Found {
		found = "y"
	}
	record := []string{
		r.Triad,
		r.Polymorphism,
		found,
		fmt.Sprintf("%d", r.Backtracked),
		r.IndicatorTime.String(),
		r.ACTime.String(),
		r.SearchTime.String(),
	}
	return cw.Write(record)
}

// Print renders a human-readable summary to w, mirroring the source's
// print() console output (without ANSI colour, which the rewrite leaves
// to the caller's logging configuration instead of hardcoding).
func (r Recorder) Print(w io.Writer) {
	status := "doesn't have"
	if r.Found {
		status = "does have"
	}
	fmt.Fprintf(w, "\t%s %s a %s polymorphism!\n", r.Triad, status, r.Polymorphism)
	fmt.Fprintf(w, "\tbacktracked: %d\n", r.Backtracked)
	fmt.Fprintf(w, "\tindicator_time: %s\n", r.IndicatorTime)
	fmt.Fprintf(w, "\tac_time: %s\n", r.ACTime)
	fmt.Fprintf(w, "\tsearch_time: %s\n", r.SearchTime)
}

// PrometheusGauges are the optional live metrics exposed under
// --metrics-addr, registered once per process and updated after every
// search.
type PrometheusGauges struct {
	Backtracked   prometheus.Gauge
	IndicatorTime prometheus.Gauge
	ACTime        prometheus.Gauge
	SearchTime    prometheus.Gauge
	Found         prometheus.Gauge
}

// NewPrometheusGauges registers the search gauges against reg.
func NewPrometheusGauges(reg prometheus.Registerer) *PrometheusGauges {
	g := &PrometheusGauges{
		Backtracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tripolys", Name: "backtracked", Help: "Number of backtracks in the most recent search.",
		}),
		IndicatorTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tripolys", Name: "indicator_time_seconds", Help: "Time spent building the indicator digraph.",
		}),
		ACTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tripolys", Name: "ac_time_seconds", Help: "Time spent in local-consistency propagation.",
		}),
		SearchTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tripolys", Name: "search_time_seconds", Help: "Time spent in backtracking search.",
		}),
		Found: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tripolys", Name: "found", Help: "1 if the most recent search found a polymorphism, 0 otherwise.",
		}),
	}
	reg.MustRegister(g.Backtracked, g.IndicatorTime, g.ACTime, g.SearchTime, g.Found)
	return g
}

// Update sets the gauges from r.
func (g *PrometheusGauges) Update(r Recorder) {
	g.Backtracked.Set(float64(r.Backtracked))
	g.IndicatorTime.Set(r.IndicatorTime.Seconds())
	g.ACTime.Set(r.ACTime.Seconds())
	g.SearchTime.Set(r.SearchTime.Seconds())
	found := 0.0
	if r.Found {
		found = 1.0
	}
	g.Found.Set(found)
}
