// Command triads generates core triad digraphs and checks whether they
// admit polymorphisms of a given kind, grounded on
// original_source/src/main.rs and configuration.rs, wired with cobra/
// pflag the way operator-lifecycle-manager's cmd/operator-cli/main.go
// wires its root command.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/WhatDothLife/triads/internal/config"
	"github.com/WhatDothLife/triads/internal/log"
	"github.com/WhatDothLife/triads/metrics"
)

func main() {
	var (
		data         string
		triadArg     string
		nodes        string
		length       string
		poly         string
		conservative bool
		idempotent   bool
		core         bool
		dot          string
		consistency  string
		configPath   string
		metricsAddr  string
		chainH       int
		chainK       int
	)

	rootCmd := &cobra.Command{
		Use:   "triads",
		Short: "triads",
		Long:  "A program for generating core triads and checking polymorphisms.",

		PreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				defaults, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("loading --config: %w", err)
				}
				applyConfigDefaults(cmd, defaults)
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetDebug(true)
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			if triadArg == "" && nodes == "" && length == "" {
				return fmt.Errorf("must provide exactly one of the following arguments: --triad, --nodes, --length")
			}

			var gauges *metrics.PrometheusGauges
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				gauges = metrics.NewPrometheusGauges(reg)
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				go func() {
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						log.L().WithError(err).Warn("metrics server stopped")
					}
				}()
			}

			return run(options{
				data:         data,
				triadArg:     triadArg,
				nodes:        nodes,
				length:       length,
				polymorphism: poly,
				conservative: conservative,
				idempotent:   idempotent,
				core:         core,
				dot:          dot,
				consistency:  consistency,
				chainH:       chainH,
				chainK:       chainK,
				gauges:       gauges,
			})
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&length, "length", "l", "", "Arm length of triads, e.g. 5 or 3-6")
	flags.StringVarP(&nodes, "nodes", "n", "", "Number of nodes of triads, e.g. 10 or 5-9")
	flags.StringVarP(&triadArg, "triad", "t", "", "Triad to operate on, e.g. 111,011,01")
	flags.BoolVarP(&idempotent, "idempotent", "i", false, "Idempotence flag; every polymorphism search is idempotent whether or not it is set")
	flags.BoolVarP(&conservative, "conservative", "c", false, "Whether the polymorphism should be conservative")
	flags.BoolVarP(&core, "core", "C", false, "Checks if triad is a core")
	flags.StringVarP(&dot, "dot", "D", "", "Write the graph to file (in dot format)")
	flags.StringVarP(&poly, "polymorphism", "p", "", "Polymorphism to check: commutative, majority, siggers, 3wnu, <k>wnu, 3/4wnu, or h/k-wnu")
	flags.StringVarP(&data, "data", "d", "data", "Where to store the data")
	flags.StringVar(&consistency, "consistency", "ac3", "Local consistency algorithm to run: ac3 or sac1")
	flags.StringVar(&configPath, "config", "", "Optional YAML file of flag defaults")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on, e.g. :9090")
	flags.IntVar(&chainH, "chain-h", 0, "Chain height for the h/k-wnu polymorphism (default 2)")
	flags.IntVar(&chainK, "chain-k", 0, "Per-link arity for the h/k-wnu polymorphism (default 3)")

	rootCmd.Flags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.Flags().MarkHidden("debug"); err != nil {
		log.L().Panic(err.Error())
	}

	if err := rootCmd.Execute(); err != nil {
		log.L().WithError(err).Error("triads: fatal error")
		os.Exit(1)
	}
}

// applyConfigDefaults seeds any flag the user didn't pass explicitly
// from a loaded --config file, so an explicit CLI flag always wins.
func applyConfigDefaults(cmd *cobra.Command, d config.Defaults) {
	set := func(name, value string) {
		if value == "" || cmd.Flags().Changed(name) {
			return
		}
		_ = cmd.Flags().Set(name, value)
	}
	set("data", d.Data)
	set("consistency", d.Consistency)
	set("polymorphism", d.Polymorphism)
	set("metrics-addr", d.MetricsAddr)

	setBool := func(name string, value bool) {
		if !value || cmd.Flags().Changed(name) {
			return
		}
		_ = cmd.Flags().Set(name, "true")
	}
	setBool("conservative", d.Conservative)
	setBool("idempotent", d.Idempotent)
	if d.Debug && !cmd.Flags().Changed("debug") {
		_ = cmd.Flags().Set("debug", "true")
	}
}
