package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/WhatDothLife/triads/consistency"
	"github.com/WhatDothLife/triads/internal/log"
	"github.com/WhatDothLife/triads/metrics"
	"github.com/WhatDothLife/triads/polymorphism"
	"github.com/WhatDothLife/triads/store"
	"github.com/WhatDothLife/triads/triad"
)

// options collects every flag run needs, already parsed into Go types —
// the counterpart of original_source/src/configuration.rs's
// TripolysOptions/Configuration pair.
type options struct {
	data         string
	triadArg     string
	nodes        string
	length       string
	polymorphism string
	conservative bool
	idempotent   bool
	core         bool
	dot          string
	consistency  string
	chainH       int
	chainK       int
	gauges       *metrics.PrometheusGauges
}

// run dispatches to one of the three modes original_source/src/main.rs's
// run function selects between: writing a triad's digraph to DOT,
// checking a single triad for coreness, or checking a polymorphism
// (either for one named triad, or across an enumerated range of cores).
func run(o options) error {
	algo := consistency.AC3Only
	if o.consistency == "sac1" {
		algo = consistency.SAC1Only
	}

	switch {
	case o.dot != "":
		return runDot(o)
	case o.core:
		return runCore(o)
	case o.triadArg != "":
		return runPolymorphismSingle(o, algo)
	case o.nodes != "" || o.length != "":
		return runPolymorphismRange(o, algo)
	default:
		return fmt.Errorf("must provide exactly one of: --triad, --nodes, --length")
	}
}

func runDot(o options) error {
	t, err := triad.FromString(o.triadArg)
	if err != nil {
		return err
	}
	f, err := os.Create(o.dot)
	if err != nil {
		return fmt.Errorf("writing dot file: %w", err)
	}
	defer f.Close()
	return t.Digraph().WriteDOT(f, nil)
}

func runCore(o options) error {
	t, err := triad.FromString(o.triadArg)
	if err != nil {
		return err
	}
	if t.IsCore() {
		fmt.Printf("%s is a core!\n", t)
	} else {
		fmt.Printf("%s is not a core!\n", t)
	}
	return nil
}

func runPolymorphismSingle(o options, algo consistency.Algorithm) error {
	t, err := triad.FromString(o.triadArg)
	if err != nil {
		return err
	}
	kind, wnuK, err := polymorphism.ParseKind(o.polymorphism)
	if err != nil {
		return err
	}

	log.L().Info("checking polymorphism")
	rec, poly := search(t, kind, wnuK, o, algo)
	rec.Print(os.Stdout)
	if o.gauges != nil {
		o.gauges.Update(rec)
	}

	if poly == nil {
		return nil
	}
	cache := store.NewCache(o.data)
	key := fmt.Sprintf("poly_%s_%s.txt", o.polymorphism, t)
	return cache.AppendLine(key, poly.String())
}

func runPolymorphismRange(o options, algo consistency.Algorithm) error {
	kind, wnuK, err := polymorphism.ParseKind(o.polymorphism)
	if err != nil {
		return err
	}

	cons := triad.ByNodes
	rangeArg := o.nodes
	if o.length != "" {
		cons = triad.ByLength
		rangeArg = o.length
	}
	sizes, err := parseRange(rangeArg)
	if err != nil {
		return err
	}

	cache := store.NewCache(o.data)
	log.L().Info("generating core triads")
	for _, n := range sizes {
		var triads []*triad.Triad
		if cons == triad.ByLength {
			triads, err = triad.CoresByLength(n, cache)
		} else {
			triads, err = triad.CoresByNodes(n, cache)
		}
		if err != nil {
			return err
		}

		log.L().WithField("size", n).WithField("count", len(triads)).Info("checking polymorphism for generated cores")
		for _, t := range triads {
			rec, poly := search(t, kind, wnuK, o, algo)
			if o.gauges != nil {
				o.gauges.Update(rec)
			}
			if poly != nil {
				continue
			}
			fmt.Printf("\t%s doesn't have a %s polymorphism!\n", t, o.polymorphism)
			key := filepath.Join(cons.String(), fmt.Sprintf("triads_%s_%d.txt", o.polymorphism, n))
			if werr := cache.AppendLine(key, t.String()); werr != nil {
				return werr
			}
		}
	}
	return nil
}

func search(t *triad.Triad, kind polymorphism.Kind, wnuK int, o options, algo consistency.Algorithm) (metrics.Recorder, *polymorphism.Polymorphism) {
	// NewFinderForKind already forces idempotent=true for every kind,
	// matching find_polymorphism's unconditional finder.idempotent(true).
	// wnuK is the arity ParseKind parsed out of a general "<k>wnu" flag
	// value (KindWNUK); every other kind ignores it and uses --chain-k
	// instead (only KindHKWNU reads that one).
	k := o.chainK
	if kind == polymorphism.KindWNUK {
		k = wnuK
	}
	finder := polymorphism.NewFinderForKind(kind, o.chainH, k).
		WithConservative(o.conservative)

	start := time.Now()
	res := finder.Find(t.Digraph(), algo)
	elapsed := time.Since(start)

	rec := metrics.Recorder{
		Triad:        t.String(),
		Polymorphism: o.polymorphism,
		Found:        res.Found,
		Backtracked:  res.Backtracked,
		SearchTime:   elapsed,
	}
	if !res.Found {
		return rec, nil
	}
	return rec, res.Poly
}
