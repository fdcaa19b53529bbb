// SPDX-License-Identifier: MIT
// Command isomatch searches for a pattern graph inside a target graph.
//
//	isomatch -pattern gen:cycle:4 -target gen:grid:3x3 -mode subgraph
//	isomatch -pattern motif.g -target inline:'a - b - c - a' -count
//
// A graph source is a file in graphfmt notation, "gen:" followed by a
// builder spec (cycle:5, grid:2x3, bipartite:2,3, random:8,0.3,42), or
// "inline:" followed by graphfmt text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isomatch/graphfmt"
	"github.com/katalvlaran/isomatch/vf2"
)

type config struct {
	pattern, target string
	mode            string
	limit           int
	countOnly       bool
	labels          bool
	weights         bool
	multi           bool
	directed        bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fset := flag.NewFlagSet("isomatch", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{FileNameCharWidth: 16})

	var cfg config
	fset.StringVar(&cfg.pattern, "pattern", "", "pattern graph source (file, gen:SPEC or inline:TEXT)")
	fset.StringVar(&cfg.target, "target", "", "target graph source (file, gen:SPEC or inline:TEXT)")
	fset.StringVar(&cfg.mode, "mode", "subgraph", "exact | subgraph | induced")
	fset.IntVar(&cfg.limit, "limit", 0, "stop after N mappings (0 = all)")
	fset.BoolVar(&cfg.countOnly, "count", false, "print only the number of mappings")
	fset.BoolVar(&cfg.labels, "labels", false, "require equal vertex labels")
	fset.BoolVar(&cfg.weights, "weights", false, "require equal edge weights")
	fset.BoolVar(&cfg.multi, "multi", false, "count parallel edges")
	fset.BoolVar(&cfg.directed, "directed", false, "build gen: sources as directed graphs")
	if err := fset.Parse(args); err != nil {
		return 2
	}
	defer klog.Flush()

	if err := search(cfg, out); err != nil {
		klog.Errorf("isomatch: %v", err)

		return 1
	}

	return 0
}

func search(cfg config, out io.Writer) error {
	if cfg.pattern == "" || cfg.target == "" {
		return fmt.Errorf("both -pattern and -target are required")
	}
	mode, err := vf2.ParseMode(cfg.mode)
	if err != nil {
		return err
	}
	pattern, err := loadSource(cfg.pattern, cfg.directed)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	target, err := loadSource(cfg.target, cfg.directed)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	opts := []vf2.Option{vf2.WithMultiplicity(cfg.multi)}
	if cfg.labels {
		opts = append(opts, vf2.WithVertexMatch(vf2.MatchVertexMetadata(pattern, target, graphfmt.LabelKey)))
	}
	if cfg.weights {
		opts = append(opts, vf2.WithEdgeMatch(vf2.MatchEdgeWeight))
	}

	m, err := vf2.NewMatcher(pattern, target, mode, opts...)
	if err != nil {
		return err
	}
	if err := m.Err(); err != nil {
		klog.V(1).Infof("isomatch: %v", err)
	}

	sum := newSummary()
	for mp := range m.All() {
		sum.add(mp)
		if !cfg.countOnly {
			fmt.Fprintln(out, mp)
		}
		if cfg.limit > 0 && sum.total == cfg.limit {
			break
		}
	}

	if cfg.countOnly {
		fmt.Fprintln(out, sum.total)
		return nil
	}
	sum.write(out)
	s := m.Stats()
	fmt.Fprintf(out, "# mappings=%s states=%s checks=%s backtracks=%s\n",
		humanize.Comma(s.Mappings), humanize.Comma(s.States),
		humanize.Comma(s.FeasibilityChecks), humanize.Comma(s.Backtracks))

	return nil
}
