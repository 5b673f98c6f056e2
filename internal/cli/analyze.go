// Package cli wires the flag-parsing, config loading, and pipeline
// orchestration for the tilfa command into one small, unit-testable
// entry point, following the teacher's RunXxx(args []string) error
// shape.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/okdaichi/tilfa/internal/config"
	"github.com/okdaichi/tilfa/internal/metrics"
	"github.com/okdaichi/tilfa/internal/render"
	"github.com/okdaichi/tilfa/internal/scan"
	"github.com/okdaichi/tilfa/internal/sink"
	"github.com/okdaichi/tilfa/internal/stats"
	"github.com/okdaichi/tilfa/internal/tilfa"
	"github.com/okdaichi/tilfa/internal/topology"
	"github.com/okdaichi/tilfa/internal/version"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrMissingInputFile is returned when no input file argument is
// given.
var ErrMissingInputFile = errors.New("missing input file argument")

// RunAnalyze parses args, loads a topology, runs the full failure
// scan, and writes the resulting report to stdout. It never calls
// os.Exit itself, keeping it straightforward to exercise in tests.
func RunAnalyze(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tilfa", flag.ContinueOnError)
	quiet := fs.Bool("quiet", true, "suppress per-pair path listings, printing only the statistics summary")
	configPath := fs.String("config", "", "optional YAML file overriding scan defaults")
	pngPath := fs.String("png", "", "if set, render a PNG of the first scenario with a non-zero label count")
	metricsAddr := fs.String("metrics-addr", "", "if set, serve Prometheus metrics on this address until scraped")
	concurrency := fs.Int("concurrency", 1, "worker count for the failure scan (1 = sequential)")
	showVersion := fs.Bool("version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.Full())
		return nil
	}

	if fs.NArg() < 1 {
		return ErrMissingInputFile
	}
	inputFile := fs.Arg(0)

	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	c, p, m := cfg.ApplyDefaults(*concurrency, *pngPath, *metricsAddr)
	if !explicit["concurrency"] {
		*concurrency = c
	}
	if !explicit["png"] {
		*pngPath = p
	}
	if !explicit["metrics-addr"] {
		*metricsAddr = m
	}

	topo, err := topology.LoadFile(inputFile)
	if err != nil {
		return fmt.Errorf("loading topology: %w", err)
	}

	slog.Info("starting failure scan", "nodes", topo.N, "edges", len(topo.Edges()), "concurrency", *concurrency)

	agg := stats.New()
	reach := stats.NewBinary()
	driver := &scan.Driver{Concurrency: *concurrency}
	results := driver.Run(topo, agg, reach)

	out := sink.New(stdout)
	var firstRepair []int
	for _, r := range results {
		if !*quiet {
			if r.IsNodeFailure {
				out.NodeFailureHeader(r.Node)
			} else {
				out.LinkFailureHeader(r.A, r.B)
			}
		}
		for _, p := range r.Pairs {
			if firstRepair == nil && p.OK && p.Labels > 0 {
				firstRepair = p.After
			}
			if !*quiet {
				out.PairResult(p.I, p.J, p.Before, p.After, p.Labels, p.OK)
				for _, ev := range p.Events {
					if ev.Kind == tilfa.NullSegment {
						fmt.Fprintf(stdout, "null segment at node %d (0 labels)\n", ev.Node+1)
					}
				}
			}
		}
	}
	out.Stats(agg.Snapshot())
	out.Reachability(reach.Snapshot())

	if *pngPath != "" {
		highlight := firstRepair
		if highlight == nil {
			highlight = []int{}
		}
		if err := render.PNG(topo, highlight, *pngPath); err != nil {
			return fmt.Errorf("rendering png: %w", err)
		}
	}

	if *metricsAddr != "" {
		reg := metrics.NewRegistry(prometheus.DefaultRegisterer)
		reg.Mirror(agg.Snapshot())
		reg.MirrorReachability(reach.Snapshot())
		if err := metrics.Serve(*metricsAddr, 30*time.Second); err != nil {
			return fmt.Errorf("serving metrics: %w", err)
		}
	}

	return nil
}
