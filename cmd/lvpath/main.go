// SPDX-License-Identifier: MIT

// Command lvpath runs single-source shortest-path queries over a weighted
// undirected graph and prints the distance of every node.
//
// Usage:
//
//	lvpath [--graph FILE] [--source ID]... [--target ID] [--svg OUT]
//	       [--heap-demo N] [--seed S] [--max-distance D]
//	       [--metrics-out FILE] [--log-level LEVEL] [--letters]
//
// Without --graph the six-node sample graph is used. Every flag can also be
// set through LVPATH_<FLAG> (dashes become underscores) or a --config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphfile"
	"github.com/katalvlaran/lvpath/heap"
	"github.com/katalvlaran/lvpath/internal/config"
	"github.com/katalvlaran/lvpath/layout"
	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/render"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run is main without the process globals; it returns the exit code.
func run(ctx context.Context, args []string, out io.Writer) int {
	s, err := config.Load(config.NewFlagSet("lvpath"), args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Str("kind", errorKind(err)).Msg("invalid configuration")
		return 1
	}

	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		log.Error().Err(err).Str("kind", "config").Str("log-level", s.LogLevel).Msg("invalid configuration")
		return 1
	}
	zerolog.SetGlobalLevel(level)

	if err := execute(ctx, s, out); err != nil {
		log.Error().Err(err).Str("kind", errorKind(err)).Msg("lvpath failed")
		return 1
	}

	return 0
}

func execute(ctx context.Context, s config.Settings, out io.Writer) error {
	label := strconv.Itoa
	if s.Letters {
		label = render.LetterLabels
	}

	if s.HeapDemo > 0 {
		if err := heapDemo(out, s.HeapDemo, s.Seed); err != nil {
			return err
		}
	}

	g, fileSource, err := loadGraph(s.Graph)
	if err != nil {
		return err
	}
	log.Debug().Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Str("graph", lo.Ternary(s.Graph == "", "sample", s.Graph)).Msg("graph loaded")

	sources := s.Sources
	if len(sources) == 0 {
		sources = []int{fileSource}
	}

	opts := []dijkstra.Option{dijkstra.WithReturnPath()}
	if !math.IsInf(s.MaxDistance, 1) {
		opts = append(opts, dijkstra.WithMaxDistance(s.MaxDistance))
	}
	reg := prometheus.NewRegistry()
	if s.MetricsOut != "" {
		opts = append(opts, dijkstra.WithObserver(metrics.NewCollector(reg)))
	}

	results, err := dijkstra.AllFrom(ctx, g, sources, opts...)
	if err != nil {
		return err
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "source %s\n", label(res.Source))
		if walk, err := bfs.BFS(g, res.Source, bfs.WithContext(ctx)); err == nil {
			log.Debug().Int("source", res.Source).Int("reachable", len(walk.Order)).Int("nodes", g.NodeCount()).Msg("component")
		}
		if err := render.DistanceTable(out, res.Dist, render.WithLabels(label)); err != nil {
			return errgo.Wrap(err, "failed to write distances")
		}
		if s.Target != nil {
			printPath(out, res, *s.Target, label)
		}
	}

	if s.SVG != "" {
		if err := writeSVG(s.SVG, g, results[0].Dist, label); err != nil {
			return err
		}
		log.Info().Str("file", s.SVG).Msg("layout written")
	}

	if s.MetricsOut != "" {
		if err := metrics.WriteFile(s.MetricsOut, reg); err != nil {
			return errgo.Wrap(err, "failed to write metrics")
		}
		log.Info().Str("file", s.MetricsOut).Msg("metrics written")
	}

	return nil
}

// loadGraph returns the graph and the source to use when none was given.
func loadGraph(path string) (*core.Graph, int, error) {
	if path == "" {
		return builder.SampleGraph(), builder.NodeA, nil
	}

	f, err := graphfile.Load(path)
	if err != nil {
		return nil, 0, err
	}
	g, err := f.Build()
	if err != nil {
		return nil, 0, err
	}

	switch {
	case f.Source != nil:
		return g, *f.Source, nil
	case g.NodeCount() > 0:
		return g, g.Nodes()[0], nil
	default:
		return g, 0, nil
	}
}

func printPath(out io.Writer, res dijkstra.Result, target int, label func(int) string) {
	path, err := dijkstra.PathTo(res.Prev, res.Source, target)
	if err != nil {
		fmt.Fprintf(out, "path to %s: none\n", label(target))
		return
	}
	fmt.Fprintf(out, "path to %s: %s (%s)\n",
		label(target),
		strings.Join(lo.Map(path, func(id int, _ int) string { return label(id) }), " -> "),
		render.FormatDistance(res.Dist[target]))
}

func writeSVG(path string, g *core.Graph, dist map[int]float64, label func(int) string) error {
	lay, err := layout.Spectral(g)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errgo.Wrap(err, fmt.Sprintf("failed to create %s", path))
	}
	if err := render.GraphSVG(f, g, lay, dist, render.WithLabels(label)); err != nil {
		f.Close()
		return errgo.Wrap(err, fmt.Sprintf("failed to write %s", path))
	}

	return errgo.Wrap(f.Close(), fmt.Sprintf("failed to close %s", path))
}

// heapDemo pushes a seeded permutation of 0..n-1, draws the heap, then pops
// everything; the popped priorities come out sorted.
func heapDemo(out io.Writer, n int, seed int64) error {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	fmt.Fprintf(out, "heap demo %v\n", perm)

	h := heap.NewOrdered[int, struct{}](heap.WithCapacity[int](n))
	for i, p := range perm {
		if err := h.Push(float64(p), i, struct{}{}); err != nil {
			return err
		}
	}
	if err := render.HeapTree(out, h.Entries()); err != nil {
		return errgo.Wrap(err, "failed to draw heap")
	}

	popped := make([]string, 0, n)
	for h.Size() > 0 {
		e, err := h.PopMin()
		if err != nil {
			return err
		}
		popped = append(popped, render.FormatDistance(e.Priority))
	}
	fmt.Fprintf(out, "popped %s\n\n", strings.Join(popped, " "))

	return nil
}

var errorKinds = []lo.Tuple2[error, string]{
	{A: config.ErrInvalidSetting, B: "config"},
	{A: graphfile.ErrUnknownFormat, B: "graph-format"},
	{A: graphfile.ErrDecode, B: "graph-decode"},
	{A: core.ErrBadWeight, B: "bad-weight"},
	{A: core.ErrLoopNotAllowed, B: "loop"},
	{A: core.ErrMultiEdgeNotAllowed, B: "multi-edge"},
	{A: dijkstra.ErrUnknownSource, B: "unknown-source"},
	{A: dijkstra.ErrNegativeWeight, B: "negative-weight"},
	{A: dijkstra.ErrNilGraph, B: "nil-graph"},
	{A: dijkstra.ErrBadMaxDistance, B: "config"},
	{A: dijkstra.ErrBadInfThreshold, B: "config"},
	{A: heap.ErrEmptyHeap, B: "heap"},
	{A: heap.ErrDuplicateKey, B: "heap"},
	{A: heap.ErrKeyNotFound, B: "heap"},
	{A: heap.ErrInvalidPriority, B: "heap"},
	{A: heap.ErrCorrupted, B: "heap"},
	{A: layout.ErrEmptyGraph, B: "empty-graph"},
	{A: layout.ErrEigenFailed, B: "layout"},
	{A: render.ErrMissingPoint, B: "render"},
	{A: context.Canceled, B: "canceled"},
	{A: context.DeadlineExceeded, B: "canceled"},
	{A: fs.ErrNotExist, B: "io"},
	{A: fs.ErrPermission, B: "io"},
}

// errorKind names the sentinel behind err for the log line; unknown errors are "internal".
func errorKind(err error) string {
	kind, ok := lo.Find(errorKinds, func(k lo.Tuple2[error, string]) bool { return errors.Is(err, k.A) })
	if !ok {
		return "internal"
	}

	return kind.B
}
