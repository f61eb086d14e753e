// SPDX-License-Identifier: MIT

// Package lvpath is a small toolkit for single-source shortest paths on
// weighted undirected graphs, built around an indexed binary min-heap.
//
// 🚀 What's inside?
//
//	heap/      — generic indexed min-heap: Push, PopMin, Peek, in-place UpdatePriority
//	core/      — thread-safe undirected weighted graph with int node IDs
//	dijkstra/  — Dijkstra with true decrease-key, path reconstruction, concurrent AllFrom
//	bfs/       — hop-count walk; reachability oracle for the traversal
//	builder/   — sample, path, cycle and seeded random sparse graphs
//	graphfile/ — strict YAML/TOML graph documents
//	layout/    — spectral layout from the graph Laplacian (gonum)
//	render/    — heap trees, distance tables, SVG drawings
//	metrics/   — Prometheus observer for traversal events
//	cmd/lvpath — command-line front end
//
// ✨ Quick start:
//
//	g := builder.SampleGraph()
//	dist, prev, _ := dijkstra.Dijkstra(g, builder.NodeA, dijkstra.WithReturnPath())
//	path, _ := dijkstra.PathTo(prev, builder.NodeA, builder.NodeC) // [A B D C], dist 7
//
// Library packages never log; they return package-prefixed sentinel errors
// wrapped with context, so callers can test them with errors.Is.
package lvpath
