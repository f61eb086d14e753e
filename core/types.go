// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Node and Edge types, options, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"

	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight is NaN")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one (weight, neighbor) pairing as seen from node From.
//
// In a neighbor list From is always the owning node; in Edges() From <= To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// node is the stored form of a graph node: its ID and its ordered neighbor list.
type node struct {
	id    int
	edges []Edge
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an undirected, weighted graph with integer node IDs.
//
// mu guards nodes and edgeCount; configuration flags are immutable after NewGraph.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	nodes     *btree.Map[int, *node] // ID → node, ascending
	edgeCount int
}

// NewGraph creates an empty Graph. By default loops and parallel edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: btree.NewMap[int, *node](0),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
