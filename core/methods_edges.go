// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/HasEdge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() keeps insertion order; Edges() walks nodes by ascending ID.
// Concurrency:
//   - Connect under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// Connect makes a and b neighbors with the given weight, appending the pairing
// to both endpoints' neighbor lists. Missing endpoints are created.
//
// Steps:
//  1. Reject NaN weights (ErrBadWeight) and, unless WithLoops, a == b (ErrLoopNotAllowed).
//  2. Lock mu, ensure both endpoints exist.
//  3. Unless WithMultiEdges, reject an existing a–b edge (ErrMultiEdgeNotAllowed).
//  4. Append (a→b, w) to a and, for a != b, (b→a, w) to b.
//
// Negative weights are accepted here.
// Complexity: O(log V + deg(a)).
func (g *Graph) Connect(a, b int, weight float64) error {
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: %d–%d", ErrBadWeight, a, b)
	}
	if a == b && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na := g.ensureNode(a)
	nb := g.ensureNode(b)
	if !g.allowMulti && hasEdgeTo(na, b) {
		return fmt.Errorf("%w: %d–%d", ErrMultiEdgeNotAllowed, a, b)
	}

	na.edges = append(na.edges, Edge{From: a, To: b, Weight: weight})
	if a != b {
		nb.edges = append(nb.edges, Edge{From: b, To: a, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one a–b edge exists.
// Complexity: O(log V + deg(a)).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes.Get(a)

	return ok && hasEdgeTo(n, b)
}

// Neighbors returns a copy of id's neighbor list in insertion order.
// Every returned Edge has From == id.
// Returns ErrNodeNotFound if id is not a node of g.
// Complexity: O(log V + deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out, nil
}

// Edges returns every undirected edge exactly once, oriented From <= To,
// ordered by From and then by From's neighbor-list order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	g.nodes.Scan(func(_ int, n *node) bool {
		for _, e := range n.edges {
			if e.From <= e.To {
				out = append(out, e)
			}
		}
		return true
	})

	return out
}

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func hasEdgeTo(n *node, to int) bool {
	for _, e := range n.edges {
		if e.To == to {
			return true
		}
	}

	return false
}
