// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/Nodes/NodeCount/Degree.
// Determinism:
//   - Nodes() returns IDs in ascending order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode inserts an isolated node. Adding an existing ID is a no-op.
// Complexity: O(log V).
func (g *Graph) AddNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// HasNode reports whether id is a node of g.
// Complexity: O(log V).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes.Get(id)

	return ok
}

// Nodes returns every node ID in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, g.nodes.Len())
	g.nodes.Scan(func(id int, _ *node) bool {
		ids = append(ids, id)
		return true
	})

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}

// Degree returns the length of id's neighbor list. A self-loop counts once.
// Returns ErrNodeNotFound if id is not a node of g.
// Complexity: O(log V).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(n.edges), nil
}

// ensureNode returns the node for id, creating it if needed. Caller holds mu.
func (g *Graph) ensureNode(id int) *node {
	if n, ok := g.nodes.Get(id); ok {
		return n
	}
	n := &node{id: id}
	g.nodes.Set(id, n)

	return n
}
