// SPDX-License-Identifier: MIT

// Package core provides the in-memory, undirected, weighted Graph consumed by
// the shortest-path traversal and the presentation packages.
//
// A Graph G = (V, E) stores nodes keyed by a stable integer ID. Every node
// owns an ordered list of (weight, neighbor) pairs; Connect(a, b, w) appends
// the pair to both endpoints, so the adjacency is symmetric by construction.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (a == b); otherwise Connect(v, v, w) → ErrLoopNotAllowed.
//	    A loop appears once in its node's neighbor list.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second Connect(a, b, w) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddNode(id int)                        // O(log V), idempotent
//	HasNode(id int) bool                   // O(log V)
//	Connect(a, b int, weight float64) error // O(log V + deg) ; creates missing endpoints
//	HasEdge(a, b int) bool                 // O(log V + deg)
//	Neighbors(id int) ([]Edge, error)      // O(deg), insertion order, detached copy
//	Degree(id int) (int, error)            // O(log V)
//	Nodes() []int                          // O(V), ascending ID
//	Edges() []Edge                         // O(V+E), each undirected edge once
//	NodeCount() int, EdgeCount() int       // O(1)
//
// Weights:
//
//   - Weights are float64. NaN is rejected with ErrBadWeight.
//   - Negative weights are stored as given. Algorithms that need
//     non-negative weights validate them themselves (see dijkstra).
//
// Ordering:
//
//   - Nodes are kept in an ordered B-tree (github.com/tidwall/btree), so
//     Nodes() and Edges() are deterministic without a sort pass.
//
// Thread safety:
//
//   - All methods take a sync.RWMutex; many readers (e.g. independent
//     shortest-path queries) may run concurrently with each other.
//   - Returned slices are copies; callers never get write access to the
//     neighbor lists.
package core
