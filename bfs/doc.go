// SPDX-License-Identifier: MIT

// Package bfs walks a core.Graph breadth-first and reports hop counts,
// parent links and visit order, ignoring edge weights.
//
// It answers "which nodes can a traversal reach at all": a node has a finite
// dijkstra distance from s exactly when BFS from s visits it. Edges can be
// excluded with WithFilterNeighbor (for example, weights at or above an
// impassable threshold), and WithMaxDepth bounds the number of hops.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
