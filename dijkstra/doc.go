// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - Every node starts unvisited with distance +Inf; the source starts in
//     the frontier with distance 0.
//   - The traversal owns one indexed min-heap (package heap) keyed by node ID.
//     Nodes enter the heap on first discovery (Push); a shorter path to a
//     node already in the frontier lowers its priority in place
//     (UpdatePriority). The heap therefore never holds more than one entry
//     per node and never holds stale entries.
//   - A node popped from the heap is visited: its distance is final, because
//     every other frontier distance is ≥ the popped value and no edge weight
//     is negative.
//   - The traversal ends when the heap is empty. Unreached nodes keep +Inf.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — V pops, at most E pushes/updates, each O(log V).
//   - Space: O(V) — distance table, visited set and a heap of at most V entries.
//
// Options:
//
//   - WithReturnPath():           return the predecessor map.
//   - WithMaxDistance(d):         do not settle or relax beyond distance d (d ≥ 0).
//   - WithInfEdgeThreshold(t):    edges with weight ≥ t are impassable (t > 0).
//   - WithObserver(o):            receive Pushed/Decreased/Finalized events.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrNilGraph        the graph pointer is nil.
//   - ErrUnknownSource   the source is not a node of the graph.
//   - ErrNegativeWeight  some edge has a negative weight (detected by an
//     upfront O(E) scan, before any heap exists or distance is final).
//   - ErrNoPath          PathTo target was not reached.
//   - ErrBadMaxDistance, ErrBadInfThreshold
//     raised (via panic) by the option constructors.
//
// Thread safety:
//
//   - Each call owns its heap, distance table and visited set. Independent
//     queries over the same graph may run concurrently (see AllFrom); the
//     graph must not be mutated meanwhile.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := dijkstra.PathTo(prev, 0, 3)
package dijkstra
