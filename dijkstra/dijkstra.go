// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/heap"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns:
//
//   - dist: node ID → minimum distance; math.Inf(1) for unreachable nodes.
//   - prev: predecessor map if WithReturnPath() was given, nil otherwise.
//     prev[v] == u means one shortest path to v ends with the edge u–v.
//     The source and unreachable nodes have no entry.
//   - err:  validation error; no partial result is returned with it.
//
// Preconditions and validation (in order, all before any heap mutation):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrUnknownSource).
//  3. No edge in g can have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, source int, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownSource, source)
	}

	// 3) Pre-scan all edges so a negative weight fails before anything is finalized.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d–%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[int]float64, len(nodes)),
		visited: make(map[int]bool, len(nodes)),
		pq:      heap.NewOrdered[int, struct{}](heap.WithCapacity[int](len(nodes))),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, len(nodes))
	}

	if err := r.init(nodes); err != nil {
		return nil, nil, err
	}
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph               // read-only within Dijkstra
	options Options                   // resolved configuration
	source  int                       // start node
	dist    map[int]float64           // node → best known distance
	prev    map[int]int               // node → predecessor; nil unless ReturnPath
	visited map[int]bool              // node → distance finalized
	pq      *heap.Heap[int, struct{}] // frontier keyed by node ID, ties broken by ID
}

// init sets every distance to +Inf, the source to 0, and seeds the frontier with the source.
func (r *runner) init(nodes []int) error {
	inf := math.Inf(1)
	for _, v := range nodes {
		r.dist[v] = inf
	}
	r.dist[r.source] = 0

	if err := r.pq.Push(0, r.source, struct{}{}); err != nil {
		return fmt.Errorf("dijkstra: seed source %d: %w", r.source, err)
	}
	r.options.Observer.Pushed(r.source, 0)

	return nil
}

// process pops the closest frontier node until the frontier is empty or the
// closest node lies beyond MaxDistance, relaxing the edges of each popped node.
func (r *runner) process() error {
	for r.pq.Size() > 0 {
		item, err := r.pq.PopMin()
		if err != nil {
			return fmt.Errorf("dijkstra: pop frontier: %w", err)
		}
		u, d := item.Key, item.Priority

		// In-place updates leave no stale entries, but a visited node must
		// never be settled twice.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.options.Observer.Finalized(u, d)

		if err = r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax offers d + w to every unvisited neighbor v of u. A strictly shorter
// candidate either pushes v into the frontier (first discovery) or lowers its
// priority in place.
func (r *runner) relax(u int, d float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight

		if r.visited[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		// The upfront scan makes this unreachable for a graph that is not
		// mutated during the run.
		if w < 0 {
			return fmt.Errorf("%w: edge %d–%d weight=%g", ErrNegativeWeight, u, v, w)
		}

		candidate := d + w
		if candidate > r.options.MaxDistance || candidate >= r.dist[v] {
			continue
		}
		r.dist[v] = candidate
		if r.prev != nil {
			r.prev[v] = u
		}

		if r.pq.Contains(v) {
			if err = r.pq.UpdatePriority(v, candidate); err != nil {
				return fmt.Errorf("dijkstra: decrease %d: %w", v, err)
			}
			r.options.Observer.Decreased(v, candidate)
			continue
		}
		if err = r.pq.Push(candidate, v, struct{}{}); err != nil {
			return fmt.Errorf("dijkstra: push %d: %w", v, err)
		}
		r.options.Observer.Pushed(v, candidate)
	}

	return nil
}
