// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/core"
)

// PathTo rebuilds the node sequence source → … → target from a predecessor
// map returned by Dijkstra with WithReturnPath().
// Returns ErrNoPath if target was not reached from source.
// Complexity: O(path length).
func PathTo(prev map[int]int, source, target int) ([]int, error) {
	if target == source {
		return []int{source}, nil
	}

	path := []int{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// Result is the outcome of one query in AllFrom.
type Result struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
}

// AllFrom runs one independent single-source query per entry of sources,
// concurrently, each with its own heap and distance table. Results come back
// in the order of sources. The first failing query cancels the rest and its
// error is returned.
//
// g must not be mutated while AllFrom runs.
func AllFrom(ctx context.Context, g *core.Graph, sources []int, opts ...Option) ([]Result, error) {
	results := make([]Result, len(sources))
	eg, ctx := errgroup.WithContext(ctx)

	// Observers are not required to be safe for concurrent use.
	var mu sync.Mutex
	opts = lockObserver(&mu, opts)

	for i, src := range sources {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dist, prev, err := Dijkstra(g, src, opts...)
			if err != nil {
				return fmt.Errorf("source %d: %w", src, err)
			}
			results[i] = Result{Source: src, Dist: dist, Prev: prev}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// lockObserver wraps a configured Observer so concurrent queries serialize their events.
func lockObserver(mu *sync.Mutex, opts []Option) []Option {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Observer == nil {
		return opts
	}

	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, WithObserver(&lockedObserver{mu: mu, next: cfg.Observer}))
}

type lockedObserver struct {
	mu   *sync.Mutex
	next Observer
}

func (l *lockedObserver) Pushed(id int, d float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next.Pushed(id, d)
}

func (l *lockedObserver) Decreased(id int, d float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next.Decreased(id, d)
}

func (l *lockedObserver) Finalized(id int, d float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next.Finalized(id, d)
}
