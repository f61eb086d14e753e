// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p): include each unordered pair
// {i, j}, i < j, independently with probability p.
//
// Determinism:
//   - Nodes are added in ascending index order.
//   - Pair trials run i asc, j asc; one weight draw follows each accepted trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	minRandomSparseNodes = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
// The RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseNodes, ErrTooFewNodes)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("RandomSparse: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddNode(cfg.idOffset + i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !accept(cfg, p) {
					continue
				}
				a, b := cfg.idOffset+i, cfg.idOffset+j
				if err := g.Connect(a, b, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("RandomSparse: Connect(%d,%d): %w", a, b, err)
				}
			}
		}

		return nil
	}
}

func accept(cfg builderConfig, p float64) bool {
	switch {
	case p == probMax:
		return true
	case p == probMin:
		return false
	default:
		return cfg.rng.Float64() < p
	}
}
