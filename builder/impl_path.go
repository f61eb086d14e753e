// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor for a path 0–1–…–(n-1), shifted by the ID offset.
// Requires n ≥ 1 (ErrTooFewNodes).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
		}

		g.AddNode(cfg.idOffset)
		for i := 1; i < n; i++ {
			a, b := cfg.idOffset+i-1, cfg.idOffset+i
			if err := g.Connect(a, b, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("Path: Connect(%d,%d): %w", a, b, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring 0–1–…–(n-1)–0, shifted by the ID offset.
// Requires n ≥ 3 (ErrTooFewNodes).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		a, b := cfg.idOffset+n-1, cfg.idOffset
		if err := g.Connect(a, b, cfg.weightFn(cfg.rng)); err != nil {
			return fmt.Errorf("Cycle: Connect(%d,%d): %w", a, b, err)
		}

		return nil
	}
}
