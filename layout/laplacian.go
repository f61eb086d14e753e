// SPDX-License-Identifier: MIT

package layout

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpath/core"
)

// Option configures Laplacian and Spectral.
type Option func(*options)

type options struct {
	weighted bool
}

// WithWeights builds the Laplacian from edge weights instead of unit entries.
func WithWeights() Option {
	return func(o *options) { o.weighted = true }
}

// Laplacian returns L = D − A for g and the node ID of every row, ascending.
// Row i of L belongs to node ids[i]. A self-loop contributes to both D and A
// of its node and cancels out.
func Laplacian(g *core.Graph, opts ...Option) (*mat.SymDense, []int) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.Nodes()
	n := len(ids)
	if n == 0 {
		return nil, ids
	}
	row := make(map[int]int, n)
	for i, id := range ids {
		row[id] = i
	}

	data := make([]float64, n*n)
	for i, id := range ids {
		nbs, err := g.Neighbors(id)
		if err != nil {
			// ids came from g.Nodes(); a miss means the graph shrank, which core does not support.
			continue
		}
		for _, e := range nbs {
			w := 1.0
			if cfg.weighted {
				w = e.Weight
			}
			data[i*n+i] += w
			data[i*n+row[e.To]] -= w
		}
	}

	return mat.NewSymDense(n, data), ids
}
