// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpath/core"
)

// eps separates the zero eigenvalues (one per connected component) from the rest.
const eps = 1e-10

var (
	// ErrEmptyGraph indicates a layout was requested for a graph with no nodes.
	ErrEmptyGraph = errors.New("layout: graph has no nodes")

	// ErrEigenFailed indicates the eigen-decomposition did not converge.
	ErrEigenFailed = errors.New("layout: eigen-decomposition failed")
)

// Point is a position in the drawing plane.
type Point struct {
	X, Y float64
}

// Layout maps node IDs to positions.
type Layout struct {
	// IDs lists every placed node in ascending order.
	IDs []int
	// Points holds the position of every node in IDs.
	Points map[int]Point
}

// Bounds returns the smallest box containing every point.
func (l *Layout) Bounds() (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range l.Points {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}

	return min, max
}

// Spectral computes the spectral layout of g. A single node sits at the origin.
// Returns ErrEmptyGraph for a graph without nodes.
func Spectral(g *core.Graph, opts ...Option) (*Layout, error) {
	L, ids := Laplacian(g, opts...)
	n := len(ids)
	switch n {
	case 0:
		return nil, ErrEmptyGraph
	case 1:
		return &Layout{IDs: ids, Points: map[int]Point{ids[0]: {}}}, nil
	}

	var es mat.EigenSym
	if ok := es.Factorize(L, true); !ok {
		return nil, fmt.Errorf("%w: %d nodes", ErrEigenFailed, n)
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	// Non-trivial eigenpairs, ascending; at most two are used.
	var axes []int
	for _, c := range order {
		if values[c] >= eps && len(axes) < 2 {
			axes = append(axes, c)
		}
	}

	out := &Layout{IDs: ids, Points: make(map[int]Point, n)}
	for i, id := range ids {
		var p Point
		switch len(axes) {
		case 0:
			// No edges carry weight: line the nodes up in ID order.
			p.X = float64(i)
		case 1:
			// A single non-trivial pair (e.g. one edge): place on the X axis.
			p.X = values[axes[0]] * vectors.At(i, axes[0])
		default:
			p.X = values[axes[0]] * vectors.At(i, axes[0])
			p.Y = values[axes[1]] * vectors.At(i, axes[1])
		}
		out.Points[id] = p
	}

	return out, nil
}
