// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Node IDs of the sample graph.
const (
	NodeA = iota
	NodeB
	NodeC
	NodeD
	NodeE
	NodeF
)

// Sample returns a Constructor for the six-node reference graph:
//
//	A–B=2, A–C=10, B–D=3, C–D=2, A–E=6, E–C=3, and F isolated.
//
// From A the shortest distances are A=0, B=2, C=7 (A→B→D→C), D=5 (A→B→D),
// E=6 and F=+Inf. Sample ignores idOffset and the weight options.
func Sample() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for id := NodeA; id <= NodeF; id++ {
			g.AddNode(id)
		}
		for _, e := range []struct {
			a, b int
			w    float64
		}{
			{NodeA, NodeB, 2},
			{NodeA, NodeC, 10},
			{NodeB, NodeD, 3},
			{NodeC, NodeD, 2},
			{NodeA, NodeE, 6},
			{NodeE, NodeC, 3},
		} {
			if err := g.Connect(e.a, e.b, e.w); err != nil {
				return fmt.Errorf("Sample: Connect(%d,%d): %w", e.a, e.b, err)
			}
		}

		return nil
	}
}

// SampleGraph builds a fresh graph holding only the Sample topology.
func SampleGraph() *core.Graph {
	g := core.NewGraph()
	if err := Sample()(g, newBuilderConfig()); err != nil {
		// Sample has fixed, valid input on an empty simple graph.
		panic(err)
	}

	return g
}
