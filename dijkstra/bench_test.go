// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// BenchmarkDijkstra_RandomSparse runs one query on a seeded random graph
// with an expected degree of about 8.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	for _, n := range []int{500, 2_000} {
		b.Run(fmt.Sprintf("V=%d", n), func(b *testing.B) {
			g, err := builder.BuildGraph(nil,
				[]builder.Option{builder.WithSeed(42), builder.WithWeightRange(1, 100)},
				builder.RandomSparse(n, 8/float64(n)))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkAllFrom_RandomSparse runs eight concurrent queries on one graph.
func BenchmarkAllFrom_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithSeed(42), builder.WithWeightRange(1, 100)},
		builder.RandomSparse(1_000, 0.008))
	if err != nil {
		b.Fatal(err)
	}
	sources := []int{0, 125, 250, 375, 500, 625, 750, 875}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.AllFrom(context.Background(), g, sources); err != nil {
			b.Fatal(err)
		}
	}
}
