// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
)

func TestSample(t *testing.T) {
	g := builder.SampleGraph()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.Nodes())
	assert.Equal(t, 6, g.EdgeCount())

	deg, err := g.Degree(builder.NodeF)
	require.NoError(t, err)
	assert.Zero(t, deg, "F is isolated")

	assert.True(t, g.HasEdge(builder.NodeE, builder.NodeC))
	assert.True(t, g.HasEdge(builder.NodeC, builder.NodeE))
}

func TestPathAndCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, 1.0, e.Weight, "no RNG: lower bound of the default range")
	}

	g, err = builder.BuildGraph(nil, []builder.Option{builder.WithIDOffset(10)}, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12, 13, 14}, g.Nodes())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge(14, 10))
}

func TestTooFewNodes(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
	assert.Equal(t, 5, empty.NodeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.Option{builder.WithSeed(7), builder.WithWeightRange(2, 4)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.Less(t, e.Weight, 4.0)
	}
}

func TestComposedConstructors(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithRand(rand.New(rand.NewSource(1))), builder.WithIDOffset(100)},
		builder.Sample(),
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 100, 101, 102}, g.Nodes())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(3, 1) })
}
