// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(3)
	g.AddNode(1)
	g.AddNode(3) // duplicate is a no-op

	assert.True(t, g.HasNode(1))
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(2))
	assert.Equal(t, []int{1, 3}, g.Nodes())
	assert.Equal(t, 2, g.NodeCount())

	deg, err := g.Degree(3)
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestGraph_ConnectIsSymmetric(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(0, 1, 2.5))

	a, err := g.Neighbors(0)
	require.NoError(t, err)
	b, err := g.Neighbors(1)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 2.5}}, a)
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 2.5}}, b)
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_ConnectValidation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.Connect(0, 1, math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.Connect(4, 4, 1), core.ErrLoopNotAllowed)

	require.NoError(t, g.Connect(0, 1, 1))
	assert.ErrorIs(t, g.Connect(1, 0, 3), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())

	// Negative weights are stored; the traversal rejects them.
	require.NoError(t, g.Connect(1, 2, -1))
	assert.Equal(t, -1.0, g.Edges()[1].Weight)
}

func TestGraph_LoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	require.NoError(t, g.Connect(0, 0, 1))
	require.NoError(t, g.Connect(0, 1, 2))
	require.NoError(t, g.Connect(1, 0, 3))

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	assert.Equal(t, []core.Edge{
		{From: 0, To: 0, Weight: 1},
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 1, Weight: 3},
	}, g.Edges())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_NeighborsOrderAndCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(5, 9, 1))
	require.NoError(t, g.Connect(5, 2, 2))
	require.NoError(t, g.Connect(5, 7, 3))

	nbs, err := g.Neighbors(5)
	require.NoError(t, err)
	got := []int{nbs[0].To, nbs[1].To, nbs[2].To}
	assert.Equal(t, []int{9, 2, 7}, got)

	// Mutating the copy must not leak into the graph.
	nbs[0].Weight = 100
	again, err := g.Neighbors(5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0].Weight)
}

func TestGraph_EdgesOncePerPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(3, 1, 1))
	require.NoError(t, g.Connect(1, 2, 2))
	require.NoError(t, g.Connect(2, 3, 3))

	assert.Equal(t, []core.Edge{
		{From: 1, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	}, g.Edges())
}

func TestGraph_UnknownNode(t *testing.T) {
	g := core.NewGraph()

	_, err := g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.Degree(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.False(t, g.HasEdge(42, 1))
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
}
