// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/heap"
	"github.com/katalvlaran/lvpath/layout"
	"github.com/katalvlaran/lvpath/render"
)

func TestHeapTree(t *testing.T) {
	entries := []heap.Entry[string, struct{}]{
		{Priority: 1, Key: "d"},
		{Priority: 3, Key: "b"},
		{Priority: 8, Key: "c"},
		{Priority: 5, Key: "a"},
	}
	var buf bytes.Buffer
	require.NoError(t, render.HeapTree(&buf, entries))

	want := strings.Join([]string{
		"1 (d)",
		"├── 3 (b)",
		"│   └── 5 (a)",
		"└── 8 (c)",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestHeapTree_LiveSnapshot(t *testing.T) {
	h := heap.NewOrdered[int, struct{}]()
	for _, p := range []int{4, 7, 2, 9, 1} {
		require.NoError(t, h.Push(float64(p), p, struct{}{}))
	}
	var buf bytes.Buffer
	require.NoError(t, render.HeapTree(&buf, h.Entries()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "1 (1)", lines[0])
	assert.Equal(t, 5, h.Size(), "rendering must not consume the heap")
}

func TestHeapTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.HeapTree[int, int](&buf, nil))
	assert.Equal(t, "(empty)\n", buf.String())
}

func TestDistanceTable(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(builder.SampleGraph(), builder.NodeA)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.DistanceTable(&buf, dist, render.WithLabels(render.LetterLabels)))
	assert.Equal(t, "A: 0\nB: 2\nC: 7\nD: 5\nE: 6\nF: inf\n", buf.String())

	buf.Reset()
	require.NoError(t, render.DistanceTable(&buf, map[int]float64{10: 1.5, 2: 0}))
	assert.Equal(t, "2: 0\n10: 1.5\n", buf.String())
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "inf", render.FormatDistance(math.Inf(1)))
	assert.Equal(t, "2.5", render.FormatDistance(2.5))
	assert.Equal(t, "0", render.FormatDistance(0))
}

func TestLetterLabels(t *testing.T) {
	assert.Equal(t, "A", render.LetterLabels(0))
	assert.Equal(t, "Z", render.LetterLabels(25))
	assert.Equal(t, "26", render.LetterLabels(26))
	assert.Equal(t, "-1", render.LetterLabels(-1))
}

func TestGraphSVG_Sample(t *testing.T) {
	g := builder.SampleGraph()
	lay, err := layout.Spectral(g)
	require.NoError(t, err)
	dist, _, err := dijkstra.Dijkstra(g, builder.NodeA)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.GraphSVG(&buf, g, lay, dist, render.WithLabels(render.LetterLabels)))
	out := buf.String()

	assertWellFormed(t, out)
	assert.Equal(t, 6, strings.Count(out, "<line "))
	assert.Equal(t, 6, strings.Count(out, "<circle "))
	for _, caption := range []string{"A (0)", "C (7)", "D (5)", "F (inf)"} {
		assert.Contains(t, out, ">"+caption+"<")
	}
	assert.Contains(t, out, ">10<")
}

func TestGraphSVG_EscapesLabelsAndOmitsMissingDistances(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(0, 1, 1))
	lay, err := layout.Spectral(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = render.GraphSVG(&buf, g, lay, map[int]float64{0: 0}, render.WithLabels(func(id int) string {
		return "<n&" + render.LetterLabels(id) + ">"
	}))
	require.NoError(t, err)
	out := buf.String()

	assertWellFormed(t, out)
	assert.Contains(t, out, "&lt;n&amp;A&gt; (0)")
	assert.Contains(t, out, ">&lt;n&amp;B&gt;<")
}

func TestGraphSVG_MissingPoint(t *testing.T) {
	g := builder.SampleGraph()
	lay := &layout.Layout{IDs: []int{0}, Points: map[int]layout.Point{0: {}}}
	err := render.GraphSVG(io.Discard, g, lay, nil)
	assert.True(t, errors.Is(err, render.ErrMissingPoint))
}

func TestGraphSVG_SelfLoopAndSinglePoint(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.Connect(3, 3, 2))
	lay, err := layout.Spectral(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.GraphSVG(&buf, g, lay, nil, render.WithCanvas(200, 200)))
	out := buf.String()
	assertWellFormed(t, out)
	assert.Equal(t, 2, strings.Count(out, "<circle "))
	assert.Contains(t, out, `width="200"`)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { render.WithLabels(nil) })
	assert.Panics(t, func() { render.WithCanvas(0, 10) })
	assert.Panics(t, func() { render.WithCanvas(10, math.NaN()) })
}

func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}
