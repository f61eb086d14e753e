// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/layout"
)

const (
	margin     = 40.0
	nodeRadius = 14.0
)

// ErrMissingPoint indicates a graph node has no position in the layout.
var ErrMissingPoint = errors.New("render: node missing from layout")

// GraphSVG writes g as a standalone SVG document positioned by lay.
// Node captions read "label (distance)"; nodes absent from dist read "label".
// Each edge carries its weight at the midpoint.
func GraphSVG(w io.Writer, g *core.Graph, lay *layout.Layout, dist map[int]float64, opts ...Option) error {
	cfg := newConfig(opts)
	for _, id := range g.Nodes() {
		if _, ok := lay.Points[id]; !ok {
			return fmt.Errorf("%w: %d", ErrMissingPoint, id)
		}
	}
	project := projector(lay, cfg)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		cfg.width, cfg.height, cfg.width, cfg.height)
	fmt.Fprintln(bw, `<g stroke="#555" stroke-width="1.5">`)
	edges := g.Edges()
	for _, e := range edges {
		a, b := project(lay.Points[e.From]), project(lay.Points[e.To])
		if e.From == e.To {
			fmt.Fprintf(bw, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none"/>`+"\n", a.X, a.Y-nodeRadius, nodeRadius)
			continue
		}
		fmt.Fprintf(bw, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", a.X, a.Y, b.X, b.Y)
	}
	fmt.Fprintln(bw, `</g>`)

	fmt.Fprintln(bw, `<g font-family="sans-serif" font-size="11" fill="#a33" text-anchor="middle">`)
	for _, e := range edges {
		a, b := project(lay.Points[e.From]), project(lay.Points[e.To])
		x, y := (a.X+b.X)/2, (a.Y+b.Y)/2
		if e.From == e.To {
			y = a.Y - 2*nodeRadius - 4
		}
		fmt.Fprintf(bw, `<text x="%.2f" y="%.2f">%s</text>`+"\n", x, y, escape(FormatDistance(e.Weight)))
	}
	fmt.Fprintln(bw, `</g>`)

	fmt.Fprintln(bw, `<g font-family="sans-serif" font-size="12" text-anchor="middle">`)
	for _, id := range g.Nodes() {
		p := project(lay.Points[id])
		caption := cfg.label(id)
		if d, ok := dist[id]; ok {
			caption += " (" + FormatDistance(d) + ")"
		}
		fmt.Fprintf(bw, `<circle cx="%.2f" cy="%.2f" r="%g" fill="#cde" stroke="#333"/>`+"\n", p.X, p.Y, nodeRadius)
		fmt.Fprintf(bw, `<text x="%.2f" y="%.2f">%s</text>`+"\n", p.X, p.Y+nodeRadius+14, escape(caption))
	}
	fmt.Fprintln(bw, `</g>`)
	fmt.Fprintln(bw, `</svg>`)

	return bw.Flush()
}

// projector maps layout coordinates onto the canvas, keeping the aspect ratio
// and flipping Y so that larger y draws higher.
func projector(lay *layout.Layout, cfg config) func(layout.Point) layout.Point {
	min, max := lay.Bounds()
	spanX, spanY := max.X-min.X, max.Y-min.Y
	innerW, innerH := cfg.width-2*margin, cfg.height-2*margin

	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(innerW/spanX, innerH/spanY)
	case spanX > 0:
		scale = innerW / spanX
	case spanY > 0:
		scale = innerH / spanY
	}
	offX := margin + (innerW-spanX*scale)/2
	offY := margin + (innerH-spanY*scale)/2

	return func(p layout.Point) layout.Point {
		return layout.Point{
			X: offX + (p.X-min.X)*scale,
			Y: cfg.height - (offY + (p.Y-min.Y)*scale),
		}
	}
}

func escape(s string) string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = xml.EscapeText(&sb, []byte(s))

	return sb.String()
}
