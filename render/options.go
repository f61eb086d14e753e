// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"strconv"
)

// Option customizes DistanceTable and GraphSVG.
type Option func(*config)

type config struct {
	label  func(id int) string
	width  float64
	height float64
}

func newConfig(opts []Option) config {
	cfg := config{label: strconv.Itoa, width: 640, height: 480}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabels names nodes through fn instead of their numeric ID.
// Panics if fn is nil.
func WithLabels(fn func(id int) string) Option {
	if fn == nil {
		panic("render: WithLabels(nil)")
	}

	return func(c *config) { c.label = fn }
}

// WithCanvas sets the SVG canvas size in pixels. Panics unless both are positive.
func WithCanvas(width, height float64) Option {
	if !(width > 0 && height > 0) {
		panic("render: WithCanvas requires positive width and height")
	}

	return func(c *config) { c.width, c.height = width, height }
}

// LetterLabels names IDs 0..25 as "A".."Z" and falls back to the number.
func LetterLabels(id int) string {
	if id >= 0 && id < 26 {
		return string(rune('A' + id))
	}

	return strconv.Itoa(id)
}

// FormatDistance prints d compactly; +Inf becomes "inf".
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}
