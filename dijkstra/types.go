// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownSource indicates that the source node is not part of the graph.
	ErrUnknownSource = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that PathTo was asked for a target the traversal never reached.
	ErrNoPath = errors.New("dijkstra: target not reachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative or NaN value,
	// which would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Observer receives traversal events. Implementations must not retain or
// mutate the graph; they are called synchronously from the traversal loop.
type Observer interface {
	// Pushed is called when a node enters the frontier with its first finite distance.
	Pushed(id int, dist float64)
	// Decreased is called when a frontier node's tentative distance is lowered.
	Decreased(id int, dist float64)
	// Finalized is called when a node is popped and its distance becomes final.
	Finalized(id int, dist float64)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – nodes farther than this are neither settled nor relaxed into.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
// Observer         – optional event sink; nil disables events.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Observer         Observer
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max keep +Inf.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithObserver registers an Observer for traversal events.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no predecessor map, no distance cap, no impassable edges, no observer.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// nopObserver discards every event.
type nopObserver struct{}

func (nopObserver) Pushed(int, float64)    {}
func (nopObserver) Decreased(int, float64) {}
func (nopObserver) Finalized(int, float64) {}
