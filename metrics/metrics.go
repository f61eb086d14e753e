// SPDX-License-Identifier: MIT

// Package metrics exports traversal activity as Prometheus metrics.
// A Collector is a dijkstra.Observer; pass it with dijkstra.WithObserver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvpath/dijkstra"
)

const namespace = "lvpath"

// Collector counts heap and settle events. All methods are safe for
// concurrent use.
type Collector struct {
	Pushes    prometheus.Counter
	Decreases prometheus.Counter
	Settled   prometheus.Counter
	// Frontier is pushes minus settles: the current heap size of a single
	// traversal, or the sum over concurrent ones.
	Frontier prometheus.Gauge
	// Distances observes every settled distance.
	Distances prometheus.Histogram
}

var _ dijkstra.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them on reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Pushes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heap_pushes_total",
			Help:      "Nodes inserted into the priority queue.",
		}),
		Decreases: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heap_decreases_total",
			Help:      "In-place priority decreases of queued nodes.",
		}),
		Settled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_finalized_total",
			Help:      "Nodes whose shortest distance was settled.",
		}),
		Frontier: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_size",
			Help:      "Queued but not yet settled nodes.",
		}),
		Distances: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settled_distance",
			Help:      "Distribution of settled shortest distances.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// Pushed implements dijkstra.Observer.
func (c *Collector) Pushed(int, float64) {
	c.Pushes.Inc()
	c.Frontier.Inc()
}

// Decreased implements dijkstra.Observer.
func (c *Collector) Decreased(int, float64) {
	c.Decreases.Inc()
}

// Finalized implements dijkstra.Observer.
func (c *Collector) Finalized(_ int, d float64) {
	c.Settled.Inc()
	c.Frontier.Dec()
	c.Distances.Observe(d)
}

// WriteFile writes every metric gathered by g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteFile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
