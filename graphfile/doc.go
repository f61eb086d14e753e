// SPDX-License-Identifier: MIT

// Package graphfile loads undirected weighted graphs from YAML or TOML
// documents. Both formats share one schema:
//
//	source: 0          # optional default query source
//	loops: false       # allow self-loops
//	multi_edges: false # allow parallel edges
//	nodes: [5]         # extra (possibly isolated) nodes
//	edges:
//	  - {a: 0, b: 1, weight: 2}
//
// Decoding is strict: unknown keys are errors in both formats.
package graphfile
