// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures: the six-node
// sample graph used throughout the docs and tests, simple topologies (path,
// cycle) and seeded random sparse graphs.
//
// Every constructor is a Constructor closure applied by BuildGraph in call
// order against one graph and one resolved configuration:
//
//	g, err := builder.BuildGraph(
//	    []builder.Option{builder.WithSeed(7), builder.WithWeightRange(1, 5)},
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Determinism: the same constructors, options and seed always yield the same
// graph (same node IDs, same neighbor-list order, same weights).
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrTooFewNodes         a size parameter is below the constructor's minimum.
//   - ErrInvalidProbability  p outside [0, 1].
//   - ErrNeedRandSource      a stochastic constructor ran without WithSeed/WithRand.
//
// Invalid option arguments panic in the option constructor (WithWeightRange, WithRand).
package builder
