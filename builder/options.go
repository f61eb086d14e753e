// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
)

// Default weight domain used when no weight option is given.
const (
	defaultMinWeight = 1.0
	defaultMaxWeight = 10.0
)

// builderConfig is the immutable configuration a Constructor runs with.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; receives cfg.rng (possibly nil).
	weightFn func(*rand.Rand) float64
	// Added to every generated node index.
	idOffset int
}

// Option customizes builderConfig.
type Option func(*builderConfig)

// newBuilderConfig resolves opts over the defaults: no RNG, uniform weights
// in [1,10] (the lower bound when there is no RNG), IDs starting at 0.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn: uniformWeight(defaultMinWeight, defaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightRange draws edge weights uniformly from [min, max); without an
// RNG every edge gets min. Panics if min > max or either bound is NaN or infinite.
func WithWeightRange(min, max float64) Option {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min > max {
		panic("builder: WithWeightRange(min, max) needs finite min <= max")
	}

	return func(c *builderConfig) {
		c.weightFn = uniformWeight(min, max)
	}
}

// WithWeightFn installs a custom weight generator. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithIDOffset shifts generated node IDs by base, so several constructors can
// lay disjoint components into one graph.
func WithIDOffset(base int) Option {
	return func(c *builderConfig) {
		c.idOffset = base
	}
}

func uniformWeight(min, max float64) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		if r == nil {
			return min
		}

		return min + (max-min)*r.Float64()
	}
}
