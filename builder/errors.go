// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n) is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")
