// SPDX-License-Identifier: MIT

package builder

import "errors"

// Constructors wrap these as "<Constructor>: detail: %w". Sizes are checked
// before probabilities, probabilities before RNG presence.
// ErrTooFewVertices indicates that a size parameter (n, rows, cols, block size)
// is below the constructor's minimum, or that the whole build produced no vertices.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownVertex indicates that a linking constructor referenced a vertex
// index that does not exist yet.
var ErrUnknownVertex = errors.New("builder: unknown vertex")

// ErrConstructFailed indicates a construction that cannot be expressed as a
// simple undirected graph (nil constructor, self bridge, matrix assembly failure).
var ErrConstructFailed = errors.New("builder: construction failed")
