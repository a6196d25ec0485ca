// SPDX-License-Identifier: MIT

// Builder options. Constructors of options panic on inputs that can never be
// valid (nil RNG, non-positive weights); everything data-dependent is
// reported as an error at build time instead.

package builder

import (
	"math"
	"math/rand"
)

// unitWeight is assigned to every edge unless a weight option says otherwise.
const unitWeight = 1.0

// BuilderOption adjusts the settings shared by all constructors of one build.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and passed by value.
// A nil rng keeps the build deterministic; stochastic constructors then
// refuse fractional probabilities with ErrNeedRandSource.
type builderConfig struct {
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: func(*rand.Rand) float64 { return unitWeight }}
	for _, apply := range opts {
		apply(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

// WithSeed installs a fresh math/rand source seeded with seed, so two builds
// with equal seeds and constructors yield identical graphs.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares a caller-owned generator. The builder advances it.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: nil *rand.Rand")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn sets a custom weight source. It receives the configured RNG
// (possibly nil); a non-positive or non-finite result fails the build.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: nil weight function")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstWeight gives every edge weight w (finite, > 0).
func WithConstWeight(w float64) BuilderOption {
	if !(w > 0) || math.IsInf(w, 1) {
		panic("builder: constant weight must be finite and positive")
	}

	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithUniformWeight draws weights uniformly from [lo, hi), 0 < lo < hi.
// Without an RNG every edge gets lo.
func WithUniformWeight(lo, hi float64) BuilderOption {
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 1) {
		panic("builder: uniform weight range must satisfy 0 < lo < hi < Inf")
	}
	span := hi - lo

	return WithWeightFn(func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + span*r.Float64()
	})
}
