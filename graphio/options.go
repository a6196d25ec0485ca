// SPDX-License-Identifier: MIT

package graphio

import "math"

// Option customizes ReadEdgeList.
type Option func(*readConfig)

type readConfig struct {
	defaultWeight float64
	nodes         []string
}

func newReadConfig(opts ...Option) readConfig {
	cfg := readConfig{defaultWeight: defaultEdgeWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDefaultWeight sets the weight of edges given without one (default 1).
// Panics unless w is finite and positive.
func WithDefaultWeight(w float64) Option {
	if !(w > 0) || math.IsInf(w, 0) {
		panic("graphio: WithDefaultWeight(w<=0|NaN|Inf)")
	}
	return func(c *readConfig) { c.defaultWeight = w }
}

// WithNodes registers IDs before reading, fixing their indices and keeping
// nodes that have no edges.
func WithNodes(ids ...string) Option {
	return func(c *readConfig) { c.nodes = append(c.nodes, ids...) }
}
