// SPDX-License-Identifier: MIT

package kmeans

// Defaults applied to zero Config fields.
const (
	DefaultMaxIterations = 300
	DefaultRestarts      = 10
)

// Config configures Fit. Zero fields take the defaults.
type Config struct {
	// MaxIterations caps centroid updates per restart.
	MaxIterations int
	// Restarts is the number of independent seedings; the lowest inertia wins.
	Restarts int
	// Seed for reproducible results. 0 maps to a fixed default seed.
	Seed int64
	// Workers > 1 runs restarts concurrently; results are unchanged.
	Workers int
}

// DefaultConfig returns the configuration used for zero fields.
func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		Restarts:      DefaultRestarts,
		Workers:       1,
	}
}

// withDefaults fills zero or negative fields.
func (c Config) withDefaults() Config {
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Restarts <= 0 {
		c.Restarts = DefaultRestarts
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Workers > c.Restarts {
		c.Workers = c.Restarts
	}

	return c
}
