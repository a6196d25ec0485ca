// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnvironment(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"SPECLUST_SEED":       "7",
		"SPECLUST_WORKERS":    "not-a-number",
		"SPECLUST_SOLVER":     "DENSE",
		"SPECLUST_LOG_LEVEL":  "debug",
		"SPECLUST_LOG_FORMAT": "JSON",
	}
	cfg := DefaultConfig()
	cfg.applyEnvironment(func(k string) string { return env[k] })

	assert.Equal(t, int64(7), cfg.Clustering.Seed)
	assert.Equal(t, 1, cfg.Clustering.Workers, "unparsable values are ignored")
	assert.Equal(t, SolverDense, cfg.Solver.Kind)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, LogJSON, cfg.Log.Format)
}
