// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/graphio"
	"github.com/katalvlaran/spectral/kmeans"
	"github.com/katalvlaran/spectral/spectral"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Solver kinds.
const (
	SolverLanczos = "lanczos"
	SolverDense   = "dense"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

type Config struct {
	Graph      GraphConfig      `yaml:"graph"`
	Clustering ClusteringConfig `yaml:"clustering"`
	Solver     SolverConfig     `yaml:"solver"`
	Profile    ProfileConfig    `yaml:"profile"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

type GraphConfig struct {
	Path              string  `yaml:"path"`
	Format            string  `yaml:"format"`
	DefaultWeight     float64 `yaml:"default_weight"`
	SymmetryTolerance float64 `yaml:"symmetry_tolerance"`
}

type ClusteringConfig struct {
	K              int   `yaml:"k"`
	Normalized     bool  `yaml:"normalized"`
	Seed           int64 `yaml:"seed"`
	KMeansRestarts int   `yaml:"kmeans_restarts"`
	KMeansMaxIter  int   `yaml:"kmeans_max_iterations"`
	Workers        int   `yaml:"workers"`
}

type SolverConfig struct {
	Kind         string  `yaml:"kind"`
	SubspaceSize int     `yaml:"subspace_size"`
	BlockSize    int     `yaml:"block_size"`
	MaxRestarts  int     `yaml:"max_restarts"`
	Tolerance    float64 `yaml:"tolerance"`
}

type ProfileConfig struct {
	Features   string `yaml:"features"`
	Categories string `yaml:"categories"`
	TopK       int    `yaml:"top_k"`
}

type OutputConfig struct {
	Labels     string `yaml:"labels"`
	MetricsOut string `yaml:"metrics_out"`
	JSON       bool   `yaml:"json"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			Format:            graphio.FormatAuto,
			DefaultWeight:     1,
			SymmetryTolerance: spectral.DefaultSymmetryTolerance,
		},
		Clustering: ClusteringConfig{
			K:              2,
			Seed:           1,
			KMeansRestarts: kmeans.DefaultRestarts,
			KMeansMaxIter:  kmeans.DefaultMaxIterations,
			Workers:        1,
		},
		Solver: SolverConfig{
			Kind:        SolverLanczos,
			MaxRestarts: eigen.DefaultMaxRestarts,
			Tolerance:   eigen.DefaultTolerance,
		},
		Profile: ProfileConfig{TopK: 5},
		Log:     LogConfig{Level: "info", Format: LogText},
	}
}

// Load returns DefaultConfig overlaid by the YAML file at path (skipped when
// path is empty) and the SPECLUST_* environment. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	cfg.applyEnvironment(os.Getenv)

	return cfg, nil
}

func (c *Config) applyEnvironment(getenv func(string) string) {
	if v := getenv("SPECLUST_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Clustering.Seed = n
		}
	}
	if v := getenv("SPECLUST_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Clustering.Workers = n
		}
	}
	if v := getenv("SPECLUST_SOLVER"); v != "" {
		c.Solver.Kind = strings.ToLower(v)
	}
	if v := getenv("SPECLUST_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("SPECLUST_LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch c.Graph.Format {
	case graphio.FormatAuto, graphio.FormatEdgeList, graphio.FormatMatrixMarket:
	default:
		return fmt.Errorf("graph.format %q: %w", c.Graph.Format, ErrInvalid)
	}
	if !(c.Graph.DefaultWeight > 0) || math.IsInf(c.Graph.DefaultWeight, 0) {
		return fmt.Errorf("graph.default_weight %v: %w", c.Graph.DefaultWeight, ErrInvalid)
	}
	if !(c.Graph.SymmetryTolerance >= 0) || math.IsInf(c.Graph.SymmetryTolerance, 0) {
		return fmt.Errorf("graph.symmetry_tolerance %v: %w", c.Graph.SymmetryTolerance, ErrInvalid)
	}
	if c.Clustering.K < 2 {
		return fmt.Errorf("clustering.k %d: at least two clusters required: %w", c.Clustering.K, ErrInvalid)
	}
	if c.Clustering.KMeansRestarts < 1 || c.Clustering.KMeansMaxIter < 1 || c.Clustering.Workers < 1 {
		return fmt.Errorf("clustering: kmeans_restarts, kmeans_max_iterations and workers must be positive: %w", ErrInvalid)
	}
	switch c.Solver.Kind {
	case SolverLanczos, SolverDense:
	default:
		return fmt.Errorf("solver.kind %q: %w", c.Solver.Kind, ErrInvalid)
	}
	if c.Solver.SubspaceSize < 0 || c.Solver.SubspaceSize == 1 || c.Solver.BlockSize < 0 || c.Solver.MaxRestarts < 0 {
		return fmt.Errorf("solver: subspace_size, block_size or max_restarts out of range: %w", ErrInvalid)
	}
	if !(c.Solver.Tolerance > 0 && c.Solver.Tolerance < 1) {
		return fmt.Errorf("solver.tolerance %v: %w", c.Solver.Tolerance, ErrInvalid)
	}
	if c.Profile.TopK < 1 {
		return fmt.Errorf("profile.top_k %d: %w", c.Profile.TopK, ErrInvalid)
	}
	if (c.Profile.Features == "") != (c.Profile.Categories == "") {
		return fmt.Errorf("profile: features and categories go together: %w", ErrInvalid)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case LogText, LogJSON:
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// SpectralOptions translates the clustering and solver sections. Validate
// must have passed.
func (c *Config) SpectralOptions() []spectral.Option {
	opts := []spectral.Option{
		spectral.WithNormalized(c.Clustering.Normalized),
		spectral.WithSeed(c.Clustering.Seed),
		spectral.WithSymmetryTolerance(c.Graph.SymmetryTolerance),
		spectral.WithKMeans(kmeans.Config{
			MaxIterations: c.Clustering.KMeansMaxIter,
			Restarts:      c.Clustering.KMeansRestarts,
			Workers:       c.Clustering.Workers,
		}),
	}
	if c.Solver.Kind == SolverDense {
		return append(opts, spectral.WithSolver(eigen.DenseSolver{}))
	}

	lopts := []eigen.Option{
		eigen.WithMaxRestarts(c.Solver.MaxRestarts),
		eigen.WithTolerance(c.Solver.Tolerance),
	}
	if c.Solver.SubspaceSize > 0 {
		lopts = append(lopts, eigen.WithSubspaceSize(c.Solver.SubspaceSize))
	}
	if c.Solver.BlockSize > 0 {
		lopts = append(lopts, eigen.WithBlockSize(c.Solver.BlockSize))
	}

	return append(opts, spectral.WithLanczos(lopts...))
}

// GraphOptions translates the graph section for edge-list input.
func (c *Config) GraphOptions() []graphio.Option {
	return []graphio.Option{graphio.WithDefaultWeight(c.Graph.DefaultWeight)}
}

// NewLogger builds a text or JSON slog handler on w.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Log.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == LogJSON {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", l.Level, ErrInvalid)
	}

	return level, nil
}
