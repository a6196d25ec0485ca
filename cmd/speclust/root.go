// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spectral/config"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:   "speclust",
		Short: "Spectral clustering for sparse weighted graphs",
		Long: `speclust partitions the nodes of an undirected weighted graph into k
well-connected groups: it builds the graph Laplacian, embeds the nodes with
the k smallest eigenvectors and clusters the embedding with k-means.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(newClusterCmd(g), newEvaluateCmd(g), newGenerateCmd(), newVersionCmd())

	return root
}

// load resolves the configuration: defaults, file, environment, then the
// flags the user actually set via apply.
func (g *globalOptions) load(apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// explain adds a remedy to errors the user can fix by configuration.
func explain(err error) error {
	if errors.Is(err, spectral.ErrSolverNonConvergence) {
		return fmt.Errorf("%w (raise solver.max_restarts or solver.subspace_size, or loosen solver.tolerance)", err)
	}

	return err
}
