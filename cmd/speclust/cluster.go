// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spectral/config"
	"github.com/katalvlaran/spectral/cut"
	"github.com/katalvlaran/spectral/graphio"
	"github.com/katalvlaran/spectral/partition"
	"github.com/katalvlaran/spectral/profile"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type clusterOptions struct {
	graph      string
	format     string
	k          int
	normalized bool
	seed       int64
	solver     string
	workers    int
	labels     string
	features   string
	categories string
	top        int
	metricsOut string
	json       bool
}

func newClusterCmd(g *globalOptions) *cobra.Command {
	o := &clusterOptions{}
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Partition a graph into k clusters",
		Long: `Partition the nodes of a graph into k clusters and report the cut scores.

Flags override the configuration file, which overrides the defaults.

Examples:
  speclust cluster --graph g.txt --k 4
  speclust cluster --graph g.mtx --k 3 --normalized --labels z.csv
  speclust cluster -c speclust.yaml --features f.csv --categories c.txt --top 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(func(c *config.Config) { o.apply(cmd, c) })
			if err != nil {
				return err
			}
			return runCluster(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.graph, "graph", "g", "", "Graph file (edge list or Matrix Market)")
	f.StringVar(&o.format, "format", graphio.FormatAuto, "Graph format: auto, edgelist, mtx")
	f.IntVarP(&o.k, "k", "k", 2, "Number of clusters")
	f.BoolVar(&o.normalized, "normalized", false, "Use the symmetric normalized Laplacian")
	f.Int64Var(&o.seed, "seed", 1, "Seed for the eigensolver and k-means")
	f.StringVar(&o.solver, "solver", config.SolverLanczos, "Eigensolver: lanczos or dense")
	f.IntVar(&o.workers, "workers", 1, "Concurrent k-means restarts")
	f.StringVarP(&o.labels, "labels", "o", "", "Write node,cluster CSV to this file")
	f.StringVar(&o.features, "features", "", "Node×category CSV for cluster profiles")
	f.StringVar(&o.categories, "categories", "", "Category names, one per line")
	f.IntVar(&o.top, "top", 5, "Categories per cluster profile")
	f.StringVar(&o.metricsOut, "metrics-out", "", "Write Prometheus metrics to this file")
	f.BoolVar(&o.json, "json", false, "Print the report as JSON")

	return cmd
}

// apply copies the flags the user set into cfg.
func (o *clusterOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("graph") {
		cfg.Graph.Path = o.graph
	}
	if f.Changed("format") {
		cfg.Graph.Format = o.format
	}
	if f.Changed("k") {
		cfg.Clustering.K = o.k
	}
	if f.Changed("normalized") {
		cfg.Clustering.Normalized = o.normalized
	}
	if f.Changed("seed") {
		cfg.Clustering.Seed = o.seed
	}
	if f.Changed("solver") {
		cfg.Solver.Kind = o.solver
	}
	if f.Changed("workers") {
		cfg.Clustering.Workers = o.workers
	}
	if f.Changed("labels") {
		cfg.Output.Labels = o.labels
	}
	if f.Changed("features") {
		cfg.Profile.Features = o.features
	}
	if f.Changed("categories") {
		cfg.Profile.Categories = o.categories
	}
	if f.Changed("top") {
		cfg.Profile.TopK = o.top
	}
	if f.Changed("metrics-out") {
		cfg.Output.MetricsOut = o.metricsOut
	}
	if f.Changed("json") {
		cfg.Output.JSON = o.json
	}
}

func runCluster(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Graph.Path == "" {
		return fmt.Errorf("cluster: no graph given (--graph or graph.path)")
	}
	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	g, err := graphio.LoadGraph(cfg.Graph.Path, cfg.Graph.Format, cfg.GraphOptions()...)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "path", cfg.Graph.Path, "nodes", g.N(), "nnz", g.Adjacency.NNZ())

	metrics := spectral.NewMetrics()
	opts := append(cfg.SpectralOptions(), spectral.WithLogger(logger), spectral.WithMetrics(metrics))
	k := cfg.Clustering.K
	res, err := spectral.Cluster(g.Adjacency, k, opts...)
	if cfg.Output.MetricsOut != "" {
		// Written even on failure so non-convergence is visible.
		if werr := prometheus.WriteToTextfile(cfg.Output.MetricsOut, metrics.Registry()); werr != nil {
			logger.Error("metrics not written", "path", cfg.Output.MetricsOut, "err", werr)
		}
	}
	if err != nil {
		return explain(err)
	}

	scores, err := cut.Evaluate(g.Adjacency, res.Labels)
	if err != nil {
		return err
	}
	rep, err := newReport(g.Adjacency, res.Labels, k, scores)
	if err != nil {
		return err
	}
	rep.Laplacian = res.Embedding.Kind.String()
	rep.Eigenvalues = res.Eigenvalues()
	rep.Restarts = res.Embedding.Restarts
	rep.MatVecs = res.Embedding.MatVecs
	rep.Inertia = res.Inertia
	for _, w := range res.Warnings {
		rep.Warnings = append(rep.Warnings, w.Error())
	}

	if cfg.Profile.Features != "" {
		if rep.Profiles, err = clusterProfiles(cfg, g, res.Labels); err != nil {
			return err
		}
	}

	if cfg.Output.Labels != "" {
		if err := writeLabelsFile(cfg.Output.Labels, g.IDs, res.Labels); err != nil {
			return err
		}
		logger.Info("labels written", "path", cfg.Output.Labels)
	}

	return rep.write(cmd.OutOrStdout(), cfg.Output.JSON)
}

func clusterProfiles(cfg *config.Config, g *graphio.Graph, z []int) ([]clusterProfile, error) {
	ff, err := os.Open(cfg.Profile.Features)
	if err != nil {
		return nil, err
	}
	defer ff.Close()
	features, err := graphio.ReadFeatures(ff)
	if err != nil {
		return nil, err
	}
	if features.Rows() != g.N() {
		return nil, fmt.Errorf("features: %d rows for %d nodes: %w", features.Rows(), g.N(), graphio.ErrLengthMismatch)
	}

	cf, err := os.Open(cfg.Profile.Categories)
	if err != nil {
		return nil, err
	}
	defer cf.Close()
	names, err := graphio.ReadCategories(cf)
	if err != nil {
		return nil, err
	}

	profiles, err := profile.TopCategories(partition.ToClusters(z), features, names, cfg.Profile.TopK)
	if err != nil {
		return nil, err
	}
	labels := partition.Labels(z)
	out := make([]clusterProfile, len(profiles))
	for i, p := range profiles {
		out[i] = clusterProfile{Cluster: labels[p.Cluster], Top: p.Top}
	}

	return out, nil
}

func writeLabelsFile(path string, ids []string, z []int) error {
	return writeTo(path, io.Discard, func(w io.Writer) error { return graphio.WriteLabels(w, ids, z) })
}
