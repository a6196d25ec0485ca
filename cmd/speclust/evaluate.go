// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/spectral/config"
	"github.com/katalvlaran/spectral/cut"
	"github.com/katalvlaran/spectral/graphio"
	"github.com/spf13/cobra"
)

type evaluateOptions struct {
	graph  string
	format string
	labels string
	json   bool
}

func newEvaluateCmd(g *globalOptions) *cobra.Command {
	o := &evaluateOptions{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score an existing partition",
		Long: `Compute ratio cut, normalized cut and modularity of a labelling.

Example:
  speclust evaluate --graph g.txt --labels z.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(func(c *config.Config) {
				if cmd.Flags().Changed("graph") {
					c.Graph.Path = o.graph
				}
				if cmd.Flags().Changed("format") {
					c.Graph.Format = o.format
				}
				if cmd.Flags().Changed("json") {
					c.Output.JSON = o.json
				}
			})
			if err != nil {
				return err
			}
			return runEvaluate(cmd, cfg, o.labels)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.graph, "graph", "g", "", "Graph file (edge list or Matrix Market)")
	f.StringVar(&o.format, "format", graphio.FormatAuto, "Graph format: auto, edgelist, mtx")
	f.StringVarP(&o.labels, "labels", "l", "", "node,cluster CSV to score")
	f.BoolVar(&o.json, "json", false, "Print the report as JSON")
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

func runEvaluate(cmd *cobra.Command, cfg *config.Config, labelsPath string) error {
	if cfg.Graph.Path == "" {
		return fmt.Errorf("evaluate: no graph given (--graph or graph.path)")
	}
	g, err := graphio.LoadGraph(cfg.Graph.Path, cfg.Graph.Format, cfg.GraphOptions()...)
	if err != nil {
		return err
	}

	lf, err := os.Open(labelsPath)
	if err != nil {
		return err
	}
	defer lf.Close()
	z, err := graphio.ReadLabels(lf, g)
	if err != nil {
		return err
	}

	scores, err := cut.Evaluate(g.Adjacency, z)
	if err != nil {
		return err
	}
	var k int
	for _, l := range z {
		if l+1 > k {
			k = l + 1
		}
	}

	rep, err := newReport(g.Adjacency, z, k, scores)
	if err != nil {
		return err
	}

	return rep.write(cmd.OutOrStdout(), cfg.Output.JSON)
}
