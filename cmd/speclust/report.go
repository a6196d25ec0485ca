// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spectral/components"
	"github.com/katalvlaran/spectral/cut"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/profile"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// report is what cluster and evaluate print.
type report struct {
	Nodes         int              `json:"nodes"`
	Edges         int              `json:"edges"`
	K             int              `json:"k"`
	Components    int              `json:"components"`
	Laplacian     string           `json:"laplacian,omitempty"`
	Eigenvalues   []float64        `json:"eigenvalues,omitempty"`
	Restarts      int              `json:"solver_restarts,omitempty"`
	MatVecs       int              `json:"solver_matvecs,omitempty"`
	Inertia       float64          `json:"inertia,omitempty"`
	RatioCut      float64          `json:"ratio_cut"`
	NormalizedCut float64          `json:"normalized_cut"`
	Modularity    float64          `json:"modularity"`
	Sizes         []int            `json:"sizes"`
	Balance       balance          `json:"balance"`
	Clusters      []cut.Term       `json:"clusters"`
	Warnings      []string         `json:"warnings,omitempty"`
	Profiles      []clusterProfile `json:"profiles,omitempty"`
}

type balance struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type clusterProfile struct {
	Cluster int                     `json:"cluster"`
	Top     []profile.CategoryCount `json:"top"`
}

// newReport fills the partition-level fields shared by cluster and evaluate.
func newReport(a *matrix.Sparse, z []int, k int, rep *cut.Report) (*report, error) {
	_, comps, err := components.Label(a)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, k)
	for _, l := range z {
		if l >= 0 && l < k {
			sizes[l]++
		}
	}

	return &report{
		Nodes:         a.Dim(),
		Edges:         edgeCount(a),
		Components:    comps,
		K:             k,
		RatioCut:      rep.RatioCut,
		NormalizedCut: rep.NormalizedCut,
		Modularity:    rep.Modularity,
		Sizes:         sizes,
		Balance:       sizeBalance(sizes),
		Clusters:      rep.Terms,
	}, nil
}

// edgeCount counts undirected edges, self-loops once.
func edgeCount(a *matrix.Sparse) int {
	var n int
	for i := 0; i < a.Dim(); i++ {
		a.Do(i, func(j int, _ float64) {
			if j >= i {
				n++
			}
		})
	}

	return n
}

func sizeBalance(sizes []int) balance {
	if len(sizes) == 0 {
		return balance{}
	}
	x := make([]float64, len(sizes))
	for i, s := range sizes {
		x[i] = float64(s)
	}
	mean, sd := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		sd = 0
	}

	return balance{Mean: mean, StdDev: sd, Min: floats.Min(x), Max: floats.Max(x)}
}

func (r *report) write(w io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "nodes: %d  edges: %d  components: %d  k: %d\n", r.Nodes, r.Edges, r.Components, r.K)
	if r.Laplacian != "" {
		fmt.Fprintf(w, "laplacian: %s  solver restarts: %d  matvecs: %d\n", r.Laplacian, r.Restarts, r.MatVecs)
		vals := make([]string, len(r.Eigenvalues))
		for i, v := range r.Eigenvalues {
			vals[i] = fmt.Sprintf("%.6g", v)
		}
		fmt.Fprintf(w, "eigenvalues: [%s]\n", strings.Join(vals, " "))
		fmt.Fprintf(w, "inertia: %.6g\n", r.Inertia)
	}
	fmt.Fprintf(w, "ratio cut: %.6g\n", r.RatioCut)
	fmt.Fprintf(w, "normalized cut: %.6g\n", r.NormalizedCut)
	fmt.Fprintf(w, "modularity: %.6g\n", r.Modularity)
	fmt.Fprintf(w, "sizes: %v (mean %.2f, sd %.2f, min %g, max %g)\n",
		r.Sizes, r.Balance.Mean, r.Balance.StdDev, r.Balance.Min, r.Balance.Max)
	for _, t := range r.Clusters {
		fmt.Fprintf(w, "cluster %d: size=%d vol=%.6g cross=%.6g\n", t.Label, t.Size, t.Volume, t.CrossWeight)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	for _, p := range r.Profiles {
		tops := make([]string, len(p.Top))
		for i, c := range p.Top {
			tops[i] = fmt.Sprintf("%s=%g", c.Name, c.Count)
		}
		fmt.Fprintf(w, "profile %d: %s\n", p.Cluster, strings.Join(tops, ", "))
	}

	return nil
}
