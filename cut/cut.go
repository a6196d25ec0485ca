// SPDX-License-Identifier: MIT

package cut

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/partition"
	"gonum.org/v1/gonum/floats"
)

// Term is the contribution of one cluster.
type Term struct {
	Label       int     `json:"label"`
	Size        int     `json:"size"`
	Volume      float64 `json:"volume"` // raw volume, before the zero substitution
	CrossWeight float64 `json:"cross_weight"`
	Ratio       float64 `json:"ratio"`      // CrossWeight / Size
	Normalized  float64 `json:"normalized"` // CrossWeight / max-substituted Volume
}

// Report holds both cut scores, modularity and the per-cluster breakdown.
type Report struct {
	RatioCut      float64
	NormalizedCut float64
	Modularity    float64
	// Terms are ordered by ascending label; only labels present in z appear.
	Terms []Term
}

// RatioCut returns Σ_c w(c, c̄)/|c|.
func RatioCut(a *matrix.Sparse, z []int) (float64, error) {
	r, err := Evaluate(a, z)
	if err != nil {
		return 0, fmt.Errorf("RatioCut: %w", err)
	}

	return r.RatioCut, nil
}

// NormalizedCut returns Σ_c w(c, c̄)/vol(c) with vol(c)=0 replaced by 1.
func NormalizedCut(a *matrix.Sparse, z []int) (float64, error) {
	r, err := Evaluate(a, z)
	if err != nil {
		return 0, fmt.Errorf("NormalizedCut: %w", err)
	}

	return r.NormalizedCut, nil
}

// Modularity returns Q = Σ_c [in(c)/2m − (vol(c)/2m)²] where in(c) is the
// weight inside c counted in both directions and 2m = Σ_c vol(c). Q is 0 for
// an edgeless graph.
func Modularity(a *matrix.Sparse, z []int) (float64, error) {
	r, err := Evaluate(a, z)
	if err != nil {
		return 0, fmt.Errorf("Modularity: %w", err)
	}

	return r.Modularity, nil
}

// Evaluate computes every score in one pass.
//
// Implementation:
//   - Stage 1 (Validate): a non-nil, len(z) = N, labels ≥ 0.
//   - Stage 2 (Prepare): cluster list via partition.ToClusters; label → term index.
//   - Stage 3 (Execute): walk each row of A once, adding every entry to the
//     row's cluster volume and, when the column's label differs, to its cross
//     weight; then form the per-cluster terms in label order.
//
// Complexity: O(N + nnz) time, O(N) memory.
func Evaluate(a *matrix.Sparse, z []int) (*Report, error) {
	if a == nil {
		return nil, fmt.Errorf("Evaluate: %w", matrix.ErrNilMatrix)
	}
	if len(z) != a.Dim() {
		return nil, fmt.Errorf("Evaluate: len(z)=%d, N=%d: %w", len(z), a.Dim(), ErrLengthMismatch)
	}
	for i, l := range z {
		if l < 0 {
			return nil, fmt.Errorf("Evaluate: z[%d]=%d: %w", i, l, ErrNegativeLabel)
		}
	}

	clusters := partition.ToClusters(z)
	labels := partition.Labels(z)
	terms := make([]Term, len(clusters))
	for t, l := range labels {
		terms[t] = Term{Label: l, Size: len(clusters[t])}
	}

	vol := make([]float64, len(terms))
	cross := make([]float64, len(terms))
	for t, members := range clusters {
		c := labels[t]
		for _, i := range members {
			a.Do(i, func(j int, v float64) {
				vol[t] += v
				if z[j] != c {
					cross[t] += v
				}
			})
		}
	}

	rep := &Report{Terms: terms}
	total := floats.Sum(vol)
	var denom, inside float64
	for t := range terms {
		terms[t].Volume = vol[t]
		terms[t].CrossWeight = cross[t]
		terms[t].Ratio = cross[t] / float64(terms[t].Size)

		denom = vol[t]
		if denom == 0 {
			denom = 1
		}
		terms[t].Normalized = cross[t] / denom

		rep.RatioCut += terms[t].Ratio
		rep.NormalizedCut += terms[t].Normalized
		if total > 0 {
			inside = vol[t] - cross[t]
			rep.Modularity += inside/total - (vol[t]/total)*(vol[t]/total)
		}
	}

	return rep, nil
}
