// SPDX-License-Identifier: MIT

// Package cut scores a graph partition.
//
// For every cluster c present in the label vector z, with exact set
// complement c̄:
//
//	w(c, c̄) = Σ_{i∈c, j∈c̄} A[i,j]      cross weight
//	vol(c)  = Σ_{i∈c} Σ_j A[i,j]        volume (internal edges count twice)
//
//	RatioCut      = Σ_c w(c, c̄) / |c|
//	NormalizedCut = Σ_c w(c, c̄) / vol(c),  with vol(c) = 0 replaced by 1
//
// Complement membership is decided by comparing labels (j ∈ c̄ iff z[j] ≠ c),
// so one pass over the stored entries of A serves every cluster at once.
// Terms are summed by ascending label, which makes repeated calls with the
// same (A, z) bit-identical.
//
// Modularity (Newman) is provided as a supplementary quality score.
//
// Errors: matrix.ErrNilMatrix, ErrLengthMismatch, ErrNegativeLabel.
package cut
