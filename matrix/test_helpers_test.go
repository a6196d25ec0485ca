// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to mask its concrete type and force generic (At-based) paths.
type hide struct{ matrix.Matrix }

// mustSparse builds an n×n Sparse from triplets or fails the test.
func mustSparse(t testing.TB, n int, entries ...matrix.Triplet) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparse(n, entries)
	require.NoError(t, err)

	return s
}

// undirected returns both (u,v,w) and (v,u,w) triplets.
func undirected(u, v int, w float64) []matrix.Triplet {
	return []matrix.Triplet{{Row: u, Col: v, Value: w}, {Row: v, Col: u, Value: w}}
}

// triangle returns the symmetric adjacency of K3 with unit weights.
func triangle(t testing.TB) *matrix.Sparse {
	t.Helper()
	var e []matrix.Triplet
	e = append(e, undirected(0, 1, 1)...)
	e = append(e, undirected(1, 2, 1)...)
	e = append(e, undirected(0, 2, 1)...)

	return mustSparse(t, 3, e...)
}

// mustDenseFrom builds a Dense from row-major data or fails the test.
func mustDenseFrom(t testing.TB, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return d
}
