// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSparse_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		n       int
		entries []matrix.Triplet
		want    error
	}{
		{"zero size", 0, nil, matrix.ErrInvalidDimensions},
		{"negative size", -3, nil, matrix.ErrInvalidDimensions},
		{"row out of range", 2, []matrix.Triplet{{Row: 2, Col: 0, Value: 1}}, matrix.ErrOutOfRange},
		{"negative col", 2, []matrix.Triplet{{Row: 0, Col: -1, Value: 1}}, matrix.ErrOutOfRange},
		{"nan", 2, []matrix.Triplet{{Row: 0, Col: 1, Value: math.NaN()}}, matrix.ErrNaNInf},
		{"inf", 2, []matrix.Triplet{{Row: 0, Col: 1, Value: math.Inf(1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.NewSparse(tc.n, tc.entries)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewSparse_MergesDuplicatesAndDropsZeros(t *testing.T) {
	t.Parallel()

	s := mustSparse(t, 3,
		matrix.Triplet{Row: 0, Col: 1, Value: 1.5},
		matrix.Triplet{Row: 0, Col: 1, Value: 2.5},
		matrix.Triplet{Row: 2, Col: 2, Value: 3},
		matrix.Triplet{Row: 1, Col: 0, Value: 2},
		matrix.Triplet{Row: 1, Col: 0, Value: -2},
		matrix.Triplet{Row: 2, Col: 0, Value: 0},
	)

	require.Equal(t, 2, s.NNZ())
	v, err := s.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	v, err = s.At(1, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.Zero(t, s.RowNNZ(1))

	_, err = s.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSparse_RowSumsDiagonalAndDo(t *testing.T) {
	t.Parallel()

	s := mustSparse(t, 3,
		matrix.Triplet{Row: 0, Col: 0, Value: 2},
		matrix.Triplet{Row: 0, Col: 2, Value: 1},
		matrix.Triplet{Row: 2, Col: 0, Value: 1},
		matrix.Triplet{Row: 1, Col: 1, Value: 5},
	)

	assert.Equal(t, []float64{3, 5, 1}, s.RowSums())
	assert.Equal(t, []float64{2, 5, 0}, s.Diagonal())

	var cols []int
	s.Do(0, func(j int, _ float64) { cols = append(cols, j) })
	assert.Equal(t, []int{0, 2}, cols, "row iteration must be in ascending column order")

	s.Do(7, func(int, float64) { t.Fatal("out-of-range row must not be visited") })
}

func TestSparse_IsSymmetric(t *testing.T) {
	t.Parallel()

	assert.True(t, triangle(t).IsSymmetric(0))

	oneSided := mustSparse(t, 2, matrix.Triplet{Row: 1, Col: 0, Value: 1})
	assert.False(t, oneSided.IsSymmetric(1e-9), "lower-only entry must be detected")

	skew := mustSparse(t, 2,
		matrix.Triplet{Row: 0, Col: 1, Value: 1},
		matrix.Triplet{Row: 1, Col: 0, Value: 1.1},
	)
	assert.False(t, skew.IsSymmetric(1e-3))
	assert.True(t, skew.IsSymmetric(0.2))
}

func TestSparse_MulVecMatchesDense(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	const n = 60
	var entries []matrix.Triplet
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if rng.Float64() < 0.1 {
				entries = append(entries, undirected(i, j, rng.Float64())...)
			}
		}
	}
	s := mustSparse(t, n, entries...)
	d := s.ToDense()

	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	ys, err := matrix.MatVec(s, x)
	require.NoError(t, err)
	yd, err := matrix.MatVec(d, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, yd, ys, 1e-12)
}

func TestSparse_MulVecParallelIsBitIdentical(t *testing.T) {
	t.Parallel()

	// Large enough to take the goroutine path on multi-core machines.
	const n = 5000
	var entries []matrix.Triplet
	for i := 0; i+1 < n; i++ {
		entries = append(entries, undirected(i, i+1, 1+float64(i%7)/3)...)
	}
	s := mustSparse(t, n, entries...)

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(float64(i))
	}
	y, err := matrix.MatVec(s, x)
	require.NoError(t, err)

	// Serial reference through row iteration.
	for i := 0; i < n; i++ {
		var sum float64
		s.Do(i, func(j int, v float64) { sum += v * x[j] })
		require.Equal(t, sum, y[i], "row %d", i)
	}
}

func TestMatVec_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.MatVec(triangle(t), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSparse_TripletsRoundTrip(t *testing.T) {
	t.Parallel()

	s := triangle(t)
	again, err := matrix.NewSparse(s.Dim(), s.Triplets())
	require.NoError(t, err)
	assert.Equal(t, s.ToDense().RawData(), again.ToDense().RawData())
}
