// SPDX-License-Identifier: MIT

package eigen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/laplacian"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// lap builds the Laplacian of the composed graph or fails the test.
func lap(t testing.TB, kind laplacian.Kind, bopts []builder.BuilderOption, cons ...builder.Constructor) *matrix.Sparse {
	t.Helper()
	a, err := builder.BuildAdjacency(bopts, cons...)
	require.NoError(t, err)
	l, err := laplacian.Build(a, kind)
	require.NoError(t, err)

	return l
}

// checkPairs asserts unit-norm, mutually orthogonal vectors with small residuals.
func checkPairs(t *testing.T, op matrix.Operator, res *eigen.Result, tol float64) {
	t.Helper()
	k := len(res.Values)
	require.Equal(t, op.Dim(), res.Vectors.Rows())
	require.Equal(t, k, res.Vectors.Cols())
	require.True(t, sortedWithin(res.Values, tol))

	ax := make([]float64, op.Dim())
	for j := 0; j < k; j++ {
		x := res.Vector(j)
		assert.InDelta(t, 1, floats.Norm(x, 2), 1e-9, "norm of vector %d", j)
		for i := 0; i < j; i++ {
			assert.InDelta(t, 0, floats.Dot(x, res.Vector(i)), 1e-8, "x%d·x%d", i, j)
		}
		op.MulVec(ax, x)
		floats.AddScaled(ax, -res.Values[j], x)
		assert.LessOrEqual(t, floats.Norm(ax, 2), tol, "residual of pair %d", j)
	}
}

func sortedWithin(v []float64, tol float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1]-tol {
			return false
		}
	}

	return true
}

// TestLanczos_MatchesDense compares eigenvalues with the dense reference and
// checks the eigenpairs by residual (sign and tie order are not compared).
func TestLanczos_MatchesDense(t *testing.T) {
	t.Parallel()

	sbm := []builder.BuilderOption{builder.WithSeed(5)}
	tests := []struct {
		name string
		l    *matrix.Sparse
		k    int
	}{
		{"barbell/unnormalized", lap(t, laplacian.Unnormalized, nil, builder.Complete(10), builder.Complete(10), builder.Bridge(0, 10)), 2},
		{"sbm/normalized", lap(t, laplacian.Normalized, sbm, builder.PlantedPartition([]int{30, 30, 30}, 0.5, 0.02)), 3},
		{"sbm/unnormalized", lap(t, laplacian.Unnormalized, sbm, builder.PlantedPartition([]int{25, 35, 40}, 0.4, 0.01)), 3},
		{"grid/normalized", lap(t, laplacian.Normalized, nil, builder.Grid(8, 8)), 4},
		{"star/unnormalized", lap(t, laplacian.Unnormalized, nil, builder.Star(40)), 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			want, err := eigen.DenseSolver{}.Smallest(tc.l, tc.k)
			require.NoError(t, err)

			got, err := eigen.NewLanczos(eigen.WithSeed(1), eigen.WithBound(laplacian.SpectralBound(tc.l))).Smallest(tc.l, tc.k)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want.Values, got.Values, 1e-8)
			checkPairs(t, tc.l, got, 1e-7)
			checkPairs(t, tc.l, want, 1e-9)
			assert.Positive(t, got.MatVecs)
		})
	}
}

// TestLanczos_Multiplicity recovers a four-fold zero eigenvalue (four
// components) in a basis much smaller than N.
func TestLanczos_Multiplicity(t *testing.T) {
	t.Parallel()

	l := lap(t, laplacian.Unnormalized, nil,
		builder.Cycle(30), builder.Cycle(30), builder.Cycle(30), builder.Cycle(30))
	res, err := eigen.NewLanczos(eigen.WithSeed(3)).Smallest(l, 4)
	require.NoError(t, err)
	for j, v := range res.Values {
		assert.InDelta(t, 0, v, 1e-8, "value %d", j)
	}
	checkPairs(t, l, res, 1e-7)

	// Every null vector is constant on each cycle.
	for j := 0; j < 4; j++ {
		x := res.Vector(j)
		for c := 0; c < 4; c++ {
			block := x[c*30 : (c+1)*30]
			assert.InDelta(t, floats.Max(block), floats.Min(block), 1e-6, "vector %d cycle %d", j, c)
		}
	}
}

// TestLanczos_Determinism checks bit-identical output for a fixed seed.
func TestLanczos_Determinism(t *testing.T) {
	t.Parallel()

	l := lap(t, laplacian.Normalized, []builder.BuilderOption{builder.WithSeed(9)},
		builder.PlantedPartition([]int{20, 20, 20}, 0.6, 0.05))
	a, err := eigen.NewLanczos(eigen.WithSeed(42)).Smallest(l, 3)
	require.NoError(t, err)
	b, err := eigen.NewLanczos(eigen.WithSeed(42)).Smallest(l, 3)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Vectors.RawData(), b.Vectors.RawData())
	assert.Equal(t, a.MatVecs, b.MatVecs)
}

// TestLanczos_ZeroValue verifies that the zero value uses defaults.
func TestLanczos_ZeroValue(t *testing.T) {
	t.Parallel()

	l := lap(t, laplacian.Unnormalized, nil, builder.Complete(4), builder.Complete(4))
	var s eigen.Lanczos
	res, err := s.Smallest(l, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0}, res.Values, 1e-10)
}

// TestLanczos_NotConverged exhausts the restart budget on a slowly converging path.
func TestLanczos_NotConverged(t *testing.T) {
	t.Parallel()

	l := lap(t, laplacian.Unnormalized, nil, builder.Path(400))
	s := eigen.NewLanczos(eigen.WithSubspaceSize(8), eigen.WithMaxRestarts(1), eigen.WithTolerance(1e-12))
	_, err := s.Smallest(l, 2)
	require.ErrorIs(t, err, eigen.ErrNotConverged)

	var nce *eigen.NotConvergedError
	require.True(t, errors.As(err, &nce))
	assert.Equal(t, 2, nce.Wanted)
	assert.Equal(t, 1, nce.Restarts)
	assert.Less(t, nce.Converged, 2)
	require.NotNil(t, nce.Partial)
	assert.Len(t, nce.Partial.Values, 2)
	assert.Contains(t, nce.Error(), "of 2 eigenpairs converged after 1 restarts")
}

// nanOp is an operator that poisons its output.
type nanOp struct{ n int }

func (o nanOp) Dim() int { return o.n }
func (o nanOp) MulVec(dst, _ []float64) {
	for i := range dst {
		dst[i] = math.NaN()
	}
}

// TestSolvers_Errors covers invalid k, nil operators and non-finite operators.
func TestSolvers_Errors(t *testing.T) {
	t.Parallel()

	l := lap(t, laplacian.Unnormalized, nil, builder.Path(5))
	for _, s := range []eigen.Solver{eigen.NewLanczos(), eigen.DenseSolver{}} {
		_, err := s.Smallest(l, 0)
		require.ErrorIs(t, err, eigen.ErrInvalidK)
		_, err = s.Smallest(l, 6)
		require.ErrorIs(t, err, eigen.ErrInvalidK)
		_, err = s.Smallest(nil, 1)
		require.ErrorIs(t, err, eigen.ErrNilOperator)
	}

	_, err := eigen.NewLanczos().Smallest(nanOp{n: 10}, 2)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDenseSolver_GenericOperator uses a Dense operator (MulVec path) with a
// known spectrum and sign convention.
func TestDenseSolver_GenericOperator(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFrom(2, 2, []float64{2, 1, 1, 3})
	require.NoError(t, err)
	res, err := eigen.DenseSolver{}.Smallest(a, 2)
	require.NoError(t, err)
	lo, hi := (5-math.Sqrt(5))/2, (5+math.Sqrt(5))/2
	assert.InDeltaSlice(t, []float64{lo, hi}, res.Values, 1e-12)
	assert.Equal(t, 2, res.MatVecs)

	// v = (1, λ−2)/‖·‖ with the larger-magnitude entry positive.
	unit := func(x, y float64) []float64 {
		n := math.Hypot(x, y)
		return []float64{x / n, y / n}
	}
	assert.InDeltaSlice(t, unit(1, lo-2), res.Vector(0), 1e-12)
	assert.InDeltaSlice(t, unit(1, hi-2), res.Vector(1), 1e-12)
}

// TestOptions_Panics verifies option validation.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { eigen.WithSubspaceSize(1) })
	assert.Panics(t, func() { eigen.WithBlockSize(0) })
	assert.Panics(t, func() { eigen.WithMaxRestarts(-1) })
	assert.Panics(t, func() { eigen.WithTolerance(0) })
	assert.Panics(t, func() { eigen.WithTolerance(1) })
	assert.Panics(t, func() { eigen.WithBound(-1) })
	assert.Panics(t, func() { eigen.WithBound(math.Inf(1)) })
	assert.NotPanics(t, func() { eigen.WithBound(0) })
}
