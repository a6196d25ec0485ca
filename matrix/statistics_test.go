// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRowsL2(t *testing.T) {
	t.Parallel()

	X := mustDenseFrom(t, 3, 2,
		3, 4,
		0, 0,
		-2, 0,
	)
	Y, norms, err := matrix.NormalizeRowsL2(X)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{5, 0, 2}, norms, 1e-15)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, Y.Row(0), 1e-15)
	assert.Equal(t, []float64{0, 0}, Y.Row(1), "zero rows stay zero")
	assert.InDeltaSlice(t, []float64{-1, 0}, Y.Row(2), 1e-15)

	for i := 0; i < Y.Rows(); i++ {
		if norms[i] == 0 {
			continue
		}
		row := Y.Row(i)
		assert.InDelta(t, 1.0, math.Hypot(row[0], row[1]), 1e-12)
	}

	assert.Equal(t, []float64{3, 4}, X.Row(0), "input must not be modified")

	_, _, err = matrix.NormalizeRowsL2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestColumnSums(t *testing.T) {
	t.Parallel()

	X := mustDenseFrom(t, 3, 2,
		1, 0,
		1, 1,
		0, 1,
	)
	all, err := matrix.ColumnSums(X, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, all)

	sub, err := matrix.ColumnSums(X, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, sub)

	_, err = matrix.ColumnSums(X, []int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
