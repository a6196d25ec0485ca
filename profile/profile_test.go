// SPDX-License-Identifier: MIT

package profile_test

import (
	"testing"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/partition"
	"github.com/katalvlaran/spectral/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func features(t *testing.T) *matrix.Dense {
	t.Helper()
	// 5 users × 4 categories.
	f, err := matrix.NewDenseFrom(5, 4, []float64{
		1, 0, 1, 0,
		1, 0, 0, 0,
		0, 1, 0, 1,
		0, 1, 0, 1,
		1, 0, 1, 0,
	})
	require.NoError(t, err)

	return f
}

func TestTopCategories(t *testing.T) {
	t.Parallel()

	clusters := partition.ToClusters([]int{0, 0, 1, 1, 0})
	got, err := profile.TopCategories(clusters, features(t), []string{"books", "games", "music", "films"}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, profile.ClusterProfile{Cluster: 0, Size: 3, Top: []profile.CategoryCount{
		{Index: 0, Name: "books", Count: 3},
		{Index: 2, Name: "music", Count: 2},
	}}, got[0])

	// Equal totals rank by ascending category index.
	assert.Equal(t, []profile.CategoryCount{
		{Index: 1, Name: "games", Count: 2},
		{Index: 3, Name: "films", Count: 2},
	}, got[1].Top)
}

func TestTopCategories_SkipsZeroTotals(t *testing.T) {
	t.Parallel()

	got, err := profile.TopCategories([][]int{{1}, {}}, features(t), nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []profile.CategoryCount{{Index: 0, Name: "#0", Count: 1}}, got[0].Top)
	assert.Empty(t, got[1].Top)
	assert.Equal(t, 0, got[1].Size)

	got, err = profile.TopCategories([][]int{nil}, features(t), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, got[0].Top)
}

func TestTopCategories_Errors(t *testing.T) {
	t.Parallel()

	_, err := profile.TopCategories(nil, nil, nil, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = profile.TopCategories(nil, features(t), nil, 0)
	assert.ErrorIs(t, err, profile.ErrInvalidTopK)

	_, err = profile.TopCategories(nil, features(t), []string{"a"}, 1)
	assert.ErrorIs(t, err, profile.ErrNameCount)

	_, err = profile.TopCategories([][]int{{0, 9}}, features(t), nil, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
