// SPDX-License-Identifier: MIT

package spectral_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/cut"
	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/kmeans"
	"github.com/katalvlaran/spectral/laplacian"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/partition"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func mustGraph(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *builder.Graph {
	t.Helper()
	g, err := builder.BuildGraph(bopts, cons...)
	require.NoError(t, err)

	return g
}

// TestCluster_TwoTriangles: two disjoint triangles split into the triangles
// with both cut scores ≈ 0.
func TestCluster_TwoTriangles(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, nil, builder.Complete(3), builder.Complete(3))
	res, err := spectral.Cluster(g.Adjacency, 2, spectral.WithNormalized(false), spectral.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, partition.Equivalent(g.Blocks, res.Labels), "labels %v", res.Labels)
	assert.Equal(t, []int{3, 3}, res.Sizes)
	assert.Empty(t, res.Warnings)
	assert.InDeltaSlice(t, []float64{0, 0}, res.Eigenvalues(), 1e-10)
	assert.Equal(t, 2, res.Embedding.Components)

	rc, err := cut.RatioCut(g.Adjacency, res.Labels)
	require.NoError(t, err)
	nc, err := cut.NormalizedCut(g.Adjacency, res.Labels)
	require.NoError(t, err)
	assert.InDelta(t, 0, rc, 1e-12)
	assert.InDelta(t, 0, nc, 1e-12)
}

// TestCluster_PlantedPartition recovers a planted partition with either Laplacian.
func TestCluster_PlantedPartition(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, []builder.BuilderOption{builder.WithSeed(21)},
		builder.PlantedPartition([]int{30, 30, 30}, 0.6, 0.01))
	for _, normalized := range []bool{false, true} {
		res, err := spectral.Cluster(g.Adjacency, 3, spectral.WithNormalized(normalized), spectral.WithSeed(5))
		require.NoError(t, err)
		assert.True(t, partition.Equivalent(g.Blocks, res.Labels), "normalized=%v", normalized)
		assert.Equal(t, laplacian.KindOf(normalized), res.Embedding.Kind)

		// Rows fed to k-means have unit length.
		for i := 0; i < res.Normalized.Rows(); i++ {
			assert.InDelta(t, 1, floats.Norm(res.Normalized.Row(i), 2), 1e-9)
		}
	}
}

// TestCluster_IsolatedNode: an isolated node neither breaks the normalized
// Laplacian nor joins a connected component.
func TestCluster_IsolatedNode(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, nil, builder.Complete(4), builder.Complete(4), builder.Isolated(1))
	for _, normalized := range []bool{false, true} {
		res, err := spectral.Cluster(g.Adjacency, 3, spectral.WithNormalized(normalized), spectral.WithSeed(2))
		require.NoError(t, err)
		assert.True(t, partition.Equivalent(g.Blocks, res.Labels), "normalized=%v labels=%v", normalized, res.Labels)
		for _, v := range res.Normalized.RawData() {
			require.False(t, math.IsNaN(v))
		}
	}
}

// TestCluster_Determinism: same seed, same labels; parallel k-means agrees.
func TestCluster_Determinism(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, []builder.BuilderOption{builder.WithSeed(8)},
		builder.PlantedPartition([]int{20, 25, 15}, 0.4, 0.05))
	a, err := spectral.Cluster(g.Adjacency, 3, spectral.WithSeed(77), spectral.WithNormalized(true))
	require.NoError(t, err)
	b, err := spectral.Cluster(g.Adjacency, 3, spectral.WithSeed(77), spectral.WithNormalized(true),
		spectral.WithKMeans(kmeans.Config{Workers: 4}))
	require.NoError(t, err)
	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Inertia, b.Inertia)
}

// TestEmbed_NormalizedNullVector: the first column spans sqrt(D).
func TestEmbed_NormalizedNullVector(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, []builder.BuilderOption{builder.WithSeed(4), builder.WithUniformWeight(0.5, 2)},
		builder.PlantedPartition([]int{10, 12}, 0.7, 0.1))
	emb, err := spectral.Embed(g.Adjacency, 2, spectral.WithNormalized(true), spectral.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 2, emb.Vectors.Cols())
	assert.InDelta(t, 0, emb.Values[0], 1e-9)

	d := laplacian.Degrees(g.Adjacency)
	sq := make([]float64, len(d))
	for i, v := range d {
		sq[i] = math.Sqrt(v)
	}
	v0 := emb.Vectors.Col(0)
	cos := floats.Dot(v0, sq) / (floats.Norm(v0, 2) * floats.Norm(sq, 2))
	assert.InDelta(t, 1, math.Abs(cos), 1e-8)
}

// TestEmbed_Errors checks every precondition and its priority.
func TestEmbed_Errors(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, nil, builder.Path(4))
	asym, err := matrix.NewSparse(3, []matrix.Triplet{{Row: 0, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1}, {Row: 2, Col: 1, Value: 1}})
	require.NoError(t, err)
	neg, err := matrix.NewSparse(2, []matrix.Triplet{{Row: 0, Col: 1, Value: -1}, {Row: 1, Col: 0, Value: -1}})
	require.NoError(t, err)

	tests := []struct {
		name string
		a    *matrix.Sparse
		k    int
		want []error
		msg  string
	}{
		{"nil", nil, 2, []error{spectral.ErrNilGraph}, ""},
		{"asymmetric", asym, 2, []error{spectral.ErrAsymmetricGraph, matrix.ErrAsymmetry}, ""},
		{"asymmetric before k", asym, 1, []error{spectral.ErrAsymmetricGraph}, ""},
		{"k=1", g.Adjacency, 1, []error{spectral.ErrInvalidClusterCount}, "at least two clusters required"},
		{"k=N+1", g.Adjacency, 5, []error{spectral.ErrInvalidClusterCount}, "cannot exceed node count"},
		{"negative", neg, 2, []error{spectral.ErrNegativeWeight, matrix.ErrNegativeEntry}, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := spectral.Embed(tc.a, tc.k)
			for _, want := range tc.want {
				require.ErrorIs(t, err, want)
			}
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
			_, err = spectral.Cluster(tc.a, tc.k)
			require.ErrorIs(t, err, tc.want[0])
		})
	}
}

// TestCluster_NonConvergence surfaces solver failure as a distinct error that
// still exposes the partial eigenpairs.
func TestCluster_NonConvergence(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, nil, builder.Path(300))
	m := spectral.NewMetrics()
	solver := eigen.NewLanczos(eigen.WithSubspaceSize(6), eigen.WithMaxRestarts(0), eigen.WithTolerance(1e-14))
	_, err := spectral.Cluster(g.Adjacency, 2, spectral.WithSolver(solver), spectral.WithMetrics(m))
	require.ErrorIs(t, err, spectral.ErrSolverNonConvergence)
	require.ErrorIs(t, err, eigen.ErrNotConverged)
	assert.NotErrorIs(t, err, spectral.ErrInvalidClusterCount)

	var nce *eigen.NotConvergedError
	require.True(t, errors.As(err, &nce))
	require.NotNil(t, nce.Partial)
	assert.Len(t, nce.Partial.Values, 2)

	assert.Equal(t, 1.0, counterValue(t, m, "spectral_eigensolver_nonconvergence_total"))
}

// fixedSolver returns a preset embedding regardless of the operator.
type fixedSolver struct{ vecs *matrix.Dense }

func (s fixedSolver) Smallest(_ matrix.Operator, k int) (*eigen.Result, error) {
	return &eigen.Result{Values: make([]float64, k), Vectors: s.vecs}, nil
}

// TestCluster_DegenerateWarning: an embedding with two distinct rows and k=3
// leaves one cluster empty, reported as a warning, logged and counted.
func TestCluster_DegenerateWarning(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, nil, builder.Path(4))
	vecs, err := matrix.NewDenseFrom(4, 3, []float64{
		1, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 1, 0,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := spectral.NewMetrics()
	res, err := spectral.Cluster(g.Adjacency, 3,
		spectral.WithSolver(fixedSolver{vecs: vecs}), spectral.WithLogger(logger), spectral.WithMetrics(m))
	require.NoError(t, err)

	require.Equal(t, []spectral.DegenerateClusterWarning{{Cluster: 2}}, res.Warnings)
	assert.Equal(t, []int{2, 2, 0}, res.Sizes)
	assert.Equal(t, "spectral: cluster 2 received no members", res.Warnings[0].Error())
	assert.True(t, partition.Equivalent([]int{0, 0, 1, 1}, res.Labels))

	assert.Contains(t, buf.String(), "degenerate cluster")
	assert.Contains(t, buf.String(), "laplacian built")
	assert.Equal(t, 1.0, counterValue(t, m, "spectral_degenerate_clusters_total"))
}

// TestMetrics_Recorded checks solver counters and stage histograms.
func TestMetrics_Recorded(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, nil, builder.Complete(5), builder.Complete(5), builder.Bridge(0, 5))
	m := spectral.NewMetrics()
	_, err := spectral.Cluster(g.Adjacency, 2, spectral.WithMetrics(m), spectral.WithSeed(1))
	require.NoError(t, err)

	assert.Positive(t, counterValue(t, m, "spectral_eigensolver_matvecs_total"))
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var stages int
	for _, f := range families {
		if f.GetName() == "spectral_stage_duration_seconds" {
			stages = len(f.GetMetric())
		}
	}
	assert.Equal(t, 4, stages)
}

// counterValue sums a counter family from the registry.
func counterValue(t *testing.T, m *spectral.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}

	return total
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { spectral.WithSolver(nil) })
	assert.Panics(t, func() { spectral.WithLogger(nil) })
	assert.Panics(t, func() { spectral.WithSymmetryTolerance(-1) })
	assert.NotPanics(t, func() { spectral.WithMetrics(nil) })
}

// TestCluster_WithLanczos: tuned Lanczos options reach the default solver.
func TestCluster_WithLanczos(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, nil, builder.Path(300))
	_, err := spectral.Cluster(g.Adjacency, 2,
		spectral.WithLanczos(eigen.WithSubspaceSize(6), eigen.WithMaxRestarts(0), eigen.WithTolerance(1e-14)))
	require.ErrorIs(t, err, spectral.ErrSolverNonConvergence)

	tri := mustGraph(t, nil, builder.Complete(3), builder.Complete(3))
	res, err := spectral.Cluster(tri.Adjacency, 2, spectral.WithLanczos(eigen.WithSubspaceSize(5), eigen.WithBlockSize(2)))
	require.NoError(t, err)
	assert.True(t, partition.Equivalent(tri.Blocks, res.Labels))
}
