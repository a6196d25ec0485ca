// Package speclust partitions the nodes of large, sparse, undirected weighted
// graphs with spectral clustering.
//
// What is inside:
//
//	matrix/       CSR sparse and row-major dense storage, validators, row normalisation
//	builder/      deterministic synthetic graphs: complete, cycle, path, star, grid,
//	              random sparse, planted partition, bridges between blocks
//	laplacian/    unnormalized D − A and normalized I − D^-½ A D^-½ Laplacians
//	eigen/        block thick-restart Lanczos for the k smallest eigenpairs, dense reference
//	kmeans/       seeded k-means++ / Lloyd with reproducible parallel restarts
//	spectral/     Embed and Cluster: the full pipeline, error taxonomy, metrics
//	cut/          ratio cut, normalized cut, modularity, per-cluster breakdown
//	partition/    label vector ⇄ cluster list, canonical relabelling
//	components/   breadth-first traversal and connected components of an adjacency matrix
//	profile/      top categories per cluster from a side feature matrix
//	graphio/      edge list, Matrix Market, feature and label files
//	config/       YAML configuration of the command
//	cmd/speclust  the command-line tool
//
// Data flows strictly forward:
//
//	adjacency A → Laplacian L → embedding E (N×k) → unit rows → labels z → cut scores
//
// Quick start:
//
//	a, _ := builder.BuildAdjacency(nil, builder.Complete(4), builder.Complete(4), builder.Bridge(3, 4))
//	res, err := spectral.Cluster(a, 2, spectral.WithNormalized(true), spectral.WithSeed(42))
//	if err != nil {
//		// errors.Is(err, spectral.ErrInvalidClusterCount), ErrAsymmetricGraph,
//		// ErrSolverNonConvergence, ...
//	}
//	rc, _ := cut.RatioCut(a, res.Labels)
//
// Every run is reproducible for a fixed seed; no package uses global random state.
package speclust
