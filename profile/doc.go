// SPDX-License-Identifier: MIT

// Package profile summarises clusters by a side feature matrix.
//
// Given the cluster list of a partition (see partition.ToClusters) and an N×C
// feature matrix whose column j counts the preference of each node for
// category j, TopCategories reports per cluster the categories with the
// largest total count. Ranking is by descending total, ties by ascending
// category index; categories with a zero total are never reported.
//
// The package is a reporting boundary: it never touches the adjacency matrix
// and takes no part in the numerical pipeline.
package profile
