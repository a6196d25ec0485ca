// SPDX-License-Identifier: MIT

// Package partition converts cluster label vectors into other views.
//
// A label vector z assigns node i to cluster z[i]. ToClusters lists the nodes
// of every label that occurs, by ascending label, each group by ascending
// node index. Sizes, Validate and Relabel are helpers for reporting and for
// comparing partitions up to a permutation of labels.
//
// All functions are pure; inputs are never modified.
package partition
