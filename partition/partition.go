// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"sort"
)

// ToClusters groups node indices by label: one group per distinct label in
// z, groups ordered by ascending label, members by ascending index.
// Negative labels are grouped like any other value.
//
// Example: ToClusters([0 0 1 1 0]) = [[0 1 4] [2 3]].
//
// Complexity: O(N + L log L) for L distinct labels.
func ToClusters(z []int) [][]int {
	index := make(map[int]int)
	var labels []int
	for _, l := range z {
		if _, ok := index[l]; !ok {
			index[l] = 0
			labels = append(labels, l)
		}
	}
	sort.Ints(labels)
	for pos, l := range labels {
		index[l] = pos
	}

	groups := make([][]int, len(labels))
	for i, l := range z {
		groups[index[l]] = append(groups[index[l]], i)
	}

	return groups
}

// Labels returns the distinct labels of z in ascending order, matching the
// group order of ToClusters.
func Labels(z []int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, l := range z {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Ints(out)

	return out
}

// Sizes counts members of each label in [0, k). Labels outside the range
// are ignored; use Validate first when that matters.
func Sizes(z []int, k int) []int {
	sizes := make([]int, k)
	for _, l := range z {
		if l >= 0 && l < k {
			sizes[l]++
		}
	}

	return sizes
}

// Validate checks len(z) == n and every label in [0, k).
func Validate(z []int, n, k int) error {
	if len(z) != n {
		return fmt.Errorf("Validate: len=%d, n=%d: %w", len(z), n, ErrLengthMismatch)
	}
	for i, l := range z {
		if l < 0 || l >= k {
			return fmt.Errorf("Validate: z[%d]=%d, k=%d: %w", i, l, k, ErrLabelOutOfRange)
		}
	}

	return nil
}

// Relabel renames labels in order of first appearance (0, 1, 2, ...).
// Two label vectors describe the same partition iff their relabelings are equal.
func Relabel(z []int) []int {
	names := make(map[int]int)
	out := make([]int, len(z))
	for i, l := range z {
		name, ok := names[l]
		if !ok {
			name = len(names)
			names[l] = name
		}
		out[i] = name
	}

	return out
}

// Equivalent reports whether a and b describe the same partition.
func Equivalent(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ra, rb := Relabel(a), Relabel(b)
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}

	return true
}
