// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spectral/matrix"
)

// CategoryCount is one ranked category of a cluster.
type CategoryCount struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

// ClusterProfile is the summary of one cluster.
type ClusterProfile struct {
	// Cluster is the position of the group in the input cluster list.
	Cluster int
	Size    int
	Top     []CategoryCount
}

// TopCategories ranks the feature columns of every cluster by total count and
// keeps at most topK non-zero categories per cluster.
//
// names may be nil, in which case categories are named by index ("#3").
// Node indices outside the feature rows yield matrix.ErrOutOfRange.
//
// Complexity: O(Σ|c|·C + K·C log C).
func TopCategories(clusters [][]int, features *matrix.Dense, names []string, topK int) ([]ClusterProfile, error) {
	if features == nil {
		return nil, fmt.Errorf("TopCategories: %w", matrix.ErrNilMatrix)
	}
	if topK < 1 {
		return nil, fmt.Errorf("TopCategories: topK=%d: %w", topK, ErrInvalidTopK)
	}
	cols := features.Cols()
	if names != nil && len(names) != cols {
		return nil, fmt.Errorf("TopCategories: %d names for %d columns: %w", len(names), cols, ErrNameCount)
	}

	out := make([]ClusterProfile, len(clusters))
	order := make([]int, cols)
	for c, members := range clusters {
		if members == nil {
			// ColumnSums treats nil as "all rows".
			members = []int{}
		}
		sums, err := matrix.ColumnSums(features, members)
		if err != nil {
			return nil, fmt.Errorf("TopCategories: cluster %d: %w", c, err)
		}
		for j := range order {
			order[j] = j
		}
		sort.SliceStable(order, func(a, b int) bool { return sums[order[a]] > sums[order[b]] })

		top := make([]CategoryCount, 0, topK)
		for _, j := range order {
			if len(top) == topK || sums[j] <= 0 {
				break
			}
			top = append(top, CategoryCount{Index: j, Name: categoryName(names, j), Count: sums[j]})
		}
		out[c] = ClusterProfile{Cluster: c, Size: len(members), Top: top}
	}

	return out, nil
}

func categoryName(names []string, j int) string {
	if names == nil {
		return fmt.Sprintf("#%d", j)
	}

	return names[j]
}
