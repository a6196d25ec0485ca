// SPDX-License-Identifier: MIT

package partition_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/partition"
)

func ExampleToClusters() {
	fmt.Println(partition.ToClusters([]int{0, 0, 1, 1, 0}))
	// Output: [[0 1 4] [2 3]]
}
