// SPDX-License-Identifier: MIT

package laplacian_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/laplacian"
)

// ExampleBuild shows D − A for the path 0-1-2.
func ExampleBuild() {
	a, _ := builder.BuildAdjacency(nil, builder.Path(3))
	l, err := laplacian.Build(a, laplacian.Unnormalized)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(l.ToDense())
	// Output:
	// [1, -1, 0]
	// [-1, 2, -1]
	// [0, -1, 1]
}
