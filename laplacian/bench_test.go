// SPDX-License-Identifier: MIT

package laplacian_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/laplacian"
	"github.com/katalvlaran/spectral/matrix"
)

var sinkL *matrix.Sparse

func BenchmarkBuild(b *testing.B) {
	for _, side := range []int{32, 128, 512} {
		a, err := builder.BuildAdjacency(nil, builder.Grid(side, side))
		if err != nil {
			b.Fatal(err)
		}
		for _, kind := range []laplacian.Kind{laplacian.Unnormalized, laplacian.Normalized} {
			b.Run(fmt.Sprintf("%s/n=%d", kind, side*side), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					sinkL, _ = laplacian.Build(a, kind)
				}
			})
		}
	}
}
