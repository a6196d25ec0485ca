// SPDX-License-Identifier: MIT

package kmeans_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spectral/kmeans"
)

var sinkKM *kmeans.Result

func BenchmarkFit(b *testing.B) {
	centers := [][2]float64{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 2}}
	for _, per := range []int{200, 2000} {
		x, _ := blobs(b, centers, per, 0.8, 1)
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", per*len(centers), workers), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					sinkKM, _ = kmeans.Fit(x, len(centers), kmeans.Config{Seed: 1, Workers: workers})
				}
			})
		}
	}
}
