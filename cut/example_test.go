// SPDX-License-Identifier: MIT

package cut_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/cut"
)

// ExampleEvaluate scores the natural split of two triangles joined by one edge.
func ExampleEvaluate() {
	a, _ := builder.BuildAdjacency(nil, builder.Complete(3), builder.Complete(3), builder.Bridge(2, 3))
	rep, err := cut.Evaluate(a, []int{0, 0, 0, 1, 1, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("ratio cut: %.4f\n", rep.RatioCut)
	fmt.Printf("normalized cut: %.4f\n", rep.NormalizedCut)
	for _, term := range rep.Terms {
		fmt.Printf("cluster %d: size=%d vol=%g cross=%g\n", term.Label, term.Size, term.Volume, term.CrossWeight)
	}
	// Output:
	// ratio cut: 0.6667
	// normalized cut: 0.2857
	// cluster 0: size=3 vol=7 cross=1
	// cluster 1: size=3 vol=7 cross=1
}
