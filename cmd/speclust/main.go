// SPDX-License-Identifier: MIT

// Command speclust partitions sparse weighted graphs with spectral clustering.
//
//	speclust generate --sizes 30,30,30 --p-in 0.3 --p-out 0.01 --out g.txt --truth truth.csv
//	speclust cluster --graph g.txt --k 3 --normalized --labels z.csv
//	speclust evaluate --graph g.txt --labels z.csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "speclust:", err)
		os.Exit(1)
	}
}
