// SPDX-License-Identifier: MIT

// Package graphio loads graphs and side data from text formats and writes
// cluster labels back out.
//
// Formats:
//
//	edge list      one edge per line, "u v [w]" separated by whitespace or a
//	               comma; a line with a single ID declares a node; lines
//	               starting with '#' or '%' are comments. Node IDs are
//	               arbitrary strings indexed in order of first appearance.
//	               Edges are undirected: each is mirrored, repeated edges sum.
//	Matrix Market  "%%MatrixMarket matrix coordinate real|integer|pattern
//	               general|symmetric", 1-based indices, square only.
//	features       CSV, one numeric row per node.
//	categories     one name per line.
//	labels         CSV with header "node,cluster".
//
// Every reader returns ErrMalformedLine (with the line number in the message)
// on the first bad record; nothing is partially returned.
package graphio
