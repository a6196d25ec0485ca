// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrMalformedLine indicates a record that cannot be parsed.
	ErrMalformedLine = errors.New("graphio: malformed line")

	// ErrUnsupportedFormat indicates a Matrix Market variant or file format
	// this package does not read.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrEmptyGraph indicates an input that declares no nodes.
	ErrEmptyGraph = errors.New("graphio: graph has no nodes")

	// ErrUnknownNode indicates a label row for a node the graph does not have.
	ErrUnknownNode = errors.New("graphio: unknown node")

	// ErrMissingLabel indicates a graph node without a label row.
	ErrMissingLabel = errors.New("graphio: node has no label")

	// ErrLengthMismatch indicates ids and labels of different lengths.
	ErrLengthMismatch = errors.New("graphio: length mismatch")
)
