// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/matrix"
)

// Supported graph file formats.
const (
	FormatAuto         = "auto"
	FormatEdgeList     = "edgelist"
	FormatMatrixMarket = "mtx"
)

const (
	matrixMarketBanner = "%%MatrixMarket"
	defaultEdgeWeight  = 1.0
	commentPrefixes    = "#%"
	labelHeaderNode    = "node"
	labelHeaderCluster = "cluster"
)

// Graph is an adjacency matrix with the external IDs of its nodes.
type Graph struct {
	// IDs[i] is the external ID of node i.
	IDs []string
	// Index maps an external ID to its node index.
	Index map[string]int
	// Adjacency is the N×N symmetric weight matrix.
	Adjacency *matrix.Sparse
}

// NewGraph wraps an adjacency matrix. nil ids name the nodes "0".."N-1".
func NewGraph(a *matrix.Sparse, ids []string) (*Graph, error) {
	if a == nil {
		return nil, fmt.Errorf("NewGraph: %w", matrix.ErrNilMatrix)
	}
	n := a.Dim()
	if ids == nil {
		ids = make([]string, n)
		for i := range ids {
			ids[i] = strconv.Itoa(i)
		}
	}
	if len(ids) != n {
		return nil, fmt.Errorf("NewGraph: %d ids for %d nodes: %w", len(ids), n, ErrLengthMismatch)
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("NewGraph: duplicate id %q: %w", id, ErrMalformedLine)
		}
		index[id] = i
	}

	return &Graph{IDs: ids, Index: index, Adjacency: a}, nil
}

// N returns the node count.
func (g *Graph) N() int { return len(g.IDs) }

// LoadGraph reads a graph file. FormatAuto picks Matrix Market for the
// ".mtx" extension and the edge list otherwise. Options apply to edge lists.
func LoadGraph(path, format string, opts ...Option) (*Graph, error) {
	if format == "" || format == FormatAuto {
		format = FormatEdgeList
		if strings.EqualFold(filepath.Ext(path), ".mtx") {
			format = FormatMatrixMarket
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadGraph: %w", err)
	}
	defer f.Close()

	var g *Graph
	switch format {
	case FormatEdgeList:
		g, err = ReadEdgeList(f, opts...)
	case FormatMatrixMarket:
		g, err = ReadMatrixMarket(f)
	default:
		return nil, fmt.Errorf("LoadGraph: format %q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("LoadGraph: %s: %w", path, err)
	}

	return g, nil
}

// isComment reports whether a trimmed line is empty or a comment.
func isComment(line string) bool {
	return line == "" || strings.ContainsRune(commentPrefixes, rune(line[0]))
}

func lineErrorf(op string, line int, format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", op, line, fmt.Sprintf(format, args...), ErrMalformedLine)
}
