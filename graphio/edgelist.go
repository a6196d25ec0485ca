// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/matrix"
)

const opReadEdgeList = "ReadEdgeList"

// idTable assigns dense indices to string IDs in first-appearance order.
type idTable struct {
	ids   []string
	index map[string]int
}

func newIDTable() *idTable {
	return &idTable{index: make(map[string]int)}
}

func (t *idTable) lookup(id string) int {
	if i, ok := t.index[id]; ok {
		return i
	}
	i := len(t.ids)
	t.ids = append(t.ids, id)
	t.index[id] = i

	return i
}

// ReadEdgeList parses an undirected weighted edge list.
//
// Implementation:
//   - Stage 1: register WithNodes IDs.
//   - Stage 2: scan lines; "u" declares a node, "u v" and "u v w" add an edge
//     (mirrored unless u == v). Weights must be finite and non-negative.
//   - Stage 3: assemble CSR; repeated edges sum.
//
// Errors: ErrMalformedLine, ErrEmptyGraph, I/O errors from r.
func ReadEdgeList(r io.Reader, opts ...Option) (*Graph, error) {
	cfg := newReadConfig(opts...)
	ids := newIDTable()
	for _, id := range cfg.nodes {
		ids.lookup(id)
	}

	var entries []matrix.Triplet
	sc := bufio.NewScanner(r)
	var lineNo int
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if isComment(line) {
			continue
		}
		fields := splitFields(line)
		switch len(fields) {
		case 1:
			ids.lookup(fields[0])
		case 2, 3:
			w := cfg.defaultWeight
			if len(fields) == 3 {
				var err error
				if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
					return nil, lineErrorf(opReadEdgeList, lineNo, "weight %q", fields[2])
				}
				if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
					return nil, lineErrorf(opReadEdgeList, lineNo, "weight %v", w)
				}
			}
			u, v := ids.lookup(fields[0]), ids.lookup(fields[1])
			entries = append(entries, matrix.Triplet{Row: u, Col: v, Value: w})
			if u != v {
				entries = append(entries, matrix.Triplet{Row: v, Col: u, Value: w})
			}
		default:
			return nil, lineErrorf(opReadEdgeList, lineNo, "%d fields", len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opReadEdgeList, err)
	}
	if len(ids.ids) == 0 {
		return nil, fmt.Errorf("%s: %w", opReadEdgeList, ErrEmptyGraph)
	}

	a, err := matrix.NewSparse(len(ids.ids), entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadEdgeList, err)
	}

	return &Graph{IDs: ids.ids, Index: ids.index, Adjacency: a}, nil
}

// splitFields splits on commas when present, otherwise on whitespace.
func splitFields(line string) []string {
	if !strings.ContainsRune(line, ',') {
		return strings.Fields(line)
	}
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

// WriteEdgeList writes g in the format ReadEdgeList reads: every node ID on
// its own line first, so indices and isolated nodes survive a round trip,
// then each undirected edge once as "u v w".
func WriteEdgeList(w io.Writer, g *Graph) error {
	if g == nil || g.Adjacency == nil {
		return fmt.Errorf("WriteEdgeList: %w", matrix.ErrNilMatrix)
	}
	if len(g.IDs) != g.Adjacency.Dim() {
		return fmt.Errorf("WriteEdgeList: %d ids for %d nodes: %w", len(g.IDs), g.Adjacency.Dim(), ErrLengthMismatch)
	}

	bw := bufio.NewWriter(w)
	n := g.Adjacency.Dim()
	fmt.Fprintf(bw, "# nodes %d\n", n)
	for _, id := range g.IDs {
		fmt.Fprintln(bw, id)
	}
	fmt.Fprintln(bw, "# edges")
	for i := 0; i < n; i++ {
		g.Adjacency.Do(i, func(j int, v float64) {
			if j < i {
				return
			}
			fmt.Fprintf(bw, "%s %s %s\n", g.IDs[i], g.IDs[j], strconv.FormatFloat(v, 'g', -1, 64))
		})
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteEdgeList: %w", err)
	}

	return nil
}
