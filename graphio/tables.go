// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/matrix"
)

// newCSVReader returns a reader that skips '#' comments and enforces a
// constant field count.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// readRecord wraps csv parse failures as ErrMalformedLine.
func readRecord(op string, cr *csv.Reader) ([]string, error) {
	rec, err := cr.Read()
	if err == nil || errors.Is(err, io.EOF) {
		return rec, err
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return nil, fmt.Errorf("%s: line %d: %v: %w", op, pe.Line, pe.Err, ErrMalformedLine)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// ReadFeatures parses an N×C numeric CSV matrix (no header).
func ReadFeatures(r io.Reader) (*matrix.Dense, error) {
	const op = "ReadFeatures"
	cr := newCSVReader(r)

	var data []float64
	var rows, cols int
	for {
		rec, err := readRecord(op, cr)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if rows == 0 {
			cols = len(rec)
		}
		for _, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, lineErrorf(op, line, "value %q", s)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyGraph)
	}

	f, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

// ReadCategories reads one category name per line, skipping blanks and
// '#' comments.
func ReadCategories(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadCategories: %w", err)
	}

	return names, nil
}

// WriteLabels writes "node,cluster" rows with a header. nil ids name the
// nodes by index.
func WriteLabels(w io.Writer, ids []string, z []int) error {
	if ids != nil && len(ids) != len(z) {
		return fmt.Errorf("WriteLabels: %d ids, %d labels: %w", len(ids), len(z), ErrLengthMismatch)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{labelHeaderNode, labelHeaderCluster}); err != nil {
		return fmt.Errorf("WriteLabels: header: %w", err)
	}
	row := make([]string, 2)
	for i, label := range z {
		row[0] = strconv.Itoa(i)
		if ids != nil {
			row[0] = ids[i]
		}
		row[1] = strconv.Itoa(label)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteLabels: row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteLabels: %w", err)
	}

	return nil
}

// ReadLabels reads a "node,cluster" CSV for the nodes of g. The header row
// is optional. Every node of g must be labelled exactly once.
func ReadLabels(r io.Reader, g *Graph) ([]int, error) {
	const op = "ReadLabels"
	if g == nil {
		return nil, fmt.Errorf("%s: %w", op, matrix.ErrNilMatrix)
	}
	cr := newCSVReader(r)
	cr.FieldsPerRecord = 2

	z := make([]int, g.N())
	seen := make([]bool, g.N())
	first := true
	for {
		rec, err := readRecord(op, cr)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if rec[0] == labelHeaderNode {
				continue
			}
		}

		i, ok := g.Index[rec[0]]
		if !ok {
			return nil, fmt.Errorf("%s: line %d: %q: %w", op, line, rec[0], ErrUnknownNode)
		}
		if seen[i] {
			return nil, lineErrorf(op, line, "node %q labelled twice", rec[0])
		}
		label, err := strconv.Atoi(rec[1])
		if err != nil || label < 0 {
			return nil, lineErrorf(op, line, "cluster %q", rec[1])
		}
		z[i], seen[i] = label, true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%s: node %q: %w", op, g.IDs[i], ErrMissingLabel)
		}
	}

	return z, nil
}
