// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/matrix"
)

const opReadMatrixMarket = "ReadMatrixMarket"

// ReadMatrixMarket parses a square coordinate Matrix Market file. Node IDs
// are the 1-based indices of the file ("1".."N"). Symmetric files store one
// triangle and are mirrored; general files are read as-is, so an asymmetric
// general file is reported later by the symmetry check, not here.
func ReadMatrixMarket(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	var lineNo int

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", opReadMatrixMarket, err)
		}
		return nil, fmt.Errorf("%s: %w", opReadMatrixMarket, ErrEmptyGraph)
	}
	lineNo++
	pattern, symmetric, err := parseBanner(sc.Text())
	if err != nil {
		return nil, err
	}

	var n, nnz int
	var sized bool
	var entries []matrix.Triplet
	var read int
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if isComment(line) {
			continue
		}
		fields := strings.Fields(line)
		if !sized {
			if n, nnz, err = parseSize(fields, lineNo); err != nil {
				return nil, err
			}
			sized = true
			entries = make([]matrix.Triplet, 0, 2*nnz)
			continue
		}

		e, err := parseEntry(fields, n, pattern, lineNo)
		if err != nil {
			return nil, err
		}
		read++
		if read > nnz {
			return nil, lineErrorf(opReadMatrixMarket, lineNo, "more than %d entries", nnz)
		}
		entries = append(entries, e)
		if symmetric && e.Row != e.Col {
			entries = append(entries, matrix.Triplet{Row: e.Col, Col: e.Row, Value: e.Value})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opReadMatrixMarket, err)
	}
	if !sized || n == 0 {
		return nil, fmt.Errorf("%s: %w", opReadMatrixMarket, ErrEmptyGraph)
	}
	if read != nnz {
		return nil, fmt.Errorf("%s: %d of %d entries: %w", opReadMatrixMarket, read, nnz, ErrMalformedLine)
	}

	a, err := matrix.NewSparse(n, entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadMatrixMarket, err)
	}

	return NewGraph(a, oneBasedIDs(n))
}

// parseBanner returns whether the file is a pattern and whether it is symmetric.
func parseBanner(line string) (pattern, symmetric bool, err error) {
	f := strings.Fields(strings.ToLower(line))
	if len(f) != 5 || f[0] != strings.ToLower(matrixMarketBanner) || f[1] != "matrix" {
		return false, false, lineErrorf(opReadMatrixMarket, 1, "missing %s banner", matrixMarketBanner)
	}
	if f[2] != "coordinate" {
		return false, false, fmt.Errorf("%s: layout %q: %w", opReadMatrixMarket, f[2], ErrUnsupportedFormat)
	}
	switch f[3] {
	case "real", "integer":
	case "pattern":
		pattern = true
	default:
		return false, false, fmt.Errorf("%s: field %q: %w", opReadMatrixMarket, f[3], ErrUnsupportedFormat)
	}
	switch f[4] {
	case "general":
	case "symmetric":
		symmetric = true
	default:
		return false, false, fmt.Errorf("%s: symmetry %q: %w", opReadMatrixMarket, f[4], ErrUnsupportedFormat)
	}

	return pattern, symmetric, nil
}

func parseSize(fields []string, lineNo int) (n, nnz int, err error) {
	if len(fields) != 3 {
		return 0, 0, lineErrorf(opReadMatrixMarket, lineNo, "size line needs 3 fields")
	}
	var dims [3]int
	for i, s := range fields {
		if dims[i], err = strconv.Atoi(s); err != nil || dims[i] < 0 {
			return 0, 0, lineErrorf(opReadMatrixMarket, lineNo, "size %q", s)
		}
	}
	if dims[0] != dims[1] {
		return 0, 0, fmt.Errorf("%s: %dx%d matrix: %w", opReadMatrixMarket, dims[0], dims[1], ErrUnsupportedFormat)
	}

	return dims[0], dims[2], nil
}

func parseEntry(fields []string, n int, pattern bool, lineNo int) (matrix.Triplet, error) {
	want := 3
	if pattern {
		want = 2
	}
	if len(fields) != want {
		return matrix.Triplet{}, lineErrorf(opReadMatrixMarket, lineNo, "%d fields, want %d", len(fields), want)
	}
	i, err1 := strconv.Atoi(fields[0])
	j, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || i < 1 || i > n || j < 1 || j > n {
		return matrix.Triplet{}, lineErrorf(opReadMatrixMarket, lineNo, "index (%s,%s)", fields[0], fields[1])
	}
	v := 1.0
	if !pattern {
		var err error
		if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return matrix.Triplet{}, lineErrorf(opReadMatrixMarket, lineNo, "value %q", fields[2])
		}
	}

	return matrix.Triplet{Row: i - 1, Col: j - 1, Value: v}, nil
}

func oneBasedIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}

	return ids
}
