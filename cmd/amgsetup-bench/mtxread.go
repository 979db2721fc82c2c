package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amg-kernels/classical/csr"
)

// mtxEntry is one coordinate-format record read from a Matrix Market file.
type mtxEntry struct {
	row, col int
	val      float64
}

// readMatrixMarket parses a Matrix Market coordinate-format file into a
// csr.Matrix. A "symmetric" header mirrors every off-diagonal entry; any
// other symmetry label is read as general. The header's field type is not
// checked, and an entry line without a value (pattern format) reads as 1.0.
// The array format is rejected. This is the CLI's I/O boundary, not part of
// the kernel surface §6 excludes file I/O from.
func readMatrixMarket(path string) (*csr.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	header := strings.Fields(strings.ToLower(scanner.Text()))
	if len(header) < 5 || header[0] != "%%matrixmarket" || header[1] != "matrix" || header[2] != "coordinate" {
		return nil, fmt.Errorf("%s: unsupported header %q", path, scanner.Text())
	}
	symmetric := header[4] == "symmetric"

	rows, nnzHint, err := scanSizeLine(scanner, path)
	if err != nil {
		return nil, err
	}

	entries := make([]mtxEntry, 0, nnzHint)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: malformed entry %q", path, line)
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s: entry row: %w", path, err)
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s: entry col: %w", path, err)
		}

		val := 1.0
		if len(fields) >= 3 {
			val, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: entry val: %w", path, err)
			}
		}

		entries = append(entries, mtxEntry{row: r - 1, col: c - 1, val: val})
		if symmetric && r != c {
			entries = append(entries, mtxEntry{row: c - 1, col: r - 1, val: val})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entriesToCSR(rows, entries), nil
}

// scanSizeLine reads past comment lines to the Matrix Market size line
// (rows cols nnz), returning rows and nnz as a capacity hint.
func scanSizeLine(scanner *bufio.Scanner, path string) (rows, nnz int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, 0, fmt.Errorf("%s: malformed size line %q", path, line)
		}

		rows, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("%s: size line: %w", path, err)
		}
		cols, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%s: size line: %w", path, err)
		}
		if rows != cols {
			return 0, 0, fmt.Errorf("%s: matrix must be square (%dx%d)", path, rows, cols)
		}
		nnz, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, fmt.Errorf("%s: size line: %w", path, err)
		}

		return rows, nnz, nil
	}

	return 0, 0, fmt.Errorf("%s: missing size line", path)
}

// entriesToCSR converts an unordered coordinate list into CSR via a
// counting pass followed by a fill pass, the same two-pass shape every
// pass-1/pass-2 kernel in this repo uses for its own row-pointer sizing.
func entriesToCSR(rows int, entries []mtxEntry) *csr.Matrix {
	rowCount := make([]int, rows)
	for _, e := range entries {
		rowCount[e.row]++
	}

	m := csr.NewMatrix(rows, len(entries))
	for i := 0; i < rows; i++ {
		m.RowPtr[i+1] = m.RowPtr[i] + rowCount[i]
	}

	next := append([]int(nil), m.RowPtr[:rows]...)
	for _, e := range entries {
		pos := next[e.row]
		m.ColIdx[pos] = e.col
		m.Val[pos] = e.val
		next[e.row]++
	}

	return m
}
