// SPDX-License-Identifier: MIT

// Package align - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold the (len(x)+1)×(len(y)+1) DP table in one flat buffer, offset i*cols + j.
//   - Public accessors never panic and never hand out the backing buffer.
//   - Matrices are immutable once Fill returns; the traceback only reads.
//
// Complexity quicksheet:
//   - Fill: O(r*c); At: O(1); Row: O(c); Max: O(r*c); ToRows: O(r*c).

package align

import (
	"fmt"
	"strconv"
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt        = "Matrix.At"
	ctxFromRows  = "MatrixFromRows"
	ctxFill      = "Fill"
	ctxFillScore = "FillScore"
	ctxTrace     = "Traceback"
)

// formatting literals
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is the dense alignment score table. Cell (i,j) holds the optimal
// score between the length-i prefix of X and the length-j prefix of Y.
type Matrix struct {
	r, c int   // rows = len(x)+1, cols = len(y)+1
	data []int // row-major, len == r*c
	mode Mode  // recurrence used to fill the table
}

// newMatrix allocates a zeroed r×c matrix. Callers guarantee r,c >= 1.
func newMatrix(r, c int, mode Mode) *Matrix {
	return &Matrix{r: r, c: c, data: make([]int, r*c), mode: mode}
}

// MatrixFromRows copies literal rows into a Matrix, e.g. to trace back a
// table computed elsewhere.
func MatrixFromRows(rows [][]int, mode Mode) (*Matrix, error) {
	if err := mode.validate(ctxFromRows); err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, alignErrorf(ctxFromRows, "empty", ErrBadShape)
	}
	c := len(rows[0])
	m := newMatrix(len(rows), c, mode)
	for i, row := range rows {
		if len(row) != c {
			return nil, alignErrorf(ctxFromRows, fmt.Sprintf("row %d has %d cols, want %d", i, len(row), c), ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns len(x)+1.
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns len(y)+1.
func (m *Matrix) Cols() int {
	return m.c
}

// Mode returns the recurrence the matrix was filled with.
func (m *Matrix) Mode() Mode {
	return m.mode
}

// at is the unchecked accessor used by the kernels.
func (m *Matrix) at(i, j int) int {
	return m.data[i*m.c+j]
}

// At returns cell (i,j) or ErrOutOfRange.
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, alignErrorf(ctxAt, fmt.Sprintf("%d,%d", i, j), ErrOutOfRange)
	}

	return m.at(i, j), nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix) Row(i int) []int {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// ToRows returns a deep copy as nested slices.
func (m *Matrix) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Max returns the maximum cell value and its coordinates. Ties resolve to
// the first occurrence in row-major order.
func (m *Matrix) Max() (value, i, j int) {
	best := 0
	for off := 1; off < len(m.data); off++ {
		if m.data[off] > m.data[best] {
			best = off
		}
	}

	return m.data[best], best / m.c, best % m.c
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
