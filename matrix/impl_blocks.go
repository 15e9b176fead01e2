// SPDX-License-Identifier: MIT

// Package matrix - in-place block operations on Dense.
//
// Purpose:
//   - Row/column swaps over explicit ranges (pivoting bookkeeping).
//   - Column-segment extraction into an owned buffer, so a kernel can read a
//     stored vector while it mutates other columns of the same matrix.
//
// Determinism:
//   - Fixed loop orders; no allocation unless a destination buffer is too short.

package matrix

import "github.com/cockroachdb/errors"

const (
	opSwapRows   = "SwapRowsRange"
	opSwapCols   = "SwapCols"
	opColSegment = "ColSegment"
)

// SwapRowsRange exchanges rows i and j over the columns c0..Cols()-1.
// Columns left of c0 are untouched.
//
// Errors:
//   - ErrOutOfRange when i, j or c0 is outside the matrix (c0 == Cols() is a legal empty range).
//
// Complexity:
//   - Time O(Cols()-c0), Space O(1).
func (m *Dense) SwapRowsRange(i, j, c0 int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r || c0 < 0 || c0 > m.c {
		return errors.Wrapf(ErrOutOfRange, "%s(%d,%d,%d)", opSwapRows, i, j, c0)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for col := c0; col < m.c; col++ {
		m.data[bi+col], m.data[bj+col] = m.data[bj+col], m.data[bi+col]
	}

	return nil
}

// SwapRows exchanges two full rows.
func (m *Dense) SwapRows(i, j int) error { return m.SwapRowsRange(i, j, 0) }

// SwapCols exchanges full columns i and j.
//
// Errors:
//   - ErrOutOfRange when i or j is outside [0, Cols()).
//
// Complexity:
//   - Time O(Rows()), Space O(1).
func (m *Dense) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return errors.Wrapf(ErrOutOfRange, "%s(%d,%d)", opSwapCols, i, j)
	}
	if i == j {
		return nil
	}
	var base int
	for row := 0; row < m.r; row++ {
		base = row * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// ColSegment copies rows r0..r1-1 of column col into dst and returns it.
// dst is reused when its capacity suffices; otherwise a new slice is allocated.
//
// Errors:
//   - ErrOutOfRange when col is invalid or the row range is not inside [0, Rows()].
//
// Complexity:
//   - Time O(r1-r0), Space O(r1-r0) only when dst is too short.
//
// AI-Hints:
//   - Pass a scratch slice owned by the caller across loop iterations to stay allocation-free.
func (m *Dense) ColSegment(col, r0, r1 int, dst []float64) ([]float64, error) {
	if col < 0 || col >= m.c || r0 < 0 || r1 < r0 || r1 > m.r {
		return nil, errors.Wrapf(ErrOutOfRange, "%s(%d,%d,%d)", opColSegment, col, r0, r1)
	}
	n := r1 - r0
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		dst[i] = m.data[(r0+i)*m.c+col]
	}

	return dst, nil
}
