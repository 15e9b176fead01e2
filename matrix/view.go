// SPDX-License-Identifier: MIT

// Package matrix - MatrixView: index-bounded windows over a Dense.
//
// Purpose:
//   - Express "corner" and "block" sub-ranges (top-left, bottom-right, ...)
//     as explicit offsets instead of aliased sub-matrices.
//   - Host block reductions (MaxAbs) used by pivoting decompositions.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// MatrixView is a non-owning window into a Dense (shared storage).
// Not implementing Matrix interface to avoid accidental copies in ops.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
// Complexity: O(1).
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
// Complexity: O(1).
func (v *MatrixView) Cols() int { return v.c }

// Offset returns the top-left coordinates of the view inside its base.
func (v *MatrixView) Offset() (row, col int) { return v.r0, v.c0 }

// At reads element (i,j) in the view or returns ErrOutOfRange.
// Complexity: Time O(1), Space O(1).
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, errors.Wrapf(ErrOutOfRange, "MatrixView.At(%d,%d)", i, j)
	}

	// Translate to base coordinates and load directly from the flat buffer.
	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
// Complexity: Time O(1), Space O(1).
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return errors.Wrapf(ErrOutOfRange, "MatrixView.Set(%d,%d)", i, j)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return errors.Wrapf(ErrNaNInf, "MatrixView.Set(%d,%d)", i, j)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val // write through

	return nil
}

// MaxAbs returns the largest absolute value inside the view and its local
// position (row, col relative to the view's top-left corner).
// MAIN DESCRIPTION:
//   - The pivot search of full-pivoting decompositions: "largest-magnitude
//     element and its position" over a trailing block.
//
// Implementation:
//   - Stage 1: seed with |v(0,0)|.
//   - Stage 2: scan column by column, row by row inside a column; replace the
//     candidate only on a strictly greater magnitude.
//
// Behavior highlights:
//   - Ties resolve to the first occurrence in column-major order, so the
//     pivot choice is stable for matrices with repeated magnitudes.
//   - NaN entries never win the comparison.
//
// Returns:
//   - (0, -1, -1) for a zero-area view.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (v *MatrixView) MaxAbs() (value float64, row, col int) {
	if v.r == 0 || v.c == 0 {
		return 0, -1, -1
	}
	stride := v.base.c
	data := v.base.data
	value = math.Abs(data[v.r0*stride+v.c0])
	var i, j int
	var a float64
	for j = 0; j < v.c; j++ {
		for i = 0; i < v.r; i++ {
			a = math.Abs(data[(v.r0+i)*stride+v.c0+j])
			if a > value {
				value, row, col = a, i, j
			}
		}
	}

	return value, row, col
}
