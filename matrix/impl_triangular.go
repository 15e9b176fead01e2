// SPDX-License-Identifier: MIT

// Package matrix - triangular solves.

package matrix

import "github.com/cockroachdb/errors"

const opSolveUpper = "SolveUpperInPlace"

// SolveUpperInPlace solves U·X = B by back-substitution, where U is the n×n
// leading upper triangle of u and B is the first n rows of b (all columns).
// The solution overwrites those rows of b.
// MAIN DESCRIPTION:
//   - In-place triangular-system back-substitution over a square sub-block.
//
// Implementation:
//   - Stage 1: validate n ≤ min(u.Rows, u.Cols) and n ≤ b.Rows.
//   - Stage 2: for each right-hand column, i = n−1 … 0:
//     x_i = (b_i − Σ_{p>i} u_ip·x_p) / u_ii.
//
// Behavior highlights:
//   - Entries of u below the diagonal are never read, so u may carry packed
//     data there (e.g. Householder tails).
//   - Rows n.. of b are untouched.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when n exceeds either operand.
//   - ErrSingular on an exactly zero diagonal entry (b is partially updated).
//
// Complexity:
//   - Time O(n²·b.Cols), Space O(1).
func SolveUpperInPlace(u *Dense, n int, b *Dense) error {
	if u == nil || b == nil {
		return errors.Wrap(ErrNilMatrix, opSolveUpper)
	}
	if n < 0 || n > u.r || n > u.c || n > b.r {
		return errors.Wrapf(ErrDimensionMismatch, "%s(n=%d)", opSolveUpper, n)
	}
	us, bs := u.c, b.c
	var i, p, j int
	var diag, s float64
	for j = 0; j < bs; j++ {
		for i = n - 1; i >= 0; i-- {
			diag = u.data[i*us+i]
			if diag == ZeroPivot {
				return errors.Wrapf(ErrSingular, "%s: zero diagonal at %d", opSolveUpper, i)
			}
			s = b.data[i*bs+j]
			for p = i + 1; p < n; p++ {
				s -= u.data[i*us+p] * b.data[p*bs+j]
			}
			b.data[i*bs+j] = s / diag
		}
	}

	return nil
}
