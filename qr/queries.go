// SPDX-License-Identifier: MIT

// Package qr - read-only queries over a completed decomposition.
//
// Every method checks the facade state first and returns ErrNotInitialized
// (wrapped with the method name) when no Compute has succeeded. Accessors
// that expose slices or matrices return copies.

package qr

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/myousefi2016/libgeometry/matrix"
)

const (
	opRank        = "qr.Rank"
	opKernel      = "qr.DimensionOfKernel"
	opInjective   = "qr.IsInjective"
	opSurjective  = "qr.IsSurjective"
	opInvertible  = "qr.IsInvertible"
	opAbsDet      = "qr.AbsDeterminant"
	opLogAbsDet   = "qr.LogAbsDeterminant"
	opDeterminant = "qr.Determinant"
	opMatrixQ     = "qr.MatrixQ"
	opMatrixQR    = "qr.MatrixQR"
	opMatrixR     = "qr.MatrixR"
	opHCoeffs     = "qr.HCoeffs"
	opRowsTransp  = "qr.RowsTranspositions"
	opColsPerm    = "qr.ColsPermutation"
	opShape       = "qr.Shape"
	opThreshold   = "qr.Threshold"
	opInverse     = "qr.Inverse"
)

// Rank returns the numerical rank detected by the decomposition.
func (f *FullPivHouseholderQR) Rank() (int, error) {
	rec, err := f.ready(opRank)
	if err != nil {
		return 0, err
	}

	return rec.rank, nil
}

// DimensionOfKernel returns cols − rank.
func (f *FullPivHouseholderQR) DimensionOfKernel() (int, error) {
	rec, err := f.ready(opKernel)
	if err != nil {
		return 0, err
	}

	return rec.cols() - rec.rank, nil
}

// IsInjective reports rank == cols (trivial kernel).
func (f *FullPivHouseholderQR) IsInjective() (bool, error) {
	rec, err := f.ready(opInjective)
	if err != nil {
		return false, err
	}

	return rec.rank == rec.cols(), nil
}

// IsSurjective reports rank == rows (every right-hand side is reachable).
func (f *FullPivHouseholderQR) IsSurjective() (bool, error) {
	rec, err := f.ready(opSurjective)
	if err != nil {
		return false, err
	}

	return rec.rank == rec.rows(), nil
}

// IsInvertible reports IsInjective && IsSurjective.
// A non-square matrix is never invertible.
func (f *FullPivHouseholderQR) IsInvertible() (bool, error) {
	rec, err := f.ready(opInvertible)
	if err != nil {
		return false, err
	}

	return rec.rank == rec.cols() && rec.rank == rec.rows(), nil
}

// squareRecord returns the record of a square decomposition.
func (f *FullPivHouseholderQR) squareRecord(op string) (*record, error) {
	rec, err := f.ready(op)
	if err != nil {
		return nil, err
	}
	if rec.rows() != rec.cols() {
		return nil, errors.Wrapf(matrix.ErrNonSquare, "%s(%dx%d)", op, rec.rows(), rec.cols())
	}

	return rec, nil
}

// diagonal returns R_kk for k in [0, size).
func (r *record) diagonal() ([]float64, error) {
	d := make([]float64, r.size())
	var err error
	for k := range d {
		if d[k], err = r.qr.At(k, k); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// AbsDeterminant returns |det(A)| = Π |R_kk|. Square matrices only.
//
// Errors:
//   - ErrNotInitialized, matrix.ErrNonSquare.
//
// Notes:
//   - The product may overflow or underflow; prefer LogAbsDeterminant for
//     large or badly scaled matrices.
func (f *FullPivHouseholderQR) AbsDeterminant() (float64, error) {
	rec, err := f.squareRecord(opAbsDet)
	if err != nil {
		return 0, err
	}
	diag, err := rec.diagonal()
	if err != nil {
		return 0, errors.Wrap(err, opAbsDet)
	}
	res := 1.0
	for _, v := range diag {
		res *= v
	}

	return math.Abs(res), nil
}

// LogAbsDeterminant returns ln|det(A)| = Σ ln|R_kk|. Square matrices only.
// A singular matrix yields −Inf.
func (f *FullPivHouseholderQR) LogAbsDeterminant() (float64, error) {
	rec, err := f.squareRecord(opLogAbsDet)
	if err != nil {
		return 0, err
	}
	diag, err := rec.diagonal()
	if err != nil {
		return 0, errors.Wrap(err, opLogAbsDet)
	}
	var sum float64
	for _, v := range diag {
		sum += math.Log(math.Abs(v))
	}

	return sum, nil
}

// Determinant returns the signed determinant of A. Square matrices only.
//
// Implementation:
//   - det(A) = detPQ · Π det(H_k) · Π R_kk, with det(H_k) = −1 for every
//     non-identity reflector (tau_k ≠ 0) and +1 otherwise.
func (f *FullPivHouseholderQR) Determinant() (float64, error) {
	rec, err := f.squareRecord(opDeterminant)
	if err != nil {
		return 0, err
	}
	diag, err := rec.diagonal()
	if err != nil {
		return 0, errors.Wrap(err, opDeterminant)
	}
	res := float64(rec.detPQ)
	for k, v := range diag {
		if rec.hCoeffs[k] != 0 {
			res = -res
		}
		res *= v
	}

	return res, nil
}

// MatrixQ materializes the R×R orthogonal factor Q, row pivoting included,
// such that Q·R = A·Π.
// MAIN DESCRIPTION:
//   - Start from the identity and, for k = size−1 … 0, apply reflector k to
//     the block rows k.., cols k.., then swap rows k and rowsTranspositions[k].
//
// Complexity:
//   - Time O(R²·min(R,C)), Space O(R²).
func (f *FullPivHouseholderQR) MatrixQ() (*matrix.Dense, error) {
	rec, err := f.ready(opMatrixQ)
	if err != nil {
		return nil, err
	}
	rows := rec.rows()
	res, err := matrix.NewIdentity(rows)
	if err != nil {
		return nil, errors.Wrap(err, opMatrixQ)
	}
	essential := make([]float64, 0, rows)
	work := make([]float64, rows)
	for k := rec.size() - 1; k >= 0; k-- {
		if rec.hCoeffs[k] != 0 {
			if essential, err = rec.qr.ColSegment(k, k+1, rows, essential); err != nil {
				return nil, errors.Wrap(err, opMatrixQ)
			}
			if err = res.ApplyHouseholderLeft(k, k, rows, essential, rec.hCoeffs[k], work); err != nil {
				return nil, errors.Wrap(err, opMatrixQ)
			}
		}
		if err = res.SwapRows(k, rec.rowsTranspositions[k]); err != nil {
			return nil, errors.Wrap(err, opMatrixQ)
		}
	}

	return res, nil
}

// MatrixQR returns a copy of the packed working matrix: R on and above the
// diagonal, reflector tails below it.
func (f *FullPivHouseholderQR) MatrixQR() (*matrix.Dense, error) {
	rec, err := f.ready(opMatrixQR)
	if err != nil {
		return nil, err
	}

	return matrix.DenseCopyOf(rec.qr)
}

// MatrixR returns the R×C upper-trapezoidal factor R (zeros below the diagonal).
func (f *FullPivHouseholderQR) MatrixR() (*matrix.Dense, error) {
	rec, err := f.ready(opMatrixR)
	if err != nil {
		return nil, err
	}

	return matrix.UpperTrapezoid(rec.qr)
}

// HCoeffs returns a copy of the reflector coefficients tau_k (len min(R,C)).
func (f *FullPivHouseholderQR) HCoeffs() ([]float64, error) {
	rec, err := f.ready(opHCoeffs)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), rec.hCoeffs...), nil
}

// RowsTranspositions returns a copy of the row transpositions (len R):
// step k swapped rows k and t[k].
func (f *FullPivHouseholderQR) RowsTranspositions() ([]int, error) {
	rec, err := f.ready(opRowsTransp)
	if err != nil {
		return nil, err
	}

	return append([]int(nil), rec.rowsTranspositions...), nil
}

// ColsPermutation returns a copy of Π as a direct index mapping: column k of
// A·Π is column p[k] of A.
func (f *FullPivHouseholderQR) ColsPermutation() (Permutation, error) {
	rec, err := f.ready(opColsPerm)
	if err != nil {
		return nil, err
	}

	return rec.colsPermutation.Clone(), nil
}

// Shape returns the dimensions of the decomposed matrix.
func (f *FullPivHouseholderQR) Shape() (rows, cols int, err error) {
	rec, err := f.ready(opShape)
	if err != nil {
		return 0, 0, err
	}

	return rec.rows(), rec.cols(), nil
}

// Threshold returns the precision the decomposition used for rank detection.
func (f *FullPivHouseholderQR) Threshold() (float64, error) {
	rec, err := f.ready(opThreshold)
	if err != nil {
		return 0, err
	}

	return rec.precision, nil
}

// Inverse returns A⁻¹ for an invertible square A, computed as Solve(I).
//
// Errors:
//   - ErrNotInitialized, matrix.ErrNonSquare, ErrNotInvertible.
func (f *FullPivHouseholderQR) Inverse() (*matrix.Dense, error) {
	rec, err := f.squareRecord(opInverse)
	if err != nil {
		return nil, err
	}
	if rec.rank != rec.rows() {
		return nil, errors.Wrapf(ErrNotInvertible, "%s: rank %d < %d", opInverse, rec.rank, rec.rows())
	}
	id, err := matrix.IdentityLike(rec.qr)
	if err != nil {
		return nil, errors.Wrap(err, opInverse)
	}

	return f.Solve(id)
}
