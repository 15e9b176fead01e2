// SPDX-License-Identifier: MIT

// Package qr - linear solve A·X = B over a completed decomposition.

package qr

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/myousefi2016/libgeometry/matrix"
)

const (
	opSolve    = "qr.Solve"
	opSolveVec = "qr.SolveVec"
)

// Solve returns X (C×k) with A·X = B for a right-hand side B (R×k).
// MAIN DESCRIPTION:
//   - Exact solve when the system is consistent, using the pivoted factors.
//
// Implementation:
//   - Stage 1: rank 0 ⇒ X = 0.
//   - Stage 2: c = copy(B); for k < rank: swap rows k and rowsTranspositions[k],
//     then apply reflector k to rows k.. (c becomes Qᵀ·B).
//   - Stage 3: when rank < R, the rows rank.. of c are the residual; it must
//     be negligible against the rows ..rank at precision Epsilon·min(R,C),
//     otherwise the system is inconsistent.
//   - Stage 4: back-substitute the leading rank×rank triangle of R.
//   - Stage 5: scatter row i of the solution to row Π[i]; rows Π[rank..]
//     stay zero (free variables set to zero).
//
// Behavior highlights:
//   - For a rank-deficient consistent system the result is a particular
//     solution, not in general the minimum-norm one.
//   - Neither the decomposition nor B is mutated.
//
// Errors:
//   - ErrNotInitialized.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions for a bad B.
//   - matrix.ErrDimensionMismatch when B.Rows() != R.
//   - ErrInconsistent (with a hint carrying both magnitudes) when no exact
//     solution exists. No partial result is returned.
//
// Complexity:
//   - Time O(rank·(R+rank)·k + R·k), Space O(R·k + C·k).
func (f *FullPivHouseholderQR) Solve(b matrix.Matrix) (*matrix.Dense, error) {
	rec, err := f.ready(opSolve)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateNotNil(b); err != nil {
		return nil, errors.Wrap(err, opSolve)
	}
	if err = matrix.ValidatePositiveShape(b); err != nil {
		return nil, errors.Wrap(err, opSolve)
	}
	rows, cols := rec.rows(), rec.cols()
	if b.Rows() != rows {
		return nil, errors.Wrapf(matrix.ErrDimensionMismatch, "%s: rhs has %d rows, want %d", opSolve, b.Rows(), rows)
	}
	nrhs := b.Cols()

	dst, err := matrix.NewZeros(cols, nrhs)
	if err != nil {
		return nil, errors.Wrap(err, opSolve)
	}

	// Stage 1: nothing to solve against.
	if rec.rank == 0 {
		return dst, nil
	}

	// Stage 2: c = Qᵀ·B restricted to the first rank reflectors.
	c, err := matrix.DenseCopyOf(b)
	if err != nil {
		return nil, errors.Wrap(err, opSolve)
	}
	essential := make([]float64, 0, rows)
	work := make([]float64, nrhs)
	for k := 0; k < rec.rank; k++ {
		if err = c.SwapRows(k, rec.rowsTranspositions[k]); err != nil {
			return nil, errors.Wrap(err, opSolve)
		}
		if essential, err = rec.qr.ColSegment(k, k+1, rows, essential); err != nil {
			return nil, errors.Wrap(err, opSolve)
		}
		if err = c.ApplyHouseholderLeft(k, 0, nrhs, essential, rec.hCoeffs[k], work); err != nil {
			return nil, errors.Wrap(err, opSolve)
		}
	}

	// Stage 3: consistency check for non-surjective systems.
	if rec.rank != rows {
		if err = checkResidual(c, rec.rank, rows, cols, nrhs, f.options().logger); err != nil {
			return nil, err
		}
	}

	// Stage 4: R[0:rank,0:rank] · y = c[0:rank].
	if err = matrix.SolveUpperInPlace(rec.qr, rec.rank, c); err != nil {
		return nil, errors.Wrap(err, opSolve)
	}

	// Stage 5: undo the column permutation.
	var v float64
	for i := 0; i < rec.rank; i++ {
		for j := 0; j < nrhs; j++ {
			if v, err = c.At(i, j); err != nil {
				return nil, errors.Wrap(err, opSolve)
			}
			if err = dst.Set(rec.colsPermutation[i], j, v); err != nil {
				return nil, errors.Wrap(err, opSolve)
			}
		}
	}

	return dst, nil
}

// checkResidual compares the largest |entry| of rows rank..rows of c (the
// part of Qᵀ·B that R cannot reach) with the largest |entry| of rows
// 0..rank. The precision is recomputed from the shape, which gives the same
// value the decomposition used.
func checkResidual(c *matrix.Dense, rank, rows, cols, nrhs int, logger *zap.Logger) error {
	upper, err := c.View(0, 0, rank, nrhs)
	if err != nil {
		return errors.Wrap(err, opSolve)
	}
	lower, err := c.View(rank, 0, rows-rank, nrhs)
	if err != nil {
		return errors.Wrap(err, opSolve)
	}
	biggestUpper, _, _ := upper.MaxAbs()
	biggestLower, _, _ := lower.MaxAbs()
	if IsMuchSmallerThan(biggestLower, biggestUpper, Threshold(min(rows, cols))) {
		return nil
	}
	logger.Debug("qr: inconsistent system",
		zap.Int("rank", rank),
		zap.Float64("residual_max", biggestLower),
		zap.Float64("reachable_max", biggestUpper),
	)

	return errors.WithHintf(
		errors.Wrapf(ErrInconsistent, "%s", opSolve),
		"residual magnitude %g is not negligible against %g; the right-hand side is outside the column space",
		biggestLower, biggestUpper,
	)
}

// SolveVec solves A·x = b for a single right-hand side of length R and
// returns x of length C. Semantics and errors are those of Solve; a nil or
// empty b is reported as matrix.ErrNilMatrix / matrix.ErrInvalidDimensions.
func (f *FullPivHouseholderQR) SolveVec(b []float64) ([]float64, error) {
	if b == nil {
		return nil, errors.Wrap(matrix.ErrNilMatrix, opSolveVec)
	}
	if len(b) == 0 {
		return nil, errors.Wrap(matrix.ErrInvalidDimensions, opSolveVec)
	}
	rhs, err := matrix.NewDenseFrom(len(b), 1, b)
	if err != nil {
		return nil, errors.Wrap(err, opSolveVec)
	}
	x, err := f.Solve(rhs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, x.Rows())
	for i := range out {
		if out[i], err = x.At(i, 0); err != nil {
			return nil, errors.Wrap(err, opSolveVec)
		}
	}

	return out, nil
}
