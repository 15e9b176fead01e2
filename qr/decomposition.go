// SPDX-License-Identifier: MIT

// Package qr - decomposition engine.
//
// Algorithm (per step k = 0 … min(R,C)-1):
//   - Stage 1: find the largest |entry| of the corner rows k.., cols k..
//   - Stage 2: stop when it is negligible against the first pivot; the
//     index k is the rank and every later step is an identity.
//   - Stage 3: swap the pivot row into row k (columns k.. only; the part to
//     the left holds stored reflector tails) and the pivot column into
//     column k (full height).
//   - Stage 4: turn column k, rows k.., into a reflector; store beta on the
//     diagonal and the essential part below it.
//   - Stage 5: apply the reflector to the corner rows k.., cols k+1..
//
// Determinism:
//   - Pivot ties resolve to the first occurrence in column-major order;
//     every loop has a fixed order, so equal inputs give bit-equal records.

package qr

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/myousefi2016/libgeometry/matrix"
)

const opCompute = "qr.Compute"

// FullPivHouseholderQR is a Householder QR decomposition with full pivoting
// and the queries answered from it.
//
// The zero value is an uninitialized decomposition with default options;
// every query on it returns ErrNotInitialized until Compute succeeds.
// An instance is not safe for concurrent use.
type FullPivHouseholderQR struct {
	state state
	rec   *record
	opts  Options
	set   bool // opts resolved
}

// Empty returns an uninitialized decomposition configured by opts.
// Call Compute before any query.
func Empty(opts ...Option) *FullPivHouseholderQR {
	return &FullPivHouseholderQR{opts: gatherOptions(opts...), set: true}
}

// New decomposes a and returns the ready decomposition.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNaNInf
//     (see Compute).
//
// Example:
//
//	dec, err := qr.New(a, qr.WithLogger(logger))
func New(a matrix.Matrix, opts ...Option) (*FullPivHouseholderQR, error) {
	f := Empty(opts...)
	if err := f.Compute(a); err != nil {
		return nil, err
	}

	return f, nil
}

// options returns the resolved options, falling back to the defaults for
// the zero value.
func (f *FullPivHouseholderQR) options() *Options {
	if !f.set {
		f.opts = defaultOptions()
		f.set = true
	}

	return &f.opts
}

// Compute decomposes a and replaces the current record.
// MAIN DESCRIPTION:
//   - Rank-revealing Householder QR with full pivoting: A·Π = Q·R.
//
// Behavior highlights:
//   - a is copied on entry; later writes to a do not reach the record.
//   - The new record is published only after the whole run succeeded. A
//     failing Compute leaves the previous record (or the uninitialized
//     state) untouched.
//   - Rank deficiency is not an error; it shows in Rank().
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - matrix.ErrInvalidDimensions for zero rows or columns.
//   - matrix.ErrNaNInf when the finite-input policy is on and a holds NaN/±Inf.
//
// Complexity:
//   - Time O(R·C·min(R,C)), Space O(R·C).
func (f *FullPivHouseholderQR) Compute(a matrix.Matrix) error {
	o := f.options()
	rec, err := decompose(a, o)
	if err != nil {
		return errors.Wrap(err, opCompute)
	}
	f.rec = rec
	f.state = stateReady
	o.logger.Debug("qr: decomposition complete",
		zap.Int("rows", rec.rows()),
		zap.Int("cols", rec.cols()),
		zap.Int("rank", rec.rank),
		zap.Int("det_pq", rec.detPQ),
	)

	return nil
}

// decompose runs the elimination on a private copy of a and returns the
// complete record.
func decompose(a matrix.Matrix, o *Options) (*record, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := matrix.ValidatePositiveShape(a); err != nil {
		return nil, err
	}
	if o.validateNaNInf {
		if err := matrix.ValidateFinite(a); err != nil {
			return nil, err
		}
	}

	packed, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, err
	}
	rows, cols := packed.Shape()
	size := min(rows, cols)
	hCoeffs := make([]float64, size)
	tracker := newPivotTracker(rows, cols)

	essential := make([]float64, 0, rows)
	work := make([]float64, cols)
	var (
		corner         *matrix.MatrixView
		cornerMax      float64
		pivRow, pivCol int
		tau, beta      float64
	)
	for k := 0; k < size; k++ {
		// Stage 1: pivot search over the bottom-right corner.
		if corner, err = packed.View(k, k, rows-k, cols-k); err != nil {
			return nil, err
		}
		cornerMax, pivRow, pivCol = corner.MaxAbs()
		pivRow += k
		pivCol += k

		// Stage 2: rank detection. Remaining hCoeffs stay 0 and remaining
		// transpositions stay identities.
		if tracker.negligible(k, cornerMax) {
			o.logger.Debug("qr: rank deficiency detected",
				zap.Int("step", k),
				zap.Float64("corner_max", cornerMax),
				zap.Float64("reference_max", tracker.biggest),
			)
			break
		}

		// Stage 3: pivoting swaps.
		tracker.record(k, pivRow, pivCol)
		if err = packed.SwapRowsRange(k, pivRow, k); err != nil {
			return nil, err
		}
		if err = packed.SwapCols(k, pivCol); err != nil {
			return nil, err
		}

		// Stage 4: reflector for column k.
		if tau, beta, err = packed.MakeHouseholderCol(k, k); err != nil {
			return nil, err
		}
		hCoeffs[k] = tau
		if err = packed.Set(k, k, beta); err != nil {
			return nil, err
		}

		// Stage 5: update the trailing corner.
		if essential, err = packed.ColSegment(k, k+1, rows, essential); err != nil {
			return nil, err
		}
		if err = packed.ApplyHouseholderLeft(k, k+1, cols, essential, tau, work); err != nil {
			return nil, err
		}
	}

	perm, err := tracker.colsPermutation(cols)
	if err != nil {
		return nil, err
	}

	return &record{
		qr:                 packed,
		hCoeffs:            hCoeffs,
		rowsTranspositions: tracker.rowsTranspositions,
		colsPermutation:    perm,
		rank:               tracker.rank,
		detPQ:              tracker.detPQ(),
		precision:          tracker.precision,
	}, nil
}

// ready returns the current record or ErrNotInitialized.
func (f *FullPivHouseholderQR) ready(op string) (*record, error) {
	if f == nil || f.state != stateReady || f.rec == nil {
		return nil, errors.Wrap(ErrNotInitialized, op)
	}

	return f.rec, nil
}
