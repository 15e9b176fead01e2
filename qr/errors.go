// SPDX-License-Identifier: MIT

// Package qr: sentinel errors.
//
// Shape and numeric-policy failures reuse the matrix sentinels
// (matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch, matrix.ErrNaNInf). The values below cover
// the outcomes that only a decomposition can report. Rank deficiency is
// never an error.

package qr

import "github.com/cockroachdb/errors"

var (
	// ErrNotInitialized is returned by every query on a decomposition that
	// has not completed a successful Compute.
	ErrNotInitialized = errors.New("qr: decomposition is not initialized")

	// ErrInconsistent is returned by Solve when the right-hand side has a
	// non-negligible component outside the column space of A.
	ErrInconsistent = errors.New("qr: linear system has no exact solution")

	// ErrNotInvertible is returned by Inverse for a rank-deficient square matrix.
	ErrNotInvertible = errors.New("qr: matrix is not invertible")
)
