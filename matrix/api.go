// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use DenseCopyOf when a decomposition must own its working buffer.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	opDenseCopy   = "DenseCopyOf"
	opUpperTrap   = "UpperTrapezoid"
	opAllClose    = "AllClose"
	opIdentLike   = "IdentityLike"
	opNewIdentity = "NewIdentity"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentLike, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentLike, err)
	}

	return NewIdentity(m.Rows())
}

// DenseCopyOf materializes any Matrix into a fresh, independently owned *Dense.
// MAIN DESCRIPTION:
//   - Copy-on-entry helper for algorithms that mutate a working buffer and
//     must never alias the caller's input.
//
// Implementation:
//   - Stage 1: validate non-nil and positive shape.
//   - Stage 2: *Dense ⇒ flat copy; otherwise i→j At loop.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, At errors from foreign implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The copy inherits the numeric policy of a *Dense source and the
//     package default otherwise.
func DenseCopyOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}
	if err := ValidatePositiveShape(m); err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDenseCopy, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// UpperTrapezoid returns a copy of m with every entry below the main diagonal zeroed.
// For a packed factorization this extracts the triangular factor.
// Complexity: Time O(r*c), Space O(r*c).
func UpperTrapezoid(m Matrix) (*Dense, error) {
	res, err := DenseCopyOf(m)
	if err != nil {
		return nil, errors.Wrap(err, opUpperTrap)
	}
	var i, j int
	for i = 1; i < res.r; i++ {
		for j = 0; j < i && j < res.c; j++ {
			res.data[i*res.c+j] = 0
		}
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected (ErrNaNInf).
//
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			// Negated form so NaN fails the check.
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
