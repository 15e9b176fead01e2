// SPDX-License-Identifier: MIT

// Package matrix - Householder reflector kernels.
//
// Convention (shared by every caller):
//
//	H = I − tau · v · vᵀ,   v = [1; essential]
//
// For a column segment x = [x0; tail], MakeHouseholderCol chooses tau and
// essential so that H·x = [beta; 0; …; 0]. The reflector is stored compactly:
// essential overwrites the tail of the segment in place, tau and beta are
// returned to the caller. When the tail is exactly zero the reflector is the
// identity (tau = 0, beta = x0).
//
// Norms are scaled (blas64.Nrm2, math.Hypot), so entries anywhere in the
// finite float64 range neither overflow nor underflow to a zero tail.
//
// Determinism:
//   - Fixed row-major loop orders; results are bit-identical across runs.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/blas/blas64"
)

const (
	opMakeHouseholder  = "MakeHouseholderCol"
	opApplyHouseholder = "ApplyHouseholderLeft"
)

// MakeHouseholderCol turns the column segment (rows r0..Rows()-1 of column
// col) into a Householder reflector, in place.
// MAIN DESCRIPTION:
//   - Householder vectorization of a column segment producing a coefficient
//     (tau) and the leading value of the reflected vector (beta).
//
// Implementation:
//   - Stage 1: tailNorm = ‖tail‖₂, scaled (no squares are formed).
//   - Stage 2: tailNorm == 0 ⇒ identity reflector (tau=0, beta=x0), tail untouched.
//   - Stage 3: beta = −sign(x0)·hypot(x0, tailNorm) (x0 == 0 counts as positive);
//     essential = tail / (x0 − beta); tau = (beta − x0) / beta.
//
// Behavior highlights:
//   - Row r0 of the column is NOT overwritten; the caller decides where beta goes.
//   - The sign choice avoids cancellation in x0 − beta.
//
// Returns:
//   - tau:  reflector coefficient (0 ≤ tau ≤ 2).
//   - beta: first entry of H·x.
//
// Errors:
//   - ErrOutOfRange when col or r0 is outside the matrix.
//
// Complexity:
//   - Time O(Rows()-r0), Space O(1).
func (m *Dense) MakeHouseholderCol(col, r0 int) (tau, beta float64, err error) {
	if col < 0 || col >= m.c || r0 < 0 || r0 >= m.r {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "%s(%d,%d)", opMakeHouseholder, col, r0)
	}
	stride := m.c
	x0 := m.data[r0*stride+col]

	// Stage 1: norm of the tail, strided down the column.
	var tailNorm float64
	if n := m.r - r0 - 1; n > 0 {
		tailNorm = blas64.Nrm2(blas64.Vector{
			N:    n,
			Data: m.data[(r0+1)*stride+col:],
			Inc:  stride,
		})
	}

	// Stage 2: nothing to annihilate.
	if tailNorm == 0 {
		return 0, x0, nil
	}

	// Stage 3: reflect onto −sign(x0)·‖x‖·e1.
	beta = math.Hypot(x0, tailNorm)
	if x0 >= 0 {
		beta = -beta
	}
	denom := x0 - beta
	for i := r0 + 1; i < m.r; i++ {
		m.data[i*stride+col] /= denom
	}
	tau = (beta - x0) / beta

	return tau, beta, nil
}

// ApplyHouseholderLeft applies H = I − tau·v·vᵀ, v = [1; essential], from the
// left to the block rows r0..r0+len(essential), columns c0..c1-1.
// MAIN DESCRIPTION:
//   - In-place application of a stored reflector to a sub-block.
//
// Implementation:
//   - Stage 1: single-row block ⇒ scale the row by (1 − tau).
//   - Stage 2: tmp = row(r0) + essentialᵀ · bottom   (length c1−c0)
//   - Stage 3: row(r0) −= tau·tmp; bottom −= tau·essential·tmpᵀ.
//
// Inputs:
//   - essential: the reflector tail; MUST NOT alias the block being updated
//     (copy it out with ColSegment first when it lives in the same matrix).
//   - work: optional scratch of length ≥ c1−c0; allocated when too short.
//
// Errors:
//   - ErrBadShape when the block does not fit inside the matrix.
//
// Complexity:
//   - Time O((len(essential)+1)·(c1−c0)), Space O(c1−c0) scratch.
//
// Notes:
//   - tau == 0 is the identity and returns immediately.
func (m *Dense) ApplyHouseholderLeft(r0, c0, c1 int, essential []float64, tau float64, work []float64) error {
	rows := len(essential) + 1
	if r0 < 0 || c0 < 0 || c1 < c0 || r0+rows > m.r || c1 > m.c {
		return errors.Wrapf(ErrBadShape, "%s(r0=%d,c0=%d,c1=%d,len=%d)", opApplyHouseholder, r0, c0, c1, len(essential))
	}
	if tau == 0 || c1 == c0 {
		return nil
	}
	stride := m.c
	width := c1 - c0

	// Stage 1: 1×w block.
	if rows == 1 {
		factor := 1 - tau
		base := r0*stride + c0
		for j := 0; j < width; j++ {
			m.data[base+j] *= factor
		}
		return nil
	}

	if cap(work) < width {
		work = make([]float64, width)
	}
	tmp := work[:width]

	// Stage 2: tmp = row(r0) + Σ essential[i]·row(r0+1+i).
	var i, j, base int
	var e float64
	base = r0*stride + c0
	copy(tmp, m.data[base:base+width])
	for i = 0; i < len(essential); i++ {
		e = essential[i]
		if e == 0 {
			continue
		}
		base = (r0+1+i)*stride + c0
		for j = 0; j < width; j++ {
			tmp[j] += e * m.data[base+j]
		}
	}

	// Stage 3: rank-1 update.
	base = r0*stride + c0
	for j = 0; j < width; j++ {
		m.data[base+j] -= tau * tmp[j]
	}
	var te float64
	for i = 0; i < len(essential); i++ {
		te = tau * essential[i]
		if te == 0 {
			continue
		}
		base = (r0+1+i)*stride + c0
		for j = 0; j < width; j++ {
			m.data[base+j] -= te * tmp[j]
		}
	}

	return nil
}
