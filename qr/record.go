// SPDX-License-Identifier: MIT

// Package qr - factorization record and facade state.

package qr

import "github.com/myousefi2016/libgeometry/matrix"

// state tags the lifecycle of a FullPivHouseholderQR.
type state uint8

const (
	stateUninitialized state = iota // no successful Compute yet
	stateReady                      // record is complete and readable
)

// record is the complete output of one decomposition run. It is built in
// full before it is published and never mutated afterwards.
//
// Layout of qr (R×C):
//   - on and above the diagonal: R (rows 0..min(R,C)-1);
//   - below the diagonal of column k < rank: the essential part of
//     reflector k (rows k+1..R-1).
type record struct {
	qr                 *matrix.Dense
	hCoeffs            []float64   // len min(R,C); 0 for k ≥ rank
	rowsTranspositions []int       // len R; identity for k ≥ rank
	colsPermutation    Permutation // len C
	rank               int
	detPQ              int // +1 or −1
	precision          float64
}

// rows and cols of the decomposed matrix.
func (r *record) rows() int { return r.qr.Rows() }
func (r *record) cols() int { return r.qr.Cols() }

// size is min(rows, cols), the number of Householder steps.
func (r *record) size() int { return len(r.hCoeffs) }
