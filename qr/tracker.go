// SPDX-License-Identifier: MIT

// Package qr - pivot tracker: rank detection and permutation bookkeeping.
//
// Purpose:
//   - Own every pivoting decision of one decomposition run, so the
//     elimination loop only moves numbers around.
//   - Produce the record's rank, row transpositions, column permutation and
//     transposition parity.

package qr

// pivotTracker accumulates per-step pivot decisions.
//
// Invariants:
//   - rowsTranspositions has length rows and is identity-initialized, so
//     every step that is never recorded (k ≥ rank) stays an identity entry.
//   - colsTranspositions has length min(rows, cols), identity-initialized.
//   - count is the number of non-trivial swaps (row or column) recorded.
type pivotTracker struct {
	precision          float64
	biggest            float64 // |first pivot|, the reference magnitude
	rowsTranspositions []int
	colsTranspositions []int
	count              int
	rank               int
}

// newPivotTracker prepares a tracker for an rows×cols decomposition.
// The rank starts at min(rows, cols) and only shrinks on early termination.
func newPivotTracker(rows, cols int) *pivotTracker {
	size := min(rows, cols)

	return &pivotTracker{
		precision:          Threshold(size),
		rowsTranspositions: Identity(rows),
		colsTranspositions: Identity(size),
		rank:               size,
	}
}

// negligible reports whether the corner maximum of step k is negligible
// relative to the first pivot. Step 0 fixes the reference magnitude, so an
// all-zero input is detected as rank 0 at k = 0. A true result fixes the
// rank at k.
func (t *pivotTracker) negligible(k int, cornerMax float64) bool {
	if k == 0 {
		t.biggest = cornerMax
	}
	if IsMuchSmallerThan(cornerMax, t.biggest, t.precision) {
		t.rank = k
		return true
	}

	return false
}

// record stores the pivot position (row, col) chosen at step k and counts
// every swap that is not an identity.
func (t *pivotTracker) record(k, row, col int) {
	t.rowsTranspositions[k] = row
	t.colsTranspositions[k] = col
	if row != k {
		t.count++
	}
	if col != k {
		t.count++
	}
}

// detPQ returns the sign contributed by all recorded swaps: −1 for an odd
// number of transpositions, +1 otherwise.
func (t *pivotTracker) detPQ() int {
	if t.count%2 == 1 {
		return -1
	}

	return 1
}

// colsPermutation folds the column transpositions into a Permutation of
// length cols.
func (t *pivotTracker) colsPermutation(cols int) (Permutation, error) {
	return PermutationFromTranspositions(cols, t.colsTranspositions)
}
