// Package matrix provides the dense-matrix container and the numeric kernels
// that factorizations in this module are built from.
//
// What & Why:
//
//	Dense stores float64 values row-major in one flat slice. The public
//	surface never panics on user input: At/Set and every kernel return
//	sentinel errors (ErrOutOfRange, ErrDimensionMismatch, ...) wrapped with
//	the operation that detected them, so callers match with errors.Is.
//
// Building blocks for decompositions:
//
//   - View / MatrixView: index-bounded windows ("corners") with MaxAbs, the
//     largest-magnitude reduction used for pivot search.
//   - SwapRowsRange / SwapCols: pivoting swaps over explicit ranges.
//   - MakeHouseholderCol / ApplyHouseholderLeft: compact Householder
//     reflectors (H = I − tau·v·vᵀ, v = [1; essential]).
//   - SolveUpperInPlace: back-substitution over a leading triangle.
//   - Mul, Transpose, MatVec, AllClose, UpperTrapezoid for reconstruction
//     and verification.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time.
//	Clone() performs a deep copy in O(rows*cols) time.
package matrix
