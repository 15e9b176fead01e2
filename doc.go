// Package libgeometry is a small dense linear-algebra toolkit centred on a
// rank-revealing QR decomposition with full pivoting.
//
// What is inside?
//
//   - matrix/: the float64 Dense container, index-bounded views, and the
//     kernels factorizations are built from: pivot search (MaxAbs),
//     ranged row/column swaps, Householder reflectors, back-substitution,
//     multiplication and verification helpers.
//   - qr/: FullPivHouseholderQR, which factors A·P = Q·R for any rectangular
//     A, reveals the numerical rank, answers structural queries (kernel
//     dimension, injectivity, surjectivity, invertibility, determinants)
//     and solves A·X = B exactly when the system is consistent.
//
// Why full pivoting?
//
//   - Choosing the largest remaining entry at every step makes the diagonal
//     of R a reliable rank indicator, even for badly scaled inputs.
//   - The decomposition stops as soon as the remaining corner is negligible,
//     so rank-deficient matrices cost less than full-rank ones.
//
// Quick example:
//
//	A = | 1 2 |      dec, _ := qr.New(A)
//	    | 2 4 |      dec.Rank()       → 1
//	    | 1 1 |      dec.SolveVec(b)  → x with A·x = b, or ErrInconsistent
//
// Errors are cockroachdb/errors sentinels wrapped with the failing
// operation; match them with errors.Is. Diagnostics go to an optional zap
// logger (qr.WithLogger).
//
//	go get github.com/myousefi2016/libgeometry
package libgeometry
