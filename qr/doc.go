// Package qr implements a rank-revealing Householder QR decomposition with
// full (row and column) pivoting, and the solve/query facade built on it.
//
// What & Why:
//
//	For an R×C matrix A the decomposition finds P (row transpositions),
//	Q (orthogonal, a product of Householder reflectors) and a column
//	permutation Π such that A·Π = Q·R with R upper trapezoidal. Picking the
//	largest-magnitude entry of the remaining corner at every step makes the
//	factorization numerically robust and reveals the numerical rank: the
//	elimination stops as soon as the corner becomes negligible relative to
//	the first pivot.
//
// Usage:
//
//	dec, err := qr.New(a)
//	if err != nil { ... }
//	rank, _ := dec.Rank()
//	x, err := dec.Solve(b) // errors.Is(err, qr.ErrInconsistent) for no exact solution
//
// Storage:
//
//	The factors live in a packed working matrix: R occupies the upper
//	trapezoid, the essential part of reflector k sits below the diagonal of
//	column k, and the reflector coefficients tau_k are kept alongside. Q is
//	materialized only on demand (MatrixQ).
//
// Precision policy:
//
//	threshold = Epsilon · min(R, C). A corner maximum m is negligible when
//	|m| ≤ |first pivot| · threshold. Solve applies the same rule to decide
//	whether the residual of a non-surjective system vanishes.
//
// Concurrency:
//
//	An instance is single-threaded: Compute mutates it and queries read it.
//	Distinct instances share nothing and may be used from parallel
//	goroutines. Inputs are copied on entry, so later writes by the caller
//	never reach the decomposition.
//
// Complexity:
//
//	Compute: O(R·C·min(R,C)) time, O(R·C) space.
//	Solve with k right-hand sides: O(rank·(R+rank)·k) + O(R·k) copy.
//	MatrixQ: O(R²·min(R,C)).
package qr
