// SPDX-License-Identifier: MIT

// Package qr: precision policy shared by the decomposition and Solve.

package qr

import "math"

// Epsilon is the float64 machine epsilon (2^-52): the gap between 1 and the
// next representable value.
const Epsilon = 0x1p-52

// Threshold returns the relative precision used to declare a value
// negligible for a decomposition whose smaller dimension is size.
// Threshold(n) = Epsilon · n.
func Threshold(size int) float64 {
	return Epsilon * float64(size)
}

// IsMuchSmallerThan reports whether |x| ≤ |y|·prec.
// When y is zero only an exact zero x qualifies.
func IsMuchSmallerThan(x, y, prec float64) bool {
	return math.Abs(x) <= math.Abs(y)*prec
}
