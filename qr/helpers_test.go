// SPDX-License-Identifier: MIT
// Package qr_test contains shared fixtures for the decomposition tests.

package qr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myousefi2016/libgeometry/matrix"
	"github.com/myousefi2016/libgeometry/qr"
)

// mustDense BUILDS an r×c *Dense from row-major values or fails the test.
func mustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// mustNew DECOMPOSES a or fails the test.
func mustNew(t *testing.T, a matrix.Matrix, opts ...qr.Option) *qr.FullPivHouseholderQR {
	t.Helper()
	dec, err := qr.New(a, opts...)
	require.NoError(t, err)

	return dec
}

// flatten RETURNS the row-major contents of m.
func flatten(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out = append(out, v)
		}
	}

	return out
}

// permuteCols RETURNS A·Π: column k of the result is column p[k] of a.
func permuteCols(t *testing.T, a matrix.Matrix, p qr.Permutation) *matrix.Dense {
	t.Helper()
	res, err := matrix.NewDense(a.Rows(), a.Cols())
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for k, src := range p {
			v, err := a.At(i, src)
			require.NoError(t, err)
			require.NoError(t, res.Set(i, k, v))
		}
	}

	return res
}

// maxAbs RETURNS the largest |entry| of m.
func maxAbs(t *testing.T, m matrix.Matrix) float64 {
	t.Helper()
	var best float64
	for _, v := range flatten(t, m) {
		best = math.Max(best, math.Abs(v))
	}

	return best
}

// reconstructionError RETURNS max|Q·R − A·Π| for a ready decomposition.
func reconstructionError(t *testing.T, dec *qr.FullPivHouseholderQR, a matrix.Matrix) float64 {
	t.Helper()
	q, err := dec.MatrixQ()
	require.NoError(t, err)
	r, err := dec.MatrixR()
	require.NoError(t, err)
	perm, err := dec.ColsPermutation()
	require.NoError(t, err)

	qrProd, err := matrix.Mul(q, r)
	require.NoError(t, err)
	ap := permuteCols(t, a, perm)

	got, want := flatten(t, qrProd), flatten(t, ap)
	var worst float64
	for i := range got {
		worst = math.Max(worst, math.Abs(got[i]-want[i]))
	}

	return worst
}

// orthogonalityError RETURNS max|QᵀQ − I|.
func orthogonalityError(t *testing.T, dec *qr.FullPivHouseholderQR) float64 {
	t.Helper()
	q, err := dec.MatrixQ()
	require.NoError(t, err)
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	prod, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	n := q.Rows()
	var worst float64
	for i, v := range flatten(t, prod) {
		if i/n == i%n {
			v -= 1
		}
		worst = math.Max(worst, math.Abs(v))
	}

	return worst
}
