// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myousefi2016/libgeometry/matrix"
)

// TestMul_FastPathAndFallback compares both code paths on the same operands.
func TestMul_FastPathAndFallback(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{
		1, 2, 0,
		3, 4, -1,
	})
	b := NewFilledDense(t, 3, 2, []float64{
		5, 6,
		7, 8,
		1, 1,
	})
	want := []float64{19, 22, 42, 49}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, Flatten(t, fast))

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, want, Flatten(t, slow))
}

// TestMul_Random_FastEqualsFallback uses a seeded random pair.
func TestMul_Random_FastEqualsFallback(t *testing.T) {
	a, b := MustDense(t, 4, 5), MustDense(t, 5, 3)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareClose(t, fast, slow, 1e-14)
}

// TestMul_DimensionMismatch rejects incompatible inner dimensions.
func TestMul_DimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose checks shape swap, values and non-mutation.
func TestTranspose(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	for _, in := range []matrix.Matrix{m, hide{m}} {
		tr, err := matrix.Transpose(in)
		require.NoError(t, err)
		require.Equal(t, 3, tr.Rows())
		require.Equal(t, 2, tr.Cols())
		require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, Flatten(t, tr))
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, Flatten(t, m))

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec checks y = m·x on both paths and the length contract.
func TestMatVec(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{
		1, 0, 2,
		0, 3, -1,
	})
	x := []float64{1, 2, 3}
	for _, in := range []matrix.Matrix{m, hide{m}} {
		y, err := matrix.MatVec(in, x)
		require.NoError(t, err)
		require.Equal(t, []float64{7, 3}, y)
	}

	_, err := matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
