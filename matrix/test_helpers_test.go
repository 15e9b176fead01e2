// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/myousefi2016/libgeometry/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
//
// Errors:
//   - Fatal test failure if lengths mismatch or Set fails.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
// Deterministic for a fixed seed; values stay finite.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// Flatten RETURNS the row-major contents of m.
func Flatten(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			out = append(out, MustAt(t, m, i, j))
		}
	}

	return out
}

// CompareClose ASSERTS shapes match and |a-b| ≤ tol element-wise.
// Reports the first offending coordinate.
func CompareClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > tol {
				t.Fatalf("mismatch at (%d,%d): %v vs %v (tol %g)", i, j, av, bv, tol)
			}
		}
	}
}

// sliceMatrix is a minimal foreign Matrix with no numeric policy: it accepts
// NaN/±Inf and may report an empty shape.
type sliceMatrix struct {
	r, c int
	data []float64
}

func (s *sliceMatrix) Rows() int { return s.r }
func (s *sliceMatrix) Cols() int { return s.c }
func (s *sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, matrix.ErrOutOfRange
	}
	return s.data[i*s.c+j], nil
}
func (s *sliceMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return matrix.ErrOutOfRange
	}
	s.data[i*s.c+j] = v
	return nil
}
func (s *sliceMatrix) Clone() matrix.Matrix {
	return &sliceMatrix{r: s.r, c: s.c, data: append([]float64(nil), s.data...)}
}
