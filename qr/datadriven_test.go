// SPDX-License-Identifier: MIT

package qr_test

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/myousefi2016/libgeometry/matrix"
	"github.com/myousefi2016/libgeometry/qr"
)

// TestDataDriven runs the scripts under testdata/.
//
// Commands:
//
//	compute rows=<r> cols=<c>   decompose the matrix in the input block and
//	                            print its structural summary
//	solve                       solve against the last decomposition; the
//	                            input block is the right-hand side
//	r                           print the R factor
//	q                           print the Q factor
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var dec *qr.FullPivHouseholderQR
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "compute":
				var rows, cols int
				d.ScanArgs(t, "rows", &rows)
				d.ScanArgs(t, "cols", &cols)
				a := parseMatrix(t, d)
				if a.Rows() != rows || a.Cols() != cols {
					d.Fatalf(t, "input is %dx%d, args say %dx%d", a.Rows(), a.Cols(), rows, cols)
				}
				var err error
				dec, err = qr.New(a)
				if err != nil {
					return fmt.Sprintf("error: %s", classify(err))
				}
				return summarize(t, dec)

			case "solve":
				require.NotNil(t, dec, "solve before compute")
				x, err := dec.Solve(parseMatrix(t, d))
				if err != nil {
					return fmt.Sprintf("error: %s", classify(err))
				}
				return formatMatrix(t, x)

			case "r":
				r, err := dec.MatrixR()
				require.NoError(t, err)
				return formatMatrix(t, r)

			case "q":
				q, err := dec.MatrixQ()
				require.NoError(t, err)
				return formatMatrix(t, q)

			default:
				d.Fatalf(t, "unknown command: %s", d.Cmd)
				return ""
			}
		})
	})
}

// parseMatrix reads a whitespace-separated block from the test input; the
// shape is the number of lines by the number of fields on the first line.
func parseMatrix(t *testing.T, d *datadriven.TestData) *matrix.Dense {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(d.Input), "\n")
	rows, cols := len(lines), len(strings.Fields(lines[0]))
	vals := make([]float64, 0, rows*cols)
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != cols {
			d.Fatalf(t, "want %d values per row, got %q", cols, line)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				d.Fatalf(t, "bad value %q: %v", f, err)
			}
			vals = append(vals, v)
		}
	}
	m, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(t, err)

	return m
}

// summarize prints the rank-derived predicates, the determinant (square
// only) and the pivoting record.
func summarize(t *testing.T, dec *qr.FullPivHouseholderQR) string {
	t.Helper()
	var b strings.Builder
	rank, _ := dec.Rank()
	kernel, _ := dec.DimensionOfKernel()
	inj, _ := dec.IsInjective()
	sur, _ := dec.IsSurjective()
	inv, _ := dec.IsInvertible()
	fmt.Fprintf(&b, "rank: %d\n", rank)
	fmt.Fprintf(&b, "kernel: %d\n", kernel)
	fmt.Fprintf(&b, "injective: %t\n", inj)
	fmt.Fprintf(&b, "surjective: %t\n", sur)
	fmt.Fprintf(&b, "invertible: %t\n", inv)
	if det, err := dec.Determinant(); err != nil {
		fmt.Fprintf(&b, "det: error: %s\n", classify(err))
	} else {
		fmt.Fprintf(&b, "det: %s\n", formatValue(det))
	}
	rt, err := dec.RowsTranspositions()
	require.NoError(t, err)
	perm, err := dec.ColsPermutation()
	require.NoError(t, err)
	fmt.Fprintf(&b, "row transpositions: %v\n", rt)
	fmt.Fprintf(&b, "col permutation: %v\n", []int(perm))

	return b.String()
}

// formatMatrix prints one row per line with formatValue entries.
func formatMatrix(t *testing.T, m matrix.Matrix) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatValue(v))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// formatValue rounds to six significant digits and prints round-off noise
// (including negative zero) as 0.
func formatValue(v float64) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

// classify maps an error to a stable name for the expected output.
func classify(err error) string {
	switch {
	case errors.Is(err, qr.ErrInconsistent):
		return "inconsistent"
	case errors.Is(err, qr.ErrNotInvertible):
		return "not invertible"
	case errors.Is(err, matrix.ErrNonSquare):
		return "non-square"
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return "dimension mismatch"
	case errors.Is(err, matrix.ErrNaNInf):
		return "non-finite input"
	default:
		return err.Error()
	}
}
