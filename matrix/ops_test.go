// Package matrix_test contains unit tests for the algebra kernels:
// Dot, Activate, AddBias and the vector lifts.
package matrix_test

import (
	"testing"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/matrix"
	"github.com/stretchr/testify/require"
)

// mustFromRows is a test helper for concise fixture construction.
func mustFromRows(t *testing.T, rows [][]float64, act activation.Func) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, act)
	require.NoError(t, err)
	return m
}

// TestDot verifies shape and every cell of a small product.
func TestDot(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, activation.Identity)  // 2x3
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}, activation.Identity) // 3x2

	p, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())

	// cell (i,j) = sum_k a[i,k]*b[k,j]
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.RowsCopy())

	// operands are untouched
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a.RowsCopy())
	require.Equal(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}, b.RowsCopy())
}

// TestDotDimensionMismatch ensures a.Cols != b.Rows always fails.
func TestDotDimensionMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}}, activation.Identity) // 1x3
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}, activation.Identity) // 2x2

	_, err := a.Dot(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Dot(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestActivatePurePointwise verifies Activate maps every cell through the
// bound activation and leaves the receiver unchanged.
func TestActivatePurePointwise(t *testing.T) {
	m := mustFromRows(t, [][]float64{{-2, -0.5}, {0, 3}}, activation.ReLU)

	a := m.Activate()
	require.Equal(t, [][]float64{{0, 0}, {0, 3}}, a.RowsCopy())     // f applied per cell
	require.Equal(t, [][]float64{{-2, -0.5}, {0, 3}}, m.RowsCopy()) // receiver unchanged
	require.Equal(t, activation.ReLU, a.Activation())               // binding carried
}

// TestColumnToSliceRoundTrip exercises the flatten/lift round-trip:
// ToSlice → ColumnFromSlice → ToSlice reproduces the flattened sequence.
func TestColumnToSliceRoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}, activation.Sigmoid)

	flat := m.ToSlice()
	require.Equal(t, []float64{1, 2, 3, 4}, flat) // row-major order

	col, err := m.ColumnFromSlice(flat)
	require.NoError(t, err)
	require.Equal(t, 4, col.Rows())
	require.Equal(t, 1, col.Cols())
	require.Equal(t, activation.Sigmoid, col.Activation()) // binding carried forward

	require.Equal(t, flat, col.ToSlice()) // round trip is lossless
}

// TestColumnFromSliceEmpty ensures the empty vector is rejected.
func TestColumnFromSliceEmpty(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1}}, activation.ReLU)
	_, err := m.ColumnFromSlice(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestSubOuterScaled verifies the in-place scaled outer-product subtraction
// m[i,j] -= scale·u[i]·v[j] and its shape validation.
func TestSubOuterScaled(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 1, 1}, {2, 2, 2}}, activation.Identity)

	require.NoError(t, m.SubOuterScaled([]float64{1, 2}, []float64{1, 0, -1}, 0.5))
	require.Equal(t, [][]float64{{0.5, 1, 1.5}, {1, 2, 3}}, m.RowsCopy())

	err := m.SubOuterScaled([]float64{1}, []float64{1, 0, -1}, 1) // wrong u length
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = m.SubOuterScaled([]float64{1, 2}, []float64{1}, 1) // wrong v length
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAddBias verifies the (n×1) → (n+1×1) lift with a fixed 1 bias row.
func TestAddBias(t *testing.T) {
	col := mustFromRows(t, [][]float64{{0.25}, {0.5}}, activation.ReLU)

	b, err := col.AddBias()
	require.NoError(t, err)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, 1, b.Cols())
	require.Equal(t, []float64{0.25, 0.5, 1}, b.ToSlice()) // last row fixed to 1

	wide := mustFromRows(t, [][]float64{{1, 2}}, activation.ReLU)
	_, err = wide.AddBias() // not a column
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
