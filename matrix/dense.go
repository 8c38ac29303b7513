// Package matrix - Dense storage (row-major) & safe accessors.
// Dense stores elements in a flat slice with the explicit index formula
// i*cols + j for cache friendliness, and carries its activation binding.

package matrix

import (
	"fmt"
	"strings"

	"github.com/neocoretechs/imgclf/activation"
)

// denseErrorf wraps an underlying sentinel with Dense method context and the
// offending coordinates, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values bound to one activation
// function for its whole lifetime.
//
//   - r, c hold the fixed dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order.
//   - act is the activation capability consulted by Activate and by the
//     layer backward pass; it is carried into every derived matrix.
type Dense struct {
	r, c int             // fixed row and column counts, > 0
	data []float64       // contiguous row-major storage, len == r*c
	act  activation.Func // activation binding, never nil
}

// New creates an r×c zero matrix bound to the given activation.
// Stage 1 (Validate): rows > 0, cols > 0, act non-nil.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func New(rows, cols int, act activation.Func) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if act == nil {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrNilActivation)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), act: act}, nil
}

// FromRows builds a Dense from an existing 2D grid, copying it into flat
// row-major storage. The grid must be non-empty and rectangular.
// The caller keeps its slice; later mutations of either side are independent.
// Complexity: O(r*c).
func FromRows(rows [][]float64, act activation.Func) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty grid: %w", ErrBadShape)
	}
	if act == nil {
		return nil, fmt.Errorf("FromRows: %w", ErrNilActivation)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c), act: act}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: ragged row %d (len %d, want %d): %w",
				i, len(rows[i]), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. O(1).
func (m *Dense) Cols() int { return m.c }

// Activation returns the activation binding carried by this matrix.
func (m *Dense) Activation() activation.Func { return m.act }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), bounds-checked.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), bounds-checked.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// The activation binding is carried over. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data, act: m.act}
}

// RowsCopy exports the cell grid as a fresh [][]float64. This is the
// persistence boundary: together with Activation().String() it lets an
// external store serialize a trained or evolved matrix without this package
// knowing the storage format. Complexity: O(r*c).
func (m *Dense) RowsCopy() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
