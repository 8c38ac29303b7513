// Package matrix - algebra kernels: Dot, Activate, AddBias, vector lifts.
//
// All kernels are pure: they validate fail-fast, allocate a fresh result and
// never mutate their operands. Loop orders are fixed (i → j → k) so repeated
// runs produce bit-identical results.

package matrix

import "fmt"

// Dot returns the matrix product of m and n.
// The result has m.Rows() rows and n.Cols() columns; cell (i,j) is the
// ordered sum over k of m[i,k]·n[k,j]. The result carries the receiver's
// activation binding, matching the convention that a layer's weight matrix
// determines the activation of everything derived from it.
//
// Errors:
//   - ErrNilMatrix when n is nil.
//   - ErrDimensionMismatch when m.Cols() != n.Rows().
//
// Complexity: O(m.r · n.c · m.c).
func (m *Dense) Dot(n *Dense) (*Dense, error) {
	if n == nil {
		return nil, fmt.Errorf("Dot: %w", ErrNilMatrix)
	}
	if m.c != n.r {
		return nil, fmt.Errorf("Dot: source cols %d != target rows %d: %w",
			m.c, n.r, ErrDimensionMismatch)
	}

	res := &Dense{r: m.r, c: n.c, data: make([]float64, m.r*n.c), act: m.act}
	for i := 0; i < m.r; i++ {
		for j := 0; j < n.c; j++ {
			sum := 0.0
			for k := 0; k < m.c; k++ { // fixed summation order k=0..cols-1
				sum += m.data[i*m.c+k] * n.data[k*n.c+j]
			}
			res.data[i*n.c+j] = sum
		}
	}

	return res, nil
}

// Activate returns a new matrix of identical shape where every cell has been
// passed through the bound activation function. The receiver is unchanged.
// Complexity: O(r*c).
func (m *Dense) Activate() *Dense {
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), act: m.act}
	for i, v := range m.data {
		res.data[i] = m.act.Apply(v)
	}

	return res
}

// ColumnFromSlice lifts a 1D vector into a fresh n×1 matrix carrying the
// receiver's activation binding. Used to prepare an input vector for Dot.
//
// Errors:
//   - ErrBadShape when values is empty.
func (m *Dense) ColumnFromSlice(values []float64) (*Dense, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("ColumnFromSlice: empty vector: %w", ErrBadShape)
	}
	col := &Dense{r: len(values), c: 1, data: make([]float64, len(values)), act: m.act}
	copy(col.data, values)

	return col, nil
}

// ToSlice flattens the matrix row-major into a fresh 1D slice of length
// Rows()*Cols(). Round-trips with ColumnFromSlice for single-column shapes.
func (m *Dense) ToSlice() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// SubOuterScaled subtracts the scaled outer product of two vectors from the
// matrix in place: m[i,j] -= scale · u[i] · v[j]. This is the weight-update
// step of the backward pass; it is the only mutating algebra kernel.
//
// Errors:
//   - ErrDimensionMismatch when len(u) != Rows() or len(v) != Cols().
//
// Complexity: O(r*c).
func (m *Dense) SubOuterScaled(u, v []float64, scale float64) error {
	if len(u) != m.r || len(v) != m.c {
		return fmt.Errorf("SubOuterScaled: vectors %dx%d vs matrix %dx%d: %w",
			len(u), len(v), m.r, m.c, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		su := scale * u[i]
		for j := 0; j < m.c; j++ {
			row[j] -= su * v[j]
		}
	}

	return nil
}

// AddBias takes a single-column matrix and returns a new (n+1)×1 matrix:
// the first n rows copy the source column, the final row is fixed to 1 (the
// bias term). Used when assembling inputs outside a layer; the layer itself
// manages its own bias slot directly.
//
// Errors:
//   - ErrDimensionMismatch when the receiver has more than one column.
func (m *Dense) AddBias() (*Dense, error) {
	if m.c != 1 {
		return nil, fmt.Errorf("AddBias: %d columns, want 1: %w", m.c, ErrDimensionMismatch)
	}

	res := &Dense{r: m.r + 1, c: 1, data: make([]float64, m.r+1), act: m.act}
	copy(res.data, m.data)
	res.data[m.r] = 1

	return res, nil
}
