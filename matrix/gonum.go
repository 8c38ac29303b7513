// Package matrix - gonum interop at the persistence/linear-algebra boundary.
//
// External collaborators (weight stores, analysis notebooks, classifiers)
// often speak gonum's mat types. These adapters convert without exposing the
// internal flat buffer: both directions copy, so neither side can alias the
// other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/neocoretechs/imgclf/activation"
)

// ToGonum exports the cell grid as a gonum *mat.Dense. The activation
// binding does not travel with it; pair the result with
// Activation().String() when handing a layer to an external store.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum imports any gonum mat.Matrix into a Dense bound to the given
// activation. Complexity: O(r*c).
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrBadShape when src has a zero dimension.
//   - ErrNilActivation when act is nil.
func FromGonum(src mat.Matrix, act activation.Func) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromGonum(%d,%d): %w", r, c, ErrBadShape)
	}
	if act == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilActivation)
	}

	m := &Dense{r: r, c: c, data: make([]float64, r*c), act: act}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = src.At(i, j)
		}
	}

	return m, nil
}
