// Package matrix - genetic operators over the weight-as-genome view.
//
// Randomize, Mutate and Crossover treat the same cell grid that the layer
// machinery trains by gradient descent as an evolvable genome. They assume
// exclusive access to the matrix for the duration of the call; callers must
// not run forward/backward passes on the same instance concurrently.
//
// Every operator takes an explicit *rand.Rand so that a fixed seed
// reproduces a whole evolutionary run. Passing a nil rng is a programmer
// error and panics.

package matrix

import (
	"fmt"
	"math/rand"
)

const panicNilRand = "matrix: nil *rand.Rand passed to a genetic operator"

// uniform draws a fresh value from the canonical gene range [-1, 1).
func uniform(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}

// Randomize fills every cell with a fresh uniform value in [-1, 1),
// mutating the matrix in place. Used for initial population seeding.
// Complexity: O(r*c).
func (m *Dense) Randomize(rng *rand.Rand) {
	if rng == nil {
		panic(panicNilRand)
	}
	for i := range m.data {
		m.data[i] = uniform(rng)
	}
}

// Mutate replaces each cell, independently with probability rate, by a fresh
// uniform value in [-1, 1). Cells are drawn independently; there is no
// structural correlation between mutated positions. A rate <= 0 leaves the
// matrix untouched, a rate >= 1 replaces every cell.
// Complexity: O(r*c).
func (m *Dense) Mutate(rate float64, rng *rand.Rand) {
	if rng == nil {
		panic(panicNilRand)
	}
	for i := range m.data {
		if rng.Float64() < rate {
			m.data[i] = uniform(rng)
		}
	}
}

// Crossover performs arithmetic crossover with the partner matrix: one
// scalar alpha is drawn uniformly from [0, 1) for the whole operation and
// every child cell is alpha·m[i,j] + (1-alpha)·partner[i,j].
//
// Alpha near 1 favors the receiver, near 0 favors the partner, 0.5 blends
// equally. A single global blend factor is used, never a per-cell or
// per-row selection.
//
// Errors:
//   - ErrNilMatrix when partner is nil.
//   - ErrDimensionMismatch when shapes differ.
func (m *Dense) Crossover(partner *Dense, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		panic(panicNilRand)
	}

	return m.CrossoverAlpha(partner, rng.Float64())
}

// CrossoverAlpha is the deterministic core of Crossover with a
// caller-supplied blend factor. Exposed so tests and drivers that manage
// their own alpha schedule can reproduce a blend exactly.
// The child carries the receiver's activation binding.
// Complexity: O(r*c).
func (m *Dense) CrossoverAlpha(partner *Dense, alpha float64) (*Dense, error) {
	if partner == nil {
		return nil, fmt.Errorf("Crossover: %w", ErrNilMatrix)
	}
	if m.r != partner.r || m.c != partner.c {
		return nil, fmt.Errorf("Crossover: %dx%d vs %dx%d: %w",
			m.r, m.c, partner.r, partner.c, ErrDimensionMismatch)
	}

	child := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), act: m.act}
	for i := range m.data {
		child.data[i] = m.data[i]*alpha + partner.data[i]*(1-alpha)
	}

	return child, nil
}
