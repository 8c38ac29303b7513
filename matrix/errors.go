// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with context via
// fmt.Errorf("…: %w", …)) and tests check them via errors.Is. Panics are
// reserved for programmer errors such as passing a nil rng to an operator
// that is documented to require one.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or a ragged/empty 2D source grid).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// Dot where a.Cols != b.Rows, Crossover on unequal shapes, or AddBias
	// on a matrix that is not a single column.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrNilActivation indicates that a constructor was invoked without an
	// activation binding. Every Dense carries exactly one activation for its
	// whole lifetime, so construction without one cannot proceed.
	ErrNilActivation = errors.New("matrix: nil activation function")
)
