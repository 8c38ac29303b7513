// Package layer: sentinel error set.
// All violations are caller-side programming errors raised at the point of
// the broken precondition; the layer performs no retries and no partial
// recovery. Tests match these via errors.Is.

package layer

import "errors"

var (
	// ErrLengthMismatch indicates a vector whose length does not match the
	// expected layer width (input count for ComputeOutput, node count for
	// PropagateError). Raised before any state mutation occurs.
	ErrLengthMismatch = errors.New("layer: vector length mismatch")

	// ErrInvalidArgument indicates a non-positive input or node count in the
	// configuration.
	ErrInvalidArgument = errors.New("layer: count must be positive")

	// ErrMissingConfiguration indicates that construction was attempted
	// without a required collaborator (activation function, or a weight
	// initializer when no rng is supplied to derive the default one).
	ErrMissingConfiguration = errors.New("layer: missing required configuration")
)
