package layer

import (
	"fmt"
	"math/rand"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/matrix"
)

// WeightInit produces one initial weight value per cell of a fresh layer.
// It is an external collaborator: the layer calls it once per cell, in
// row-major order, with the layer's input and node counts, and stores
// whatever it returns. Typical implementations draw from a seeded rng or a
// fan-in-scaled distribution.
type WeightInit func(numInputs, numNodes int) float64

// UniformInit returns a WeightInit drawing uniformly from [-1, 1) on the
// given rng — the same range the genetic operators use for fresh genes.
func UniformInit(rng *rand.Rand) WeightInit {
	return func(int, int) float64 { return 2*rng.Float64() - 1 }
}

// Config collects everything needed to build a Layer. All fields except
// Rand are required in the sense documented per field; New validates the
// whole configuration before allocating any storage.
type Config struct {
	// Activation is the nonlinearity bound to the weight matrix and applied
	// to every output node. Required.
	Activation activation.Func

	// NumInputs is the number of upstream nodes feeding this layer,
	// excluding the bias column. Must be positive.
	NumInputs int

	// NumNodes is the number of output nodes. Must be positive.
	NumNodes int

	// Init supplies the initial weight for every cell. Optional when Rand is
	// set: a nil Init resolves to UniformInit(Rand).
	Init WeightInit

	// Rand seeds the default initializer when Init is nil. Ignored when
	// Init is set.
	Rand *rand.Rand
}

// validate checks the configuration and resolves the effective initializer.
// Stage 1: required collaborators (activation, then initializer).
// Stage 2: positive counts.
func (c Config) validate() (WeightInit, error) {
	if c.Activation == nil {
		return nil, fmt.Errorf("activation function: %w", ErrMissingConfiguration)
	}
	init := c.Init
	if init == nil {
		if c.Rand == nil {
			return nil, fmt.Errorf("weight initializer (set Init or Rand): %w", ErrMissingConfiguration)
		}
		init = UniformInit(c.Rand)
	}
	if c.NumInputs <= 0 {
		return nil, fmt.Errorf("number of inputs %d: %w", c.NumInputs, ErrInvalidArgument)
	}
	if c.NumNodes <= 0 {
		return nil, fmt.Errorf("number of nodes %d: %w", c.NumNodes, ErrInvalidArgument)
	}

	return init, nil
}

// New builds a Layer from a validated configuration.
//
// The weight matrix has shape (NumNodes × NumInputs+1); every cell,
// including the bias column, is filled from the initializer in row-major
// order. The bias slot of the input buffer is fixed to the sentinel at
// construction and never overwritten afterwards.
//
// Errors:
//   - ErrMissingConfiguration when Activation is nil, or Init and Rand both are.
//   - ErrInvalidArgument when either count is non-positive.
func New(cfg Config) (*Layer, error) {
	init, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	weights, err := matrix.New(cfg.NumNodes, cfg.NumInputs+1, cfg.Activation)
	if err != nil {
		return nil, err
	}
	for i := 0; i < cfg.NumNodes; i++ {
		for j := 0; j < cfg.NumInputs+1; j++ {
			if err = weights.Set(i, j, init(cfg.NumInputs, cfg.NumNodes)); err != nil {
				return nil, err
			}
		}
	}

	return fromWeights(weights), nil
}

// FromWeights wraps an existing weight matrix as a Layer, e.g. one restored
// through the persistence boundary or produced by crossover. The matrix
// shape determines the layer widths: rows = nodes, cols = inputs + 1.
//
// Errors:
//   - ErrInvalidArgument when the matrix has fewer than 2 columns (no room
//     for the bias column).
func FromWeights(weights *matrix.Dense) (*Layer, error) {
	if weights == nil {
		return nil, fmt.Errorf("weight matrix: %w", ErrMissingConfiguration)
	}
	if weights.Cols() < 2 {
		return nil, fmt.Errorf("weight matrix with %d columns has no bias column: %w",
			weights.Cols(), ErrInvalidArgument)
	}

	return fromWeights(weights), nil
}

// fromWeights assembles the Layer around an owned weight matrix.
func fromWeights(weights *matrix.Dense) *Layer {
	l := &Layer{
		weights:    weights,
		lastInput:  make([]float64, weights.Cols()),
		lastOutput: make([]float64, weights.Rows()),
	}
	// The bias slot never changes after this point.
	l.lastInput[len(l.lastInput)-1] = biasSentinel

	return l
}
