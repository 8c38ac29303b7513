// Package layer_test contains unit tests for validated construction.
package layer_test

import (
	"math/rand"
	"testing"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/layer"
	"github.com/neocoretechs/imgclf/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewMissingActivation ensures construction without an activation fails.
func TestNewMissingActivation(t *testing.T) {
	_, err := layer.New(layer.Config{
		NumInputs: 3,
		NumNodes:  2,
		Rand:      rand.New(rand.NewSource(1)),
	})
	require.ErrorIs(t, err, layer.ErrMissingConfiguration)
}

// TestNewMissingInitializer ensures construction fails when neither Init nor
// Rand is supplied.
func TestNewMissingInitializer(t *testing.T) {
	_, err := layer.New(layer.Config{
		Activation: activation.ReLU,
		NumInputs:  3,
		NumNodes:   2,
	})
	require.ErrorIs(t, err, layer.ErrMissingConfiguration)
}

// TestNewInvalidCounts ensures non-positive widths are rejected.
func TestNewInvalidCounts(t *testing.T) {
	cfg := layer.Config{
		Activation: activation.ReLU,
		NumNodes:   2,
		Rand:       rand.New(rand.NewSource(1)),
	}
	_, err := layer.New(cfg) // NumInputs zero
	require.ErrorIs(t, err, layer.ErrInvalidArgument)

	cfg.NumInputs = 3
	cfg.NumNodes = -1
	_, err = layer.New(cfg)
	require.ErrorIs(t, err, layer.ErrInvalidArgument)
}

// TestNewShapeAndInitializer verifies the allocated shape and that the
// caller-supplied initializer reaches every cell, bias column included.
func TestNewShapeAndInitializer(t *testing.T) {
	calls := 0
	l, err := layer.New(layer.Config{
		Activation: activation.ReLU,
		NumInputs:  3,
		NumNodes:   2,
		Init: func(numInputs, numNodes int) float64 {
			require.Equal(t, 3, numInputs) // collaborator sees the layer widths
			require.Equal(t, 2, numNodes)
			calls++
			return 0.5
		},
	})
	require.NoError(t, err)

	require.Equal(t, 3, l.NumInputs())
	require.Equal(t, 2, l.NumNodes())
	require.Equal(t, 8, calls) // 2 rows × (3 inputs + 1 bias)
	require.Equal(t, [][]float64{{0.5, 0.5, 0.5, 0.5}, {0.5, 0.5, 0.5, 0.5}}, l.Weights())
	require.Equal(t, activation.TagReLU, l.ActivationName())
}

// TestNewDeterministicInit ensures a fixed seed reproduces the same weights
// through the default uniform initializer.
func TestNewDeterministicInit(t *testing.T) {
	build := func() *layer.Layer {
		l, err := layer.New(layer.Config{
			Activation: activation.Sigmoid,
			NumInputs:  4,
			NumNodes:   3,
			Rand:       rand.New(rand.NewSource(99)),
		})
		require.NoError(t, err)
		return l
	}
	require.Equal(t, build().Weights(), build().Weights())
}

// TestFromWeights verifies wrapping a restored matrix and its validation.
func TestFromWeights(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}, activation.ReLU)
	require.NoError(t, err)

	l, err := layer.FromWeights(m)
	require.NoError(t, err)
	require.Equal(t, 2, l.NumInputs()) // 3 columns = 2 inputs + bias
	require.Equal(t, 2, l.NumNodes())

	_, err = layer.FromWeights(nil)
	require.ErrorIs(t, err, layer.ErrMissingConfiguration)

	single, err := matrix.FromRows([][]float64{{1}}, activation.ReLU)
	require.NoError(t, err)
	_, err = layer.FromWeights(single) // no room for a bias column
	require.ErrorIs(t, err, layer.ErrInvalidArgument)
}
