// Package network - the genome view of a layer stack.
//
// The per-layer weight matrices double as the network's genome: the same
// storage the gradient regime updates in place is randomized, mutated and
// crossed here. Operators assume exclusive access for the duration of the
// call, exactly as the matrix-level operators do.

package network

import (
	"fmt"
	"math/rand"

	"github.com/neocoretechs/imgclf/layer"
)

// Clone returns a deep copy: every layer matrix is copied, no storage is
// shared with the receiver.
func (n *Network) Clone() *Network {
	layers := make([]*layer.Layer, len(n.layers))
	for i, l := range n.layers {
		// Clone keeps shape and binding, so FromWeights cannot fail here.
		cl, err := layer.FromWeights(l.Matrix().Clone())
		if err != nil {
			panic(fmt.Sprintf("network: clone broke layer invariants: %v", err))
		}
		layers[i] = cl
	}

	return &Network{layers: layers}
}

// Randomize refills every weight matrix with uniform values in [-1, 1),
// in place. Used to seed an evolutionary population.
func (n *Network) Randomize(rng *rand.Rand) {
	for _, l := range n.layers {
		l.Matrix().Randomize(rng)
	}
}

// Mutate applies per-cell mutation at the given rate to every layer matrix,
// in place.
func (n *Network) Mutate(rate float64, rng *rand.Rand) {
	for _, l := range n.layers {
		l.Matrix().Mutate(rate, rng)
	}
}

// Crossover blends two parents of identical topology into a child network.
// Each layer pair draws its own global alpha, matching the matrix-level
// arithmetic crossover.
//
// Errors:
//   - ErrTopologyMismatch when the parents' layer counts or shapes differ.
func (n *Network) Crossover(partner *Network, rng *rand.Rand) (*Network, error) {
	if partner == nil || len(n.layers) != len(partner.layers) {
		return nil, fmt.Errorf("crossover parents: %w", ErrTopologyMismatch)
	}

	layers := make([]*layer.Layer, len(n.layers))
	for i := range n.layers {
		child, err := n.layers[i].Matrix().Crossover(partner.layers[i].Matrix(), rng)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, ErrTopologyMismatch)
		}
		if layers[i], err = layer.FromWeights(child); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return &Network{layers: layers}, nil
}
