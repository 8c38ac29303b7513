// Package network: sentinel error set.

package network

import "errors"

var (
	// ErrInvalidTopology indicates a non-positive width or a negative hidden
	// layer count in the topology configuration.
	ErrInvalidTopology = errors.New("network: invalid topology")

	// ErrTopologyMismatch indicates two networks whose layer shapes differ
	// where identical shapes are required (crossover parents), or a restored
	// snapshot whose layer chain does not line up.
	ErrTopologyMismatch = errors.New("network: topology mismatch")

	// ErrNoSamples indicates an accuracy evaluation over an empty sample set.
	ErrNoSamples = errors.New("network: no samples")

	// ErrBadEvolveConfig indicates an evolution run configured with fewer
	// than two genomes, no generations, a nil rng or a nil fitness function.
	ErrBadEvolveConfig = errors.New("network: invalid evolution configuration")
)
