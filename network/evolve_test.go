package network_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/network"
	"github.com/stretchr/testify/require"
)

// evolveTopology is the shared genome template for evolution tests.
func evolveTopology() network.Config {
	return network.Config{
		NumInputs:  2,
		NumOutputs: 1,
		Activation: activation.Identity,
	}
}

// sumFitness rewards large weight sums; a trivially climbable landscape.
func sumFitness(n *network.Network) float64 {
	total := 0.0
	for _, s := range n.Snapshot() {
		for _, row := range s.Weights {
			for _, w := range row {
				total += w
			}
		}
	}

	return total
}

// TestEvolveImproves checks the returned best beats a freshly seeded genome
// on average by running enough generations to climb.
func TestEvolveImproves(t *testing.T) {
	best, fitness, err := network.Evolve(network.EvolveConfig{
		Topology:     evolveTopology(),
		Population:   20,
		Generations:  30,
		Elite:        2,
		MutationProb: 0.1,
		MutationRate: 0.2,
		Rand:         rand.New(rand.NewSource(61)),
	}, sumFitness)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.Equal(t, fitness, sumFitness(best))

	// uniform [-1,1) weights sum to ~0 in expectation; a climbed genome
	// should be clearly positive
	require.Greater(t, fitness, 1.0)
}

// TestEvolveDeterminism verifies a fixed seed reproduces the run exactly.
func TestEvolveDeterminism(t *testing.T) {
	run := func() ([]network.LayerSnapshot, float64) {
		best, fitness, err := network.Evolve(network.EvolveConfig{
			Topology:     evolveTopology(),
			Population:   10,
			Generations:  8,
			Elite:        1,
			MutationProb: 0.2,
			MutationRate: 0.3,
			Rand:         rand.New(rand.NewSource(71)),
		}, sumFitness)
		require.NoError(t, err)
		return best.Snapshot(), fitness
	}

	s1, f1 := run()
	s2, f2 := run()
	require.Equal(t, s1, s2)
	require.Equal(t, f1, f2)
}

// TestEvolveBestNeverRegresses tracks the running best across a fitness
// that penalizes weight magnitude, so later generations cannot lose what an
// earlier one found.
func TestEvolveBestNeverRegresses(t *testing.T) {
	negAbs := func(n *network.Network) float64 {
		total := 0.0
		for _, s := range n.Snapshot() {
			for _, row := range s.Weights {
				for _, w := range row {
					total -= math.Abs(w)
				}
			}
		}
		return total
	}

	best, fitness, err := network.Evolve(network.EvolveConfig{
		Topology:     evolveTopology(),
		Population:   12,
		Generations:  20,
		Elite:        2,
		MutationProb: 0.3,
		MutationRate: 0.5,
		Rand:         rand.New(rand.NewSource(81)),
	}, negAbs)
	require.NoError(t, err)
	require.Equal(t, fitness, negAbs(best)) // best snapshot matches its score
}

// TestEvolveBadConfig covers each rejection path.
func TestEvolveBadConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	good := network.EvolveConfig{
		Topology:    evolveTopology(),
		Population:  4,
		Generations: 1,
		Rand:        rng,
	}

	cfg := good
	cfg.Population = 1
	_, _, err := network.Evolve(cfg, sumFitness)
	require.ErrorIs(t, err, network.ErrBadEvolveConfig)

	cfg = good
	cfg.Generations = 0
	_, _, err = network.Evolve(cfg, sumFitness)
	require.ErrorIs(t, err, network.ErrBadEvolveConfig)

	cfg = good
	cfg.Rand = nil
	_, _, err = network.Evolve(cfg, sumFitness)
	require.ErrorIs(t, err, network.ErrBadEvolveConfig)

	_, _, err = network.Evolve(good, nil)
	require.ErrorIs(t, err, network.ErrBadEvolveConfig)

	cfg = good
	cfg.Topology.NumInputs = 0 // topology errors pass through
	_, _, err = network.Evolve(cfg, sumFitness)
	require.ErrorIs(t, err, network.ErrInvalidTopology)
}
