// Package network - evolutionary weight search over network genomes.
//
// Evolve is the second training regime: instead of propagating gradients it
// searches the weight space with randomize/mutate/crossover, scored by a
// caller-supplied fitness function. Determinism: with a fixed seed and a
// deterministic fitness, a run reproduces exactly (stable sort, fixed
// iteration orders, one shared rng).

package network

import (
	"fmt"
	"math/rand"
	"sort"
)

// Fitness scores a genome; higher is better. It must not retain or mutate
// the network it is given.
type Fitness func(*Network) float64

// EvolveConfig configures a population search.
type EvolveConfig struct {
	// Topology is the genome template; every individual shares it.
	Topology Config

	// Population is the number of genomes per generation. Must be >= 2.
	Population int

	// Generations is the number of selection rounds. Must be >= 1.
	Generations int

	// Elite is the number of top genomes copied unchanged into the next
	// generation. Clamped to [1, Population).
	Elite int

	// MutationProb is the probability that a child is mutated at all —
	// the outer gate; mutation should be rare.
	MutationProb float64

	// MutationRate is the per-cell replacement probability applied when
	// the outer gate fires.
	MutationRate float64

	// Rand drives every stochastic choice of the run. Required.
	Rand *rand.Rand
}

// Evolve runs an elitist population search and returns the best genome with
// its fitness. Each generation: score, stable-sort descending, copy the
// elite, then refill by tournament selection + arithmetic crossover +
// gated mutation.
//
// Errors:
//   - ErrBadEvolveConfig for population < 2, generations < 1, nil rng or
//     nil fitness.
//   - topology/construction errors pass through.
func Evolve(cfg EvolveConfig, fit Fitness) (*Network, float64, error) {
	if cfg.Population < 2 || cfg.Generations < 1 || cfg.Rand == nil || fit == nil {
		return nil, 0, ErrBadEvolveConfig
	}
	elite := cfg.Elite
	if elite < 1 {
		elite = 1
	}
	if elite >= cfg.Population {
		elite = cfg.Population - 1
	}

	// Seed the population from the shared rng so the run is reproducible.
	topo := cfg.Topology
	if topo.Init == nil {
		topo.Rand = cfg.Rand
	}
	pop := make([]*Network, cfg.Population)
	for i := range pop {
		n, err := New(topo)
		if err != nil {
			return nil, 0, fmt.Errorf("seeding genome %d: %w", i, err)
		}
		pop[i] = n
	}

	var best scored
	for gen := 0; gen < cfg.Generations; gen++ {
		ranked := make([]scored, len(pop))
		for i, g := range pop {
			ranked[i] = scored{genome: g, fitness: fit(g)}
		}
		sort.SliceStable(ranked, func(a, b int) bool {
			return ranked[a].fitness > ranked[b].fitness
		})
		if best.genome == nil || ranked[0].fitness > best.fitness {
			best = scored{genome: ranked[0].genome.Clone(), fitness: ranked[0].fitness}
		}

		next := make([]*Network, 0, cfg.Population)
		for i := 0; i < elite; i++ {
			next = append(next, ranked[i].genome)
		}
		for len(next) < cfg.Population {
			a := tournament(ranked, cfg.Rand)
			b := tournament(ranked, cfg.Rand)
			child, err := a.Crossover(b, cfg.Rand)
			if err != nil {
				return nil, 0, err
			}
			if cfg.Rand.Float64() < cfg.MutationProb {
				child.Mutate(cfg.MutationRate, cfg.Rand)
			}
			next = append(next, child)
		}
		pop = next
	}

	return best.genome, best.fitness, nil
}

// scored pairs a genome with its fitness for ranking.
type scored struct {
	genome  *Network
	fitness float64
}

// tournament picks the fitter of two uniformly drawn competitors. ranked is
// sorted descending, so the lower index wins.
func tournament(ranked []scored, rng *rand.Rand) *Network {
	a := rng.Intn(len(ranked))
	b := rng.Intn(len(ranked))
	if b < a {
		a = b
	}

	return ranked[a].genome
}
