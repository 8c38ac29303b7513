package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/dataset"
	"github.com/neocoretechs/imgclf/network"
	"github.com/neocoretechs/imgclf/pool"
)

// config is the YAML driver configuration. Zero fields fall back to the
// defaults applied in load.
type config struct {
	// Edge is the square image edge; inputs are Edge*Edge wide.
	Edge int `yaml:"edge"`

	// HiddenNodes / HiddenLayers shape the interior of the network.
	HiddenNodes  int `yaml:"hidden_nodes"`
	HiddenLayers int `yaml:"hidden_layers"`

	// Activation tag: relu, sigmoid, tanh or identity.
	Activation string `yaml:"activation"`

	// LearningRate drives gradient training.
	LearningRate float64 `yaml:"learning_rate"`

	// Epochs is the number of gradient passes over the training set.
	Epochs int `yaml:"epochs"`

	// PoolWidth bounds the backward-pass executor.
	PoolWidth int `yaml:"pool_width"`

	// Evolution settings.
	Population   int     `yaml:"population"`
	Generations  int     `yaml:"generations"`
	Elite        int     `yaml:"elite"`
	MutationProb float64 `yaml:"mutation_prob"`
	MutationRate float64 `yaml:"mutation_rate"`

	// Seed fixes the random source; 0 means time-based.
	Seed int64 `yaml:"seed"`
}

// loadConfig reads the YAML file when path is non-empty and fills defaults.
func loadConfig(path string) (config, error) {
	cfg := config{
		Edge:         dataset.DefaultEdge,
		HiddenNodes:  64,
		HiddenLayers: 1,
		Activation:   activation.TagSigmoid,
		LearningRate: 0.01,
		Epochs:       10,
		PoolWidth:    pool.DefaultWidth,
		Population:   50,
		Generations:  100,
		Elite:        2,
		MutationProb: 0.05,
		MutationRate: 0.1,
	}

	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// modelFile is the on-disk form of a trained network plus its label space.
type modelFile struct {
	Labels []string                `yaml:"labels"`
	Layers []network.LayerSnapshot `yaml:"layers"`
}

// saveModel writes the network and label ordering to path.
func saveModel(path string, n *network.Network, labels []string) error {
	raw, err := yaml.Marshal(modelFile{Labels: labels, Layers: n.Snapshot()})
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o644)
}

// loadModel restores a network and its label ordering from path.
func loadModel(path string) (*network.Network, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var mf modelFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	n, err := network.Restore(mf.Layers)
	if err != nil {
		return nil, nil, err
	}

	return n, mf.Labels, nil
}
