package network

import (
	"fmt"
	"math/rand"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/layer"
	"github.com/neocoretechs/imgclf/matrix"
	"github.com/neocoretechs/imgclf/pool"
)

// Config describes a fully connected topology in the classic
// inputs / hidden nodes / hidden layers / outputs form.
type Config struct {
	// NumInputs is the width of the input vector. Must be positive.
	NumInputs int

	// NumOutputs is the width of the output vector. Must be positive.
	NumOutputs int

	// HiddenNodes is the width of each hidden layer. Must be positive when
	// HiddenLayers > 0; ignored otherwise.
	HiddenNodes int

	// HiddenLayers is the number of hidden layers. Zero builds a single
	// input→output layer; negative is invalid.
	HiddenLayers int

	// Activation is bound to every layer. Required.
	Activation activation.Func

	// Init seeds every layer's weights; nil resolves to the uniform
	// initializer on Rand (see layer.Config).
	Init layer.WeightInit

	// Rand backs the default initializer when Init is nil.
	Rand *rand.Rand
}

// Network is an ordered chain of fully connected layers. Layer i's outputs
// feed layer i+1's inputs; the last layer's width is the category space.
type Network struct {
	layers []*layer.Layer
}

// New builds a network from the topology configuration: one layer from the
// inputs to the first hidden width, HiddenLayers-1 hidden→hidden layers,
// and a final hidden→outputs layer.
//
// Errors:
//   - ErrInvalidTopology for non-positive widths or negative layer counts.
//   - layer construction errors (missing activation/initializer) pass through.
func New(cfg Config) (*Network, error) {
	if cfg.NumInputs <= 0 || cfg.NumOutputs <= 0 {
		return nil, fmt.Errorf("inputs %d, outputs %d: %w",
			cfg.NumInputs, cfg.NumOutputs, ErrInvalidTopology)
	}
	if cfg.HiddenLayers < 0 {
		return nil, fmt.Errorf("hidden layers %d: %w", cfg.HiddenLayers, ErrInvalidTopology)
	}
	if cfg.HiddenLayers > 0 && cfg.HiddenNodes <= 0 {
		return nil, fmt.Errorf("hidden nodes %d: %w", cfg.HiddenNodes, ErrInvalidTopology)
	}

	// widths[i] → widths[i+1] per layer
	widths := make([]int, 0, cfg.HiddenLayers+2)
	widths = append(widths, cfg.NumInputs)
	for i := 0; i < cfg.HiddenLayers; i++ {
		widths = append(widths, cfg.HiddenNodes)
	}
	widths = append(widths, cfg.NumOutputs)

	layers := make([]*layer.Layer, 0, len(widths)-1)
	for i := 0; i+1 < len(widths); i++ {
		l, err := layer.New(layer.Config{
			Activation: cfg.Activation,
			NumInputs:  widths[i],
			NumNodes:   widths[i+1],
			Init:       cfg.Init,
			Rand:       cfg.Rand,
		})
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, l)
	}

	return &Network{layers: layers}, nil
}

// Layers exposes the layer chain, first to last.
func (n *Network) Layers() []*layer.Layer { return n.layers }

// NumInputs returns the input vector width.
func (n *Network) NumInputs() int { return n.layers[0].NumInputs() }

// NumOutputs returns the output vector width.
func (n *Network) NumOutputs() int { return n.layers[len(n.layers)-1].NumNodes() }

// FeedForward runs the input vector through every layer in order and
// returns the final output vector.
func (n *Network) FeedForward(input []float64) ([]float64, error) {
	out := input
	var err error
	for i, l := range n.layers {
		if out, err = l.ComputeOutput(out); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return out, nil
}

// Train runs one forward-then-backward cycle against a target vector and
// returns the squared-error loss ½·Σ(out-target)². The output error
// (out - target) is propagated backward layer by layer; each layer updates
// its weights in place at the given learning rate on the given executor.
//
// Errors:
//   - layer.ErrLengthMismatch when the input or target width is wrong.
func (n *Network) Train(input, target []float64, learningRate float64, exec pool.Executor) (float64, error) {
	out, err := n.FeedForward(input)
	if err != nil {
		return 0, err
	}
	if len(target) != len(out) {
		return 0, fmt.Errorf("target length %d, want %d: %w",
			len(target), len(out), layer.ErrLengthMismatch)
	}

	errv := make([]float64, len(out))
	loss := 0.0
	for i := range out {
		errv[i] = out[i] - target[i]
		loss += 0.5 * errv[i] * errv[i]
	}

	for i := len(n.layers) - 1; i >= 0; i-- {
		if errv, err = n.layers[i].PropagateError(errv, learningRate, exec); err != nil {
			return 0, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return loss, nil
}

// LayerSnapshot is the persistence-boundary form of one layer: a plain
// weight grid plus a stable activation tag. The storage format beyond this
// shape is an external concern.
type LayerSnapshot struct {
	Weights    [][]float64 `yaml:"weights" json:"weights"`
	Activation string      `yaml:"activation" json:"activation"`
}

// Snapshot exports every layer for an external store.
func (n *Network) Snapshot() []LayerSnapshot {
	out := make([]LayerSnapshot, len(n.layers))
	for i, l := range n.layers {
		out[i] = LayerSnapshot{Weights: l.Weights(), Activation: l.ActivationName()}
	}

	return out
}

// Restore rebuilds a network from snapshots, validating that consecutive
// layer shapes chain together (layer i's node count must equal layer i+1's
// input count).
//
// Errors:
//   - ErrTopologyMismatch for an empty snapshot list or a broken chain.
//   - activation.ErrUnknownActivation for an unknown tag.
func Restore(snapshots []LayerSnapshot) (*Network, error) {
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("empty snapshot: %w", ErrTopologyMismatch)
	}

	layers := make([]*layer.Layer, 0, len(snapshots))
	for i, s := range snapshots {
		act, err := activation.Parse(s.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		m, err := matrix.FromRows(s.Weights, act)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		l, err := layer.FromWeights(m)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if i > 0 && layers[i-1].NumNodes() != l.NumInputs() {
			return nil, fmt.Errorf("layer %d expects %d inputs, layer %d emits %d: %w",
				i, l.NumInputs(), i-1, layers[i-1].NumNodes(), ErrTopologyMismatch)
		}
		layers = append(layers, l)
	}

	return &Network{layers: layers}, nil
}
