// Package network - the classification/reporting boundary.
//
// The core trades only in flat numeric vectors; turning an output vector
// into a category is a thin softmax-argmax step kept here so drivers and
// fitness functions share one definition.

package network

import (
	"fmt"
	"math"

	"github.com/neocoretechs/imgclf/pool"
)

// Softmax maps an output vector to a probability distribution using the
// max-shifted form for numeric stability. An empty input yields nil.
func Softmax(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	maxv := values[0]
	for _, v := range values[1:] {
		if v > maxv {
			maxv = v
		}
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		out[i] = math.Exp(v - maxv)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}

	return out
}

// Classify returns the index of the most probable category for an output
// vector (softmax then argmax; ties resolve to the lowest index).
// Returns -1 for an empty vector.
func Classify(output []float64) int {
	probs := Softmax(output)
	best, bestProb := -1, -1.0
	for i, p := range probs {
		if p > bestProb {
			best, bestProb = i, p
		}
	}

	return best
}

// Sample pairs an input vector with its expected category index.
type Sample struct {
	Input []float64
	Label int
}

// Accuracy returns correctly-classified / total over the sample set.
//
// Errors:
//   - ErrNoSamples for an empty set.
//   - feed-forward errors pass through with the sample index attached.
func (n *Network) Accuracy(samples []Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}

	correct := 0
	for i, s := range samples {
		out, err := n.FeedForward(s.Input)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if Classify(out) == s.Label {
			correct++
		}
	}

	return float64(correct) / float64(len(samples)), nil
}

// TrainEpoch runs Train over every sample (one-hot targets over the output
// width) and returns the mean loss. Convenience for drivers; sample order
// is the caller's choice and is preserved.
func (n *Network) TrainEpoch(samples []Sample, learningRate float64, exec pool.Executor) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}

	width := n.NumOutputs()
	total := 0.0
	for i, s := range samples {
		target := make([]float64, width)
		if s.Label >= 0 && s.Label < width {
			target[s.Label] = 1
		}
		loss, err := n.Train(s.Input, target, learningRate, exec)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		total += loss
	}

	return total / float64(len(samples)), nil
}
