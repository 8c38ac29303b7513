package layer

import (
	"fmt"

	"github.com/neocoretechs/imgclf/matrix"
	"github.com/neocoretechs/imgclf/pool"
)

// biasSentinel is the fixed value of the last input slot. The matching bias
// weight in each row learns the additive offset against this constant.
const biasSentinel = -1.0

// Layer is one fully connected layer: a weight matrix plus the transient
// buffers of the current forward/backward cycle.
//
// Invariants: weights.Cols() == len(lastInput), weights.Rows() ==
// len(lastOutput), and lastInput's final slot holds biasSentinel for the
// layer's whole lifetime. Both training regimes (PropagateError and the
// genetic operators on Matrix()) mutate the same weight storage; they must
// never run concurrently on one instance.
type Layer struct {
	weights    *matrix.Dense
	lastInput  []float64 // input nodes + trailing bias sentinel
	lastOutput []float64 // one slot per output node
}

// NumInputs returns the number of upstream nodes, excluding the bias column.
func (l *Layer) NumInputs() int { return l.weights.Cols() - 1 }

// NumNodes returns the number of output nodes.
func (l *Layer) NumNodes() int { return l.weights.Rows() }

// Matrix returns the owned weight matrix — the genome view. Callers may run
// the genetic operators on it, but never concurrently with ComputeOutput or
// PropagateError on this layer.
func (l *Layer) Matrix() *matrix.Dense { return l.weights }

// Weights exports the weight grid as a fresh 2D slice for the persistence
// boundary; pair it with ActivationName.
func (l *Layer) Weights() [][]float64 { return l.weights.RowsCopy() }

// ActivationName returns the stable tag of the bound activation.
func (l *Layer) ActivationName() string { return l.weights.Activation().String() }

// ComputeOutput runs the forward pass: copies input into the first
// NumInputs slots of the input buffer (the bias slot is never overwritten),
// computes activation(weights · lastInput) through the matrix primitives,
// and returns a copy of the output vector.
//
// The call overwrites both transient buffers; it is not reentrant for
// concurrent calls on the same Layer.
//
// Errors:
//   - ErrLengthMismatch when len(input) != NumInputs(), raised before any
//     state mutation.
func (l *Layer) ComputeOutput(input []float64) ([]float64, error) {
	if len(input) != l.NumInputs() {
		return nil, fmt.Errorf("input length %d, want %d: %w",
			len(input), l.NumInputs(), ErrLengthMismatch)
	}

	copy(l.lastInput, input) // bias slot beyond len(input) stays intact

	col, err := l.weights.ColumnFromSlice(l.lastInput)
	if err != nil {
		return nil, err
	}
	pre, err := l.weights.Dot(col)
	if err != nil {
		return nil, err
	}
	copy(l.lastOutput, pre.Activate().ToSlice())

	out := make([]float64, len(l.lastOutput))
	copy(out, l.lastOutput)

	return out, nil
}

// PropagateError runs the backward pass for one upstream error vector.
//
// For each input index i (the bias column is excluded) it computes
//
//	delta[i] = Σ_j upstream[j] · weights[j,i] · f'(lastInput[i])
//
// where f' is the bound activation derivative. The derivative is evaluated
// at the layer's raw input value, not at the pre-activation sum of node j;
// previously trained weight sets depend on this exact formula, so it must
// not change.
//
// The per-index contributions are independent, so they are mapped over the
// supplied executor; each index owns its delta slot and the inner j loop is
// serial and ordered, which makes the parallel reduction bit-identical to
// the serial one. A nil executor runs serially. Strictly after the
// reduction joins, the weights are updated in place:
//
//	weights -= learningRate · outer(upstream, lastInput)
//
// Errors:
//   - ErrLengthMismatch when len(upstream) != NumNodes(), raised before any
//     state mutation.
func (l *Layer) PropagateError(upstream []float64, learningRate float64, exec pool.Executor) ([]float64, error) {
	if len(upstream) != l.NumNodes() {
		return nil, fmt.Errorf("error length %d, want %d: %w",
			len(upstream), l.NumNodes(), ErrLengthMismatch)
	}

	// Snapshot the grid so the reduction reads a stable view while the
	// executor fans out; the update below targets the live matrix.
	grid := l.weights.RowsCopy()
	act := l.weights.Activation()

	delta := make([]float64, l.NumInputs()) // bias column carries no error
	pool.Run(exec, len(delta), func(i int) {
		d := act.ApplyDerivative(l.lastInput[i])
		sum := 0.0
		for j := range grid { // fixed order j=0..nodes-1
			// d multiplies per term; factoring it out changes the rounding
			sum += upstream[j] * grid[j][i] * d
		}
		delta[i] = sum
	})

	// Weight update happens strictly after every contribution is collected.
	if err := l.weights.SubOuterScaled(upstream, l.lastInput, learningRate); err != nil {
		return nil, err
	}

	return delta, nil
}

// String describes the layer in the traditional banner format.
func (l *Layer) String() string {
	return fmt.Sprintf(
		"\n------\tFully Connected Layer\t------\n\nNumber of inputs: %d (plus a bias)\nNumber of nodes: %d\nActivation function: %s\n\n\t------------\t\n",
		l.NumInputs(), l.NumNodes(), l.ActivationName())
}
