package activation

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownActivation indicates that a tag does not name a known member of
// the activation set. Parse returns it wrapped with the offending tag.
var ErrUnknownActivation = errors.New("activation: unknown activation tag")

// Func is the activation capability bound to a matrix or layer at
// construction time.
//
// Apply maps a pre-activation value to an activation; ApplyDerivative maps a
// value to the derivative of Apply at that value. String returns the stable
// tag used by Parse and by external persistence collaborators.
type Func interface {
	Apply(x float64) float64
	ApplyDerivative(x float64) float64
	fmt.Stringer
}

// Stable tags for the closed activation set.
const (
	TagReLU     = "relu"
	TagSigmoid  = "sigmoid"
	TagTanh     = "tanh"
	TagIdentity = "identity"
)

// ReLU is max(0, x); derivative is 1 for x > 0, else 0.
var ReLU Func = reluFunc{}

// Sigmoid is the logistic function 1/(1+e^-x); derivative is s(x)·(1-s(x)).
var Sigmoid Func = sigmoidFunc{}

// Tanh is the hyperbolic tangent; derivative is 1 - tanh²(x).
var Tanh Func = tanhFunc{}

// Identity is the linear pass-through; derivative is 1. Useful for tests and
// for output layers that defer squashing to an external classifier.
var Identity Func = identityFunc{}

// Parse resolves a stable tag back into its Func.
// Returns ErrUnknownActivation (wrapped with the tag) for anything else.
func Parse(tag string) (Func, error) {
	switch tag {
	case TagReLU:
		return ReLU, nil
	case TagSigmoid:
		return Sigmoid, nil
	case TagTanh:
		return Tanh, nil
	case TagIdentity:
		return Identity, nil
	default:
		return nil, fmt.Errorf("%q: %w", tag, ErrUnknownActivation)
	}
}

type reluFunc struct{}

func (reluFunc) Apply(x float64) float64 { return math.Max(0, x) }

func (reluFunc) ApplyDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

func (reluFunc) String() string { return TagReLU }

type sigmoidFunc struct{}

func (sigmoidFunc) Apply(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func (sigmoidFunc) ApplyDerivative(x float64) float64 {
	s := 1 / (1 + math.Exp(-x))
	return s * (1 - s)
}

func (sigmoidFunc) String() string { return TagSigmoid }

type tanhFunc struct{}

func (tanhFunc) Apply(x float64) float64 { return math.Tanh(x) }

func (tanhFunc) ApplyDerivative(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}

func (tanhFunc) String() string { return TagTanh }

type identityFunc struct{}

func (identityFunc) Apply(x float64) float64 { return x }

func (identityFunc) ApplyDerivative(float64) float64 { return 1 }

func (identityFunc) String() string { return TagIdentity }
