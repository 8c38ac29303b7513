// Package activation_test contains unit tests for the activation capability
// set and its tag parsing.
package activation_test

import (
	"math"
	"testing"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/stretchr/testify/require"
)

// TestReLU verifies Apply and ApplyDerivative on both sides of zero.
func TestReLU(t *testing.T) {
	require.Equal(t, 0.0, activation.ReLU.Apply(-2.5))     // negative input clamps to 0
	require.Equal(t, 3.25, activation.ReLU.Apply(3.25))    // positive input passes through
	require.Equal(t, 0.0, activation.ReLU.ApplyDerivative(-1)) // flat on the negative side
	require.Equal(t, 1.0, activation.ReLU.ApplyDerivative(1))  // unit slope on the positive side
	require.Equal(t, 0.0, activation.ReLU.ApplyDerivative(0))  // derivative at 0 is 0 by convention
}

// TestSigmoid verifies the logistic midpoint and its derivative identity.
func TestSigmoid(t *testing.T) {
	require.Equal(t, 0.5, activation.Sigmoid.Apply(0)) // logistic midpoint

	// derivative must equal s(x)*(1-s(x)) at arbitrary x
	x := 0.73
	s := activation.Sigmoid.Apply(x)
	require.InDelta(t, s*(1-s), activation.Sigmoid.ApplyDerivative(x), 1e-15)
}

// TestTanh verifies the derivative identity 1 - tanh²(x).
func TestTanh(t *testing.T) {
	x := -1.2
	tv := math.Tanh(x)
	require.Equal(t, tv, activation.Tanh.Apply(x))
	require.InDelta(t, 1-tv*tv, activation.Tanh.ApplyDerivative(x), 1e-15)
}

// TestIdentity verifies the linear pass-through and unit derivative.
func TestIdentity(t *testing.T) {
	require.Equal(t, -4.5, activation.Identity.Apply(-4.5))
	require.Equal(t, 1.0, activation.Identity.ApplyDerivative(123))
}

// TestParseRoundTrip ensures every member's tag parses back to that member.
func TestParseRoundTrip(t *testing.T) {
	for _, f := range []activation.Func{
		activation.ReLU,
		activation.Sigmoid,
		activation.Tanh,
		activation.Identity,
	} {
		got, err := activation.Parse(f.String())
		require.NoError(t, err)      // known tag must parse
		require.Equal(t, f, got)     // and resolve to the same member
	}
}

// TestParseUnknown ensures unknown tags fail with the sentinel.
func TestParseUnknown(t *testing.T) {
	_, err := activation.Parse("softplus")
	require.ErrorIs(t, err, activation.ErrUnknownActivation)
}
