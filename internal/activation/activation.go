// Package activation implements the scalar nonlinearities used by snaketune models.
//
// Every activation is a pair of pure functions:
//   - Evaluate: the forward nonlinearity y = f(x)
//   - Derivative: the local slope used during back-propagation
//
// Derivative is always evaluated on the already-activated output y, not on
// the pre-activation x. For Sigmoid this avoids recomputing exp(-x):
//
//	y := act.Evaluate(x)
//	slope := act.Derivative(y) // y * (1 - y)
//
// Models and optimizers in this module follow that convention everywhere.
package activation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownActivation is returned by ByName for unregistered names.
var ErrUnknownActivation = errors.New("unknown activation function")

// Function is a stateless activation with its derivative.
type Function interface {
	// Evaluate applies the nonlinearity.
	Evaluate(x float64) float64

	// Derivative returns the slope given the activated output y = Evaluate(x).
	Derivative(y float64) float64
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Squashes values into (0, 1). Derivative takes the activated output:
// σ'(x) = y * (1 - y) where y = σ(x).
type Sigmoid struct{}

// Evaluate computes 1 / (1 + exp(-x)).
func (Sigmoid) Evaluate(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative computes y * (1 - y).
func (Sigmoid) Derivative(y float64) float64 {
	return y * (1.0 - y)
}

func (Sigmoid) String() string { return "sigmoid" }

// ReLU is the rectified linear unit f(x) = max(0, x).
type ReLU struct{}

// Evaluate computes max(0, x).
func (ReLU) Evaluate(x float64) float64 {
	return math.Max(0, x)
}

// Derivative returns 1 for non-negative values and 0 otherwise.
func (ReLU) Derivative(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return 0
}

func (ReLU) String() string { return "relu" }

// Tanh is the hyperbolic tangent. Derivative takes the activated output:
// tanh'(x) = 1 - y² where y = tanh(x).
type Tanh struct{}

// Evaluate computes tanh(x).
func (Tanh) Evaluate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - y².
func (Tanh) Derivative(y float64) float64 {
	return 1.0 - y*y
}

func (Tanh) String() string { return "tanh" }

// Identity passes values through unchanged. Useful for plain linear regression.
type Identity struct{}

// Evaluate returns x.
func (Identity) Evaluate(x float64) float64 {
	return x
}

// Derivative is constant 1.
func (Identity) Derivative(float64) float64 {
	return 1
}

func (Identity) String() string { return "identity" }

// ByName resolves an activation from its configuration name.
//
// Recognized names (case-insensitive): sigmoid, relu, tanh, identity.
func ByName(name string) (Function, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid":
		return Sigmoid{}, nil
	case "relu":
		return ReLU{}, nil
	case "tanh":
		return Tanh{}, nil
	case "identity", "linear":
		return Identity{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}
