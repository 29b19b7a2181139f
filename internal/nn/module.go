// Package nn implements the trainable models of snaketune.
//
// This package provides:
//   - Model: capability shared by every trainable model (input size + prediction)
//   - Eval: linear-in-the-weights models trained with the batched delta rule
//   - Linear: a single linear unit (dot product + activation)
//   - Layer: a dense layer with explicit back-propagation
//   - Net: a multilayer feed-forward network composed of Layers
//   - MSE: mean squared error of a model over a set of entries
//
// Weights are stored in gonum dense vectors and matrices. Parameters change
// only through NudgeWeights (Linear) or Backward (Net); Forward and Predict
// never mutate a model.
package nn

import (
	"errors"

	"github.com/snaketune/snaketune/internal/activation"
)

// Common errors.
var (
	ErrInvalidDimension = errors.New("dimension must be >= 1")
	ErrNilActivation    = errors.New("activation function is nil")
	ErrEmptyLayerSizes  = errors.New("net needs at least an input and an output size")
	ErrInvalidLayerSize = errors.New("layer size must be >= 1")
	ErrLayerMismatch    = errors.New("layer dimensions do not chain")
	ErrShapeMismatch    = errors.New("weight shape mismatch")
)

// Model is the capability shared by Linear and Net.
type Model interface {
	// InputDim returns the expected feature vector length.
	InputDim() int

	// Predict returns the activated scalar output for inputs.
	Predict(inputs []float64) float64
}

// Eval is a model whose output is linear in its weights before activation.
//
// The batched delta rule (optim.SGD) trains any Eval:
//
//	guess := act.Evaluate(e.Forward(x))
//	grad += e.DerivativeVector(x) * act.Derivative(guess) * (target - guess)
//	e.NudgeWeights(grad / batchSize * lr)
type Eval interface {
	Model

	// Activation returns the activation applied on top of Forward.
	Activation() activation.Function

	// Forward returns the pre-activation output.
	Forward(inputs []float64) float64

	// DerivativeVector returns ∂Forward/∂weight for every weight.
	DerivativeVector(inputs []float64) []float64

	// NudgeWeights adds delta to the weights in place.
	NudgeWeights(delta []float64)

	// WeightCount returns the number of trainable weights.
	WeightCount() int
}
