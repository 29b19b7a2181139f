package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/snaketune/snaketune/internal/activation"
	"gonum.org/v1/gonum/mat"
)

// Linear is a single linear unit: y = act(x · w).
//
// The unit has one weight per input and no separate bias; append a constant
// 1 to every feature vector when an intercept is needed.
//
// Example:
//
//	unit, err := nn.NewLinear(3, activation.Sigmoid{}, rng)
//	y := unit.Predict([]float64{0.5, 1, 1})
type Linear struct {
	weights *mat.VecDense // [dim]
	act     activation.Function
}

// NewLinear creates a linear unit with weights drawn from U[0, 1).
//
// A nil rng uses a randomly seeded generator.
func NewLinear(dim int, act activation.Function, rng *rand.Rand) (*Linear, error) {
	if dim < 1 {
		return nil, fmt.Errorf("linear: %w (got %d)", ErrInvalidDimension, dim)
	}
	return LinearFromWeights(Uniform(newRand(rng), dim), act)
}

// LinearFromWeights creates a linear unit with a copy of the given weights.
func LinearFromWeights(weights []float64, act activation.Function) (*Linear, error) {
	if len(weights) < 1 {
		return nil, fmt.Errorf("linear: %w (got %d)", ErrInvalidDimension, len(weights))
	}
	if act == nil {
		return nil, fmt.Errorf("linear: %w", ErrNilActivation)
	}
	w := append([]float64(nil), weights...)
	return &Linear{
		weights: mat.NewVecDense(len(w), w),
		act:     act,
	}, nil
}

// Forward returns the dot product of inputs and weights.
func (l *Linear) Forward(inputs []float64) float64 {
	l.checkLen("Forward", len(inputs))
	return mat.Dot(mat.NewVecDense(len(inputs), inputs), l.weights)
}

// Predict returns act(Forward(inputs)).
func (l *Linear) Predict(inputs []float64) float64 {
	return l.act.Evaluate(l.Forward(inputs))
}

// DerivativeVector returns a copy of inputs: Forward is linear in the
// weights, so ∂Forward/∂w_i = x_i.
func (l *Linear) DerivativeVector(inputs []float64) []float64 {
	l.checkLen("DerivativeVector", len(inputs))
	return append([]float64(nil), inputs...)
}

// NudgeWeights adds delta to the weights in place.
func (l *Linear) NudgeWeights(delta []float64) {
	l.checkLen("NudgeWeights", len(delta))
	l.weights.AddVec(l.weights, mat.NewVecDense(len(delta), delta))
}

// Activation returns the unit's activation function.
func (l *Linear) Activation() activation.Function {
	return l.act
}

// Weights returns a copy of the weight vector.
func (l *Linear) Weights() []float64 {
	return mat.Col(nil, 0, l.weights)
}

// InputDim returns the number of inputs.
func (l *Linear) InputDim() int {
	return l.weights.Len()
}

// WeightCount returns the number of weights, equal to InputDim.
func (l *Linear) WeightCount() int {
	return l.weights.Len()
}

func (l *Linear) checkLen(op string, n int) {
	if n != l.weights.Len() {
		panic(fmt.Sprintf("Linear.%s: expected %d values, got %d", op, l.weights.Len(), n))
	}
}
