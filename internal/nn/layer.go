package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/snaketune/snaketune/internal/activation"
	"gonum.org/v1/gonum/mat"
)

// Layer is a fully connected layer with its own back-propagation step.
//
// Performs the transformation: y = act(W · x + b)
// where:
//   - x is the input vector with length in
//   - W is the weight matrix with shape [out, in]
//   - b is the bias vector with length out
//   - y is the output vector with length out
type Layer struct {
	in      int
	out     int
	weights *mat.Dense    // [out, in]
	bias    *mat.VecDense // [out]
	act     activation.Function
}

// NewLayer creates a layer with Xavier-initialized weights and zero bias.
//
// A nil rng uses a randomly seeded generator.
func NewLayer(in, out int, act activation.Function, rng *rand.Rand) (*Layer, error) {
	if in < 1 || out < 1 {
		return nil, fmt.Errorf("layer %dx%d: %w", out, in, ErrInvalidLayerSize)
	}
	if act == nil {
		return nil, fmt.Errorf("layer: %w", ErrNilActivation)
	}
	return &Layer{
		in:      in,
		out:     out,
		weights: mat.NewDense(out, in, Xavier(newRand(rng), in, out, out*in)),
		bias:    mat.NewVecDense(out, nil),
		act:     act,
	}, nil
}

// LayerFromWeights creates a layer from explicit weights (one row per output) and bias.
func LayerFromWeights(weights [][]float64, bias []float64, act activation.Function) (*Layer, error) {
	out := len(weights)
	if out < 1 || len(weights[0]) < 1 {
		return nil, fmt.Errorf("layer: %w", ErrInvalidLayerSize)
	}
	if act == nil {
		return nil, fmt.Errorf("layer: %w", ErrNilActivation)
	}
	in := len(weights[0])
	if len(bias) != out {
		return nil, fmt.Errorf("layer: %w: bias has %d values, want %d", ErrShapeMismatch, len(bias), out)
	}

	data := make([]float64, 0, out*in)
	for i, row := range weights {
		if len(row) != in {
			return nil, fmt.Errorf("layer: %w: row %d has %d values, want %d", ErrShapeMismatch, i, len(row), in)
		}
		data = append(data, row...)
	}

	return &Layer{
		in:      in,
		out:     out,
		weights: mat.NewDense(out, in, data),
		bias:    mat.NewVecDense(out, append([]float64(nil), bias...)),
		act:     act,
	}, nil
}

// Forward computes act(W · input + b).
func (l *Layer) Forward(input mat.Vector) *mat.VecDense {
	if input.Len() != l.in {
		panic(fmt.Sprintf("Layer.Forward: expected input with %d values, got %d", l.in, input.Len()))
	}

	z := mat.NewVecDense(l.out, nil)
	z.MulVec(l.weights, input)
	z.AddVec(z, l.bias)
	for i := 0; i < l.out; i++ {
		z.SetVec(i, l.act.Evaluate(z.AtVec(i)))
	}
	return z
}

// Backprop applies one gradient step to the layer and returns the error for
// the preceding layer.
//
// Given the error at this layer's output, the cached output of Forward and
// the input that produced it:
//
//	gradient = act'(output) ⊙ outErr × lr
//	prevErr  = Wᵀ · outErr          (weights before this update)
//	W       += gradient · inputᵀ
//	b       += gradient
func (l *Layer) Backprop(outErr, output, input mat.Vector, lr float64) *mat.VecDense {
	if outErr.Len() != l.out || output.Len() != l.out || input.Len() != l.in {
		panic(fmt.Sprintf("Layer.Backprop: expected [%d]/[%d]/[%d] vectors, got [%d]/[%d]/[%d]",
			l.out, l.out, l.in, outErr.Len(), output.Len(), input.Len()))
	}

	gradient := mat.NewVecDense(l.out, nil)
	for i := 0; i < l.out; i++ {
		gradient.SetVec(i, l.act.Derivative(output.AtVec(i))*outErr.AtVec(i)*lr)
	}

	// Propagated error uses the pre-update weights.
	prevErr := mat.NewVecDense(l.in, nil)
	prevErr.MulVec(l.weights.T(), outErr)

	var delta mat.Dense
	delta.Outer(1, gradient, input)
	l.weights.Add(l.weights, &delta)
	l.bias.AddVec(l.bias, gradient)

	return prevErr
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.in
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return l.out
}

// Activation returns the layer's activation function.
func (l *Layer) Activation() activation.Function {
	return l.act
}

// Weights returns a copy of the weight matrix, one row per output.
func (l *Layer) Weights() [][]float64 {
	rows := make([][]float64, l.out)
	for i := range rows {
		rows[i] = mat.Row(nil, i, l.weights)
	}
	return rows
}

// Bias returns a copy of the bias vector.
func (l *Layer) Bias() []float64 {
	return mat.Col(nil, 0, l.bias)
}
