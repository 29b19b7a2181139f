// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/snaketune/snaketune/internal/activation"
	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
)

// Model is the capability shared by Linear and Net.
type Model = nn.Model

// Eval is a model whose output is linear in its weights before activation.
type Eval = nn.Eval

// Linear is a single linear unit: y = act(x · w).
type Linear = nn.Linear

// Layer is a fully connected layer with its own back-propagation step.
type Layer = nn.Layer

// Net is a multilayer feed-forward network.
type Net = nn.Net

// Errors returned by this package.
var (
	ErrInvalidDimension = nn.ErrInvalidDimension
	ErrNilActivation    = nn.ErrNilActivation
	ErrEmptyLayerSizes  = nn.ErrEmptyLayerSizes
	ErrInvalidLayerSize = nn.ErrInvalidLayerSize
	ErrLayerMismatch    = nn.ErrLayerMismatch
	ErrShapeMismatch    = nn.ErrShapeMismatch
)

// NewLinear creates a linear unit with weights drawn from U[0, 1).
//
// A nil rng uses a randomly seeded generator.
func NewLinear(dim int, act activation.Function, rng *rand.Rand) (*Linear, error) {
	return nn.NewLinear(dim, act, rng)
}

// LinearFromWeights creates a linear unit with a copy of weights.
func LinearFromWeights(weights []float64, act activation.Function) (*Linear, error) {
	return nn.LinearFromWeights(weights, act)
}

// NewLayer creates a dense layer with Xavier weights and zero bias.
func NewLayer(in, out int, act activation.Function, rng *rand.Rand) (*Layer, error) {
	return nn.NewLayer(in, out, act, rng)
}

// LayerFromWeights creates a dense layer from explicit weights and bias.
func LayerFromWeights(weights [][]float64, bias []float64, act activation.Function) (*Layer, error) {
	return nn.LayerFromWeights(weights, bias, act)
}

// NewNet creates a network from layer sizes, input first and output last.
//
// Example:
//
//	net, err := nn.NewNet([]int{2, 2, 1}, activation.Sigmoid{}, rng)
func NewNet(layerSizes []int, act activation.Function, rng *rand.Rand) (*Net, error) {
	return nn.NewNet(layerSizes, act, rng)
}

// NetFromLayers chains existing layers into a network.
func NetFromLayers(layers ...*Layer) (*Net, error) {
	return nn.NetFromLayers(layers...)
}

// MSE returns the mean squared error of m over entries.
func MSE[E data.Entry](m Model, entries []E) float64 {
	return nn.MSE(m, entries)
}
