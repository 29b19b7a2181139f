// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the trainable models of snaketune.
//
// # Overview
//
// This package contains:
//   - Linear: a single unit, act(x · w), trained with the batched delta rule
//   - Layer: a dense layer, act(W·x + b), with its own back-propagation step
//   - Net: a feed-forward stack of Layers trained one example at a time
//   - Model and Eval: the capabilities optimizers and tuners depend on
//   - MSE: mean squared error of a Model over a set of entries
//
// # Basic Usage
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	net, err := nn.NewNet([]int{2, 2, 1}, activation.Sigmoid{}, rng)
//	if err != nil {
//	    return err
//	}
//
//	for range 100000 {
//	    net.Backward([]float64{0, 1}, []float64{1}, 0.1)
//	}
//	y := net.Predict([]float64{0, 1})
//
// # Initialization
//
// NewLinear draws weights from U[0, 1). NewLayer and NewNet use Xavier
// uniform weights and zero biases. LinearFromWeights and LayerFromWeights
// take explicit values.
//
// # Back-propagation
//
// Layer.Backprop scales the output error by the activation slope and the
// learning rate, hands Wᵀ·error (computed with the weights before the
// update) to the previous layer, then updates its weights and bias.
package nn
