// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the nonlinearities used by snaketune models.
//
// # Overview
//
// Every Function pairs Evaluate with Derivative. Derivative takes the
// already-activated output, not the pre-activation input:
//
//	y := act.Evaluate(x)
//	slope := act.Derivative(y)
//
// Available functions:
//   - Sigmoid: 1/(1+e^-x), slope y*(1-y)
//   - ReLU: max(0, x), slope 1 for y >= 0
//   - Tanh: tanh(x), slope 1-y²
//   - Identity: x, slope 1
//
// ByName resolves configuration strings ("sigmoid", "relu", "tanh",
// "identity") to a Function.
package activation
