// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import "github.com/snaketune/snaketune/internal/activation"

// Function is a nonlinearity with a closed-form derivative on its output.
type Function = activation.Function

// Sigmoid is the logistic function.
type Sigmoid = activation.Sigmoid

// ReLU is the rectified linear unit.
type ReLU = activation.ReLU

// Tanh is the hyperbolic tangent.
type Tanh = activation.Tanh

// Identity passes its input through unchanged.
type Identity = activation.Identity

// ErrUnknownActivation is returned by ByName for unrecognized names.
var ErrUnknownActivation = activation.ErrUnknownActivation

// ByName returns the Function registered under name (case-insensitive).
//
// Example:
//
//	act, err := activation.ByName("sigmoid")
func ByName(name string) (Function, error) {
	return activation.ByName(name)
}
