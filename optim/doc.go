// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the update rules that train snaketune models.
//
// # Overview
//
// This package contains:
//   - SGD: batched delta rule for nn.Linear (any nn.Eval)
//   - Backprop: online back-propagation for nn.Net
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: 0.1})
//	if err != nil {
//	    return err
//	}
//
//	for range steps {
//	    loss, err := sgd.Step(loader.Sample())
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Delta rule
//
// For a batch of B entries SGD accumulates
// DerivativeVector(x) · act'(guess) · (target − guess) in batch order and
// adds lr/B times the sum to the weights. With SGDConfig.Parallel the
// per-entry terms are computed concurrently; the summation order does not
// change, so results match the sequential path bit for bit.
package optim
