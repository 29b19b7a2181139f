// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
	"github.com/snaketune/snaketune/internal/optim"
)

// Optimizer applies one training step over a batch of entries.
type Optimizer[E data.Entry] = optim.Optimizer[E]

// Errors returned by this package.
var (
	ErrInvalidLR  = optim.ErrInvalidLR
	ErrEmptyBatch = optim.ErrEmptyBatch
	ErrOutputDim  = optim.ErrOutputDim
	ErrNilModel   = optim.ErrNilModel
)

// SGD (batched delta rule)

// SGD trains an nn.Eval with the batched delta rule.
type SGD[E data.Entry] = optim.SGD[E]

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates a batched delta-rule optimizer.
//
// Example:
//
//	unit, _ := nn.NewLinear(3, activation.Sigmoid{}, rng)
//	sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: 0.1})
func NewSGD[E data.Entry](model nn.Eval, config SGDConfig) (*SGD[E], error) {
	return optim.NewSGD[E](model, config)
}

// Backprop (online back-propagation)

// Backprop trains an nn.Net one entry at a time.
type Backprop[E data.Entry] = optim.Backprop[E]

// BackpropConfig contains configuration for Backprop.
type BackpropConfig = optim.BackpropConfig

// NewBackprop creates an online back-propagation optimizer.
//
// Example:
//
//	net, _ := nn.NewNet([]int{2, 2, 1}, activation.Sigmoid{}, rng)
//	bp, err := optim.NewBackprop[data.Sample](net, optim.BackpropConfig{LR: 0.1})
func NewBackprop[E data.Entry](net *nn.Net, config BackpropConfig) (*Backprop[E], error) {
	return optim.NewBackprop[E](net, config)
}
