// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tuner

import (
	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
	"github.com/snaketune/snaketune/internal/optim"
	"github.com/snaketune/snaketune/internal/tuner"
)

// Tuner samples batches and hands them to an optimizer.
type Tuner[E data.Entry] = tuner.Tuner[E]

// Config contains Tuner configuration.
type Config = tuner.Config

// Errors returned by this package.
var (
	ErrNilComponent = tuner.ErrNilComponent
	ErrInvalidSteps = tuner.ErrInvalidSteps
)

// New creates a Tuner from explicit components.
func New[E data.Entry](loader *data.DataLoader[E], opt optim.Optimizer[E], model nn.Model, cfg Config) (*Tuner[E], error) {
	return tuner.New(loader, opt, model, cfg)
}

// NewLinear creates a Tuner that trains unit with the batched delta rule.
func NewLinear[E data.Entry](loader *data.DataLoader[E], lr float64, unit *nn.Linear, cfg Config) (*Tuner[E], error) {
	return tuner.NewLinear(loader, lr, unit, cfg)
}

// NewNet creates a Tuner that trains net with online back-propagation.
func NewNet[E data.Entry](loader *data.DataLoader[E], lr float64, net *nn.Net, cfg Config) (*Tuner[E], error) {
	return tuner.NewNet(loader, lr, net, cfg)
}
