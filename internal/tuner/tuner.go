// Package tuner drives training: it samples batches from a DataLoader and
// hands them to an Optimizer that updates the model in place.
package tuner

import (
	"context"
	"errors"
	"fmt"

	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
	"github.com/snaketune/snaketune/internal/optim"
	"go.uber.org/zap"
)

// Common errors.
var (
	ErrNilComponent = errors.New("loader, optimizer and model are required")
	ErrInvalidSteps = errors.New("step count must be >= 0")
)

// Config holds configuration for a Tuner.
type Config struct {
	// LogEvery emits an Info record every LogEvery steps. Zero disables
	// periodic logging.
	LogEvery int

	// Logger receives training records. Nil selects zap.NewNop().
	Logger *zap.Logger
}

// Tuner owns a DataLoader, an Optimizer and the model the optimizer trains.
//
// Example:
//
//	t, err := tuner.NewNet(loader, 0.1, net, tuner.Config{})
//	loss, err := t.Run(ctx, 100000)
//	mse := t.Evaluate()
type Tuner[E data.Entry] struct {
	loader   *data.DataLoader[E]
	opt      optim.Optimizer[E]
	model    nn.Model
	logger   *zap.Logger
	logEvery int
	steps    int
}

// New creates a Tuner.
//
// The loader's entries must have the model's input dimensionality
// (data.ErrDimensionMismatch otherwise). opt must train model.
func New[E data.Entry](loader *data.DataLoader[E], opt optim.Optimizer[E], model nn.Model, cfg Config) (*Tuner[E], error) {
	if loader == nil || opt == nil || model == nil {
		return nil, fmt.Errorf("tuner: %w", ErrNilComponent)
	}
	if loader.Dim() != model.InputDim() {
		return nil, fmt.Errorf("tuner: %w: loader has %d inputs, model expects %d",
			data.ErrDimensionMismatch, loader.Dim(), model.InputDim())
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tuner[E]{
		loader:   loader,
		opt:      opt,
		model:    model,
		logger:   logger,
		logEvery: max(cfg.LogEvery, 0),
	}, nil
}

// NewLinear creates a Tuner training unit with the batched delta rule.
func NewLinear[E data.Entry](loader *data.DataLoader[E], lr float64, unit *nn.Linear, cfg Config) (*Tuner[E], error) {
	if unit == nil {
		return nil, fmt.Errorf("tuner: %w", ErrNilComponent)
	}
	opt, err := optim.NewSGD[E](unit, optim.SGDConfig{LR: lr})
	if err != nil {
		return nil, fmt.Errorf("tuner: %w", err)
	}
	return New[E](loader, opt, unit, cfg)
}

// NewNet creates a Tuner training net with online back-propagation.
func NewNet[E data.Entry](loader *data.DataLoader[E], lr float64, net *nn.Net, cfg Config) (*Tuner[E], error) {
	if net == nil {
		return nil, fmt.Errorf("tuner: %w", ErrNilComponent)
	}
	opt, err := optim.NewBackprop[E](net, optim.BackpropConfig{LR: lr})
	if err != nil {
		return nil, fmt.Errorf("tuner: %w", err)
	}
	return New[E](loader, opt, net, cfg)
}

// Step samples exactly one batch and applies one optimizer update.
//
// Returns the batch mean squared error measured before the update.
func (t *Tuner[E]) Step() (float64, error) {
	batch := t.loader.Sample()
	loss, err := t.opt.Step(batch)
	if err != nil {
		return 0, fmt.Errorf("tuner: step %d: %w", t.steps+1, err)
	}
	t.steps++

	if t.logEvery > 0 && t.steps%t.logEvery == 0 {
		t.logger.Info("training step",
			zap.Int("step", t.steps),
			zap.Int("batch_size", len(batch)),
			zap.Float64("loss", loss),
		)
	}
	return loss, nil
}

// Run calls Step steps times and returns the last batch loss.
//
// ctx is checked before every step; on cancellation Run returns the loss of
// the last completed step together with ctx.Err().
func (t *Tuner[E]) Run(ctx context.Context, steps int) (float64, error) {
	if steps < 0 {
		return 0, fmt.Errorf("tuner: %w (got %d)", ErrInvalidSteps, steps)
	}

	var loss float64
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return loss, err
		}
		l, err := t.Step()
		if err != nil {
			return loss, err
		}
		loss = l
	}

	t.logger.Debug("training run finished",
		zap.Int("steps", steps),
		zap.Int("total_steps", t.steps),
		zap.Float64("loss", loss),
	)
	return loss, nil
}

// Evaluate returns the mean squared error of the model over every loader entry.
func (t *Tuner[E]) Evaluate() float64 {
	return nn.MSE(t.model, t.loader.Entries())
}

// Steps returns the number of completed steps.
func (t *Tuner[E]) Steps() int {
	return t.steps
}

// Model returns the model being trained.
func (t *Tuner[E]) Model() nn.Model {
	return t.model
}

// LearningRate returns the optimizer's learning rate.
func (t *Tuner[E]) LearningRate() float64 {
	return t.opt.LR()
}
