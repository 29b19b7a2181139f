// Package optim implements the update rules that train snaketune models.
//
// This package provides:
//   - Optimizer interface: one training step over a batch of entries
//   - SGD: batched delta rule for linear-in-the-weights models (nn.Eval)
//   - Backprop: online per-entry back-propagation for nn.Net
//
// Example usage:
//
//	opt, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: 0.1})
//
//	for range steps {
//	    loss, err := opt.Step(loader.Sample())
//	    if err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"errors"
	"fmt"
	"math"

	"github.com/snaketune/snaketune/internal/data"
)

// Common errors.
var (
	ErrInvalidLR  = errors.New("learning rate must be positive and finite")
	ErrEmptyBatch = errors.New("batch is empty")
	ErrOutputDim  = errors.New("model must have exactly one output")
	ErrNilModel   = errors.New("model is nil")
)

// Optimizer is the base interface for all update rules.
//
// An Optimizer owns nothing but its hyperparameters and a reference to the
// model it trains. Steps against the same model must be serialized by the
// caller.
type Optimizer[E data.Entry] interface {
	// Step applies one update using every entry in batch.
	//
	// Returns the mean squared error of the batch measured before the update.
	// An empty batch or an entry whose input length differs from the model's
	// is rejected before any weight changes.
	Step(batch []E) (float64, error)

	// Reset clears per-run state such as the step counter.
	Reset()

	// LR returns the learning rate.
	LR() float64
}

// validateLR rejects learning rates that cannot drive a meaningful update.
func validateLR(lr float64) error {
	if lr <= 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidLR, lr)
	}
	return nil
}

// checkBatch validates batch size and input dimensionality.
func checkBatch[E data.Entry](op string, batch []E, dim int) error {
	if len(batch) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyBatch)
	}
	for i, e := range batch {
		if n := len(e.Inputs()); n != dim {
			return fmt.Errorf("%s: entry %d: %w: got %d inputs, want %d",
				op, i, data.ErrDimensionMismatch, n, dim)
		}
	}
	return nil
}
