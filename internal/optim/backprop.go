package optim

import (
	"fmt"

	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
)

// Backprop trains an nn.Net with online back-propagation.
//
// Every entry of a batch updates the weights immediately, in batch order:
//
//	for _, e := range batch {
//	    net.Backward(e.Inputs(), []float64{e.ExpectedOutput()}, lr)
//	}
//
// There is no averaging over the batch; the batch only decides which entries
// are visited in one Step.
type Backprop[E data.Entry] struct {
	net   *nn.Net
	lr    float64
	steps int
}

// BackpropConfig holds configuration for Backprop.
type BackpropConfig struct {
	LR float64 // Learning rate (default: 0.1)
}

// NewBackprop creates an online back-propagation optimizer for net.
//
// The net must produce a single output (ErrOutputDim otherwise).
func NewBackprop[E data.Entry](net *nn.Net, config BackpropConfig) (*Backprop[E], error) {
	if net == nil {
		return nil, fmt.Errorf("backprop: %w", ErrNilModel)
	}
	if net.OutputDim() != 1 {
		return nil, fmt.Errorf("backprop: %w (got %d)", ErrOutputDim, net.OutputDim())
	}
	if config.LR == 0 {
		config.LR = 0.1
	}
	if err := validateLR(config.LR); err != nil {
		return nil, fmt.Errorf("backprop: %w", err)
	}
	return &Backprop[E]{net: net, lr: config.LR}, nil
}

// Step runs Backward once per entry and returns the mean squared error of
// the predictions made just before each entry's update.
func (b *Backprop[E]) Step(batch []E) (float64, error) {
	if err := checkBatch("backprop", batch, b.net.InputDim()); err != nil {
		return 0, err
	}

	target := make([]float64, 1)
	var sum float64
	for _, e := range batch {
		target[0] = e.ExpectedOutput()
		sum += b.net.Backward(e.Inputs(), target, b.lr)
	}
	b.steps++
	return sum / float64(len(batch)), nil
}

// Reset zeroes the step counter.
func (b *Backprop[E]) Reset() {
	b.steps = 0
}

// LR returns the learning rate.
func (b *Backprop[E]) LR() float64 {
	return b.lr
}

// Steps returns the number of batches processed since construction or Reset.
func (b *Backprop[E]) Steps() int {
	return b.steps
}
