package optim

import (
	"fmt"

	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
	"github.com/snaketune/snaketune/internal/parallel"
	"gonum.org/v1/gonum/floats"
)

// SGD trains an nn.Eval with the batched delta rule.
//
// Update rule for a batch of B entries:
//
//	guess = act(Forward(x))
//	grad += DerivativeVector(x) * act'(guess) * (target - guess)
//	w    += grad * lr / B
//
// Per-entry contributions may be computed concurrently (SGDConfig.Parallel),
// but they are always summed in batch order, so a step is bit-reproducible.
//
// Example:
//
//	sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: 0.1})
//	loss, err := sgd.Step(loader.Sample())
type SGD[E data.Entry] struct {
	model nn.Eval
	lr    float64
	par   parallel.Config
	steps int
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.1)
	Parallel bool    // Compute per-entry contributions on multiple goroutines.
}

// NewSGD creates a batched delta-rule optimizer for model.
//
// A zero LR selects the default of 0.1; negative or non-finite values return
// ErrInvalidLR.
func NewSGD[E data.Entry](model nn.Eval, config SGDConfig) (*SGD[E], error) {
	if model == nil {
		return nil, fmt.Errorf("sgd: %w", ErrNilModel)
	}
	if config.LR == 0 {
		config.LR = 0.1
	}
	if err := validateLR(config.LR); err != nil {
		return nil, fmt.Errorf("sgd: %w", err)
	}

	par := parallel.Sequential()
	if config.Parallel {
		par = parallel.DefaultConfig()
	}
	return &SGD[E]{model: model, lr: config.LR, par: par}, nil
}

// Step performs one delta-rule update over batch.
func (s *SGD[E]) Step(batch []E) (float64, error) {
	if err := checkBatch("sgd", batch, s.model.InputDim()); err != nil {
		return 0, err
	}

	act := s.model.Activation()
	contrib := make([][]float64, len(batch))
	squared := make([]float64, len(batch))

	parallel.For(len(batch), func(i int) {
		x := batch[i].Inputs()
		guess := act.Evaluate(s.model.Forward(x))
		diff := batch[i].ExpectedOutput() - guess

		d := s.model.DerivativeVector(x)
		floats.Scale(act.Derivative(guess)*diff, d)
		contrib[i] = d
		squared[i] = diff * diff
	}, s.par)

	grad := make([]float64, s.model.WeightCount())
	for _, c := range contrib {
		floats.Add(grad, c)
	}
	floats.Scale(s.lr/float64(len(batch)), grad)
	s.model.NudgeWeights(grad)
	s.steps++

	return floats.Sum(squared) / float64(len(batch)), nil
}

// Reset zeroes the step counter.
func (s *SGD[E]) Reset() {
	s.steps = 0
}

// LR returns the learning rate.
func (s *SGD[E]) LR() float64 {
	return s.lr
}

// Steps returns the number of updates applied since construction or Reset.
func (s *SGD[E]) Steps() int {
	return s.steps
}
