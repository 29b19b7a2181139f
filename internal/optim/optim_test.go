package optim_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/snaketune/snaketune/internal/activation"
	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
	"github.com/snaketune/snaketune/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// andSamples is logical AND with a constant bias input in the last column.
var andSamples = []data.Sample{
	{In: []float64{0, 0, 1}, Out: 0},
	{In: []float64{0, 1, 1}, Out: 0},
	{In: []float64{1, 0, 1}, Out: 0},
	{In: []float64{1, 1, 1}, Out: 1},
}

// TestSGD_SimpleUpdate checks one step against a hand-computed delta rule.
func TestSGD_SimpleUpdate(t *testing.T) {
	unit, err := nn.LinearFromWeights([]float64{0, 0}, activation.Identity{})
	require.NoError(t, err)

	sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: 0.5})
	require.NoError(t, err)

	loss, err := sgd.Step([]data.Sample{
		{In: []float64{1, 2}, Out: 1},
		{In: []float64{2, 0}, Out: 2},
	})
	require.NoError(t, err)

	// grad = [1,2]*1 + [2,0]*2 = [5,2]; scaled by 0.5/2.
	assert.InDelta(t, 2.5, loss, 1e-12)
	assert.InDeltaSlice(t, []float64{1.25, 0.5}, unit.Weights(), 1e-12)
	assert.Equal(t, 1, sgd.Steps())

	sgd.Reset()
	assert.Equal(t, 0, sgd.Steps())
	assert.Equal(t, 0.5, sgd.LR())
}

func TestSGD_DerivativeOnActivatedOutput(t *testing.T) {
	unit, err := nn.LinearFromWeights([]float64{0}, activation.Sigmoid{})
	require.NoError(t, err)
	sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: 1})
	require.NoError(t, err)

	_, err = sgd.Step([]data.Sample{{In: []float64{1}, Out: 1}})
	require.NoError(t, err)

	// guess = σ(0) = 0.5, σ' on output = 0.25, err = 0.5.
	assert.InDelta(t, 0.125, unit.Weights()[0], 1e-12)
}

func TestSGD_ConvergesOnAND(t *testing.T) {
	unit, err := nn.NewLinear(3, activation.Sigmoid{}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	loader, err := data.NewDataLoader[data.Sample](memory(t, andSamples), data.LoaderConfig{BatchSize: 4})
	require.NoError(t, err)

	sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	for range 100000 {
		_, err := sgd.Step(loader.Sample())
		require.NoError(t, err)
	}

	assert.Less(t, nn.MSE(unit, andSamples), 0.05)
	for _, s := range andSamples {
		assert.InDelta(t, s.Out, unit.Predict(s.In), 0.5, "input %v", s.In)
	}
}

func TestSGD_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	batch := make([]data.Sample, 256)
	for i := range batch {
		in := []float64{rng.Float64(), rng.Float64(), rng.Float64(), 1}
		batch[i] = data.Sample{In: in, Out: float64(i % 2)}
	}

	weights := []float64{0.1, 0.2, 0.3, 0.4}
	seqUnit, err := nn.LinearFromWeights(weights, activation.Sigmoid{})
	require.NoError(t, err)
	parUnit, err := nn.LinearFromWeights(weights, activation.Sigmoid{})
	require.NoError(t, err)

	seq, err := optim.NewSGD[data.Sample](seqUnit, optim.SGDConfig{LR: 0.3})
	require.NoError(t, err)
	par, err := optim.NewSGD[data.Sample](parUnit, optim.SGDConfig{LR: 0.3, Parallel: true})
	require.NoError(t, err)

	for range 50 {
		l1, err := seq.Step(batch)
		require.NoError(t, err)
		l2, err := par.Step(batch)
		require.NoError(t, err)
		require.Equal(t, l1, l2)
	}
	assert.Equal(t, seqUnit.Weights(), parUnit.Weights())
}

func TestSGD_Errors(t *testing.T) {
	_, err := optim.NewSGD[data.Sample](nil, optim.SGDConfig{})
	require.ErrorIs(t, err, optim.ErrNilModel)

	unit, err := nn.LinearFromWeights([]float64{1, 2}, activation.Sigmoid{})
	require.NoError(t, err)

	for _, lr := range []float64{-0.1, math.Inf(1), math.NaN()} {
		_, err = optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: lr})
		require.ErrorIs(t, err, optim.ErrInvalidLR, "lr %v", lr)
	}

	sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{})
	require.NoError(t, err)
	assert.Equal(t, 0.1, sgd.LR())

	_, err = sgd.Step(nil)
	require.ErrorIs(t, err, optim.ErrEmptyBatch)

	_, err = sgd.Step([]data.Sample{
		{In: []float64{1, 2}, Out: 1},
		{In: []float64{1, 2, 3}, Out: 1},
	})
	require.ErrorIs(t, err, data.ErrDimensionMismatch)

	// Rejected batches leave the weights alone.
	assert.Equal(t, []float64{1, 2}, unit.Weights())
	assert.Equal(t, 0, sgd.Steps())
}

func TestBackprop_MatchesOnlineBackward(t *testing.T) {
	build := func() *nn.Net {
		net, err := nn.NewNet([]int{2, 3, 1}, activation.Sigmoid{}, rand.New(rand.NewPCG(5, 6)))
		require.NoError(t, err)
		return net
	}
	trained, manual := build(), build()

	batch := []data.Sample{
		{In: []float64{0, 1}, Out: 1},
		{In: []float64{1, 1}, Out: 0},
		{In: []float64{1, 0}, Out: 1},
	}

	bp, err := optim.NewBackprop[data.Sample](trained, optim.BackpropConfig{LR: 0.2})
	require.NoError(t, err)
	loss, err := bp.Step(batch)
	require.NoError(t, err)

	var sum float64
	for _, s := range batch {
		sum += manual.Backward(s.In, []float64{s.Out}, 0.2)
	}

	assert.Equal(t, sum/3, loss)
	for i := range trained.Len() {
		assert.Equal(t, manual.Layer(i).Weights(), trained.Layer(i).Weights())
		assert.Equal(t, manual.Layer(i).Bias(), trained.Layer(i).Bias())
	}
	assert.Equal(t, 1, bp.Steps())
	assert.Equal(t, 0.2, bp.LR())
}

func TestBackprop_Errors(t *testing.T) {
	_, err := optim.NewBackprop[data.Sample](nil, optim.BackpropConfig{})
	require.ErrorIs(t, err, optim.ErrNilModel)

	wide, err := nn.NewNet([]int{2, 2, 2}, activation.Sigmoid{}, nil)
	require.NoError(t, err)
	_, err = optim.NewBackprop[data.Sample](wide, optim.BackpropConfig{})
	require.ErrorIs(t, err, optim.ErrOutputDim)

	net, err := nn.NewNet([]int{2, 2, 1}, activation.Sigmoid{}, nil)
	require.NoError(t, err)
	_, err = optim.NewBackprop[data.Sample](net, optim.BackpropConfig{LR: -1})
	require.ErrorIs(t, err, optim.ErrInvalidLR)

	bp, err := optim.NewBackprop[data.Sample](net, optim.BackpropConfig{})
	require.NoError(t, err)

	_, err = bp.Step([]data.Sample{})
	require.ErrorIs(t, err, optim.ErrEmptyBatch)

	_, err = bp.Step([]data.Sample{{In: []float64{1}, Out: 0}})
	require.ErrorIs(t, err, data.ErrDimensionMismatch)
}

func memory(t *testing.T, samples []data.Sample) *data.Memory {
	t.Helper()
	inputs := make([][]float64, len(samples))
	outputs := make([]float64, len(samples))
	for i, s := range samples {
		inputs[i] = s.In
		outputs[i] = s.Out
	}
	db, err := data.NewMemory(inputs, outputs)
	require.NoError(t, err)
	return db
}
