package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snaketune/snaketune/internal/activation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
model: linear
activation: ReLU
batch_size: 4
shuffle: false
seed: 42
learning_rate: 0.05
steps: 500
log_every: 0
parallel: true
`))
	require.NoError(t, err)

	assert.Equal(t, ModelLinear, cfg.Model)
	assert.Equal(t, 4, cfg.BatchSize)
	assert.False(t, cfg.Shuffle)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, 500, cfg.Steps)
	assert.Equal(t, 0, cfg.LogEvery)
	assert.True(t, cfg.Parallel)

	act, err := cfg.ActivationFunc()
	require.NoError(t, err)
	assert.Equal(t, activation.ReLU{}, act)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("hidden_sizes: [8, 4]\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, []int{8, 4}, cfg.HiddenSizes)
	assert.Equal(t, def.Model, cfg.Model)
	assert.Equal(t, def.BatchSize, cfg.BatchSize)
	assert.Equal(t, def.LearningRate, cfg.LearningRate)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("learning_rat: 0.1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learning_rat")
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := &Config{
		Model:        ModelNet,
		Activation:   "softmax",
		HiddenSizes:  []int{2, 0},
		BatchSize:    0,
		LearningRate: -1,
		Steps:        -5,
		LogEvery:     -1,
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, activation.ErrUnknownActivation)
	assert.Len(t, multierr.Errors(err), 6)

	cfg.Model = "tree"
	err = cfg.Validate()
	// hidden_sizes is only checked for nets.
	assert.Len(t, multierr.Errors(err), 6)
	assert.Contains(t, err.Error(), `"tree"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: 123\nseed: 9\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 123, cfg.Steps)
	assert.Equal(t, uint64(9), cfg.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("batch_size: 0\n"), 0o600))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{Steps: 7, Seed: 3})
	assert.Equal(t, 7, cfg.Steps)
	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, Default().LearningRate, cfg.LearningRate)
	assert.Equal(t, Default().BatchSize, cfg.BatchSize)

	cfg.ApplyOverrides(Overrides{LearningRate: 0.5, BatchSize: 2})
	assert.Equal(t, 0.5, cfg.LearningRate)
	assert.Equal(t, 2, cfg.BatchSize)
	assert.Equal(t, 7, cfg.Steps)
}
