// Package config loads snaketune training configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/snaketune/snaketune/internal/activation"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Model kinds.
const (
	ModelLinear = "linear"
	ModelNet    = "net"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes one training run.
//
// Example file:
//
//	model: net
//	activation: sigmoid
//	hidden_sizes: [4]
//	batch_size: 16
//	shuffle: true
//	seed: 42
//	learning_rate: 0.1
//	steps: 50000
//	log_every: 5000
type Config struct {
	// Model is "linear" or "net".
	Model string `yaml:"model"`

	// Activation is resolved with activation.ByName.
	Activation string `yaml:"activation"`

	// HiddenSizes lists hidden layer widths for nets. Input and output
	// sizes come from the data.
	HiddenSizes []int `yaml:"hidden_sizes"`

	BatchSize int  `yaml:"batch_size"`
	Shuffle   bool `yaml:"shuffle"`

	// Seed drives shuffling and weight initialization; 0 picks a random seed.
	Seed uint64 `yaml:"seed"`

	LearningRate float64 `yaml:"learning_rate"`
	Steps        int     `yaml:"steps"`

	// LogEvery is the step interval between progress records; 0 disables them.
	LogEvery int `yaml:"log_every"`

	// Parallel computes per-entry delta-rule contributions concurrently
	// (linear models only).
	Parallel bool `yaml:"parallel"`
}

// Overrides replaces Config fields from command-line flags. Zero values
// leave the field untouched.
type Overrides struct {
	Steps        int
	Seed         uint64
	LearningRate float64
	BatchSize    int
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Model:        ModelNet,
		Activation:   "sigmoid",
		HiddenSizes:  []int{2},
		BatchSize:    32,
		Shuffle:      true,
		LearningRate: 0.1,
		Steps:        10000,
		LogEvery:     1000,
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over Default and validates the result.
//
// Unknown keys are rejected. An empty document yields Default().
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides copies every non-zero field of o into c.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Steps != 0 {
		c.Steps = o.Steps
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LearningRate != 0 {
		c.LearningRate = o.LearningRate
	}
	if o.BatchSize != 0 {
		c.BatchSize = o.BatchSize
	}
}

// ActivationFunc resolves the configured activation.
func (c *Config) ActivationFunc() (activation.Function, error) {
	return activation.ByName(c.Activation)
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	switch c.Model {
	case ModelLinear, ModelNet:
	default:
		invalid("model must be %q or %q (got %q)", ModelLinear, ModelNet, c.Model)
	}
	if _, err := c.ActivationFunc(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if c.Model == ModelNet {
		for i, size := range c.HiddenSizes {
			if size < 1 {
				invalid("hidden_sizes[%d] must be >= 1 (got %d)", i, size)
			}
		}
	}
	if c.BatchSize < 1 {
		invalid("batch_size must be >= 1 (got %d)", c.BatchSize)
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		invalid("learning_rate must be positive and finite (got %v)", c.LearningRate)
	}
	if c.Steps < 0 {
		invalid("steps must be >= 0 (got %d)", c.Steps)
	}
	if c.LogEvery < 0 {
		invalid("log_every must be >= 0 (got %d)", c.LogEvery)
	}
	return errs
}
