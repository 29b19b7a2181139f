package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/snaketune/snaketune/internal/config"
	"github.com/snaketune/snaketune/internal/data"
	"github.com/snaketune/snaketune/internal/nn"
	"github.com/snaketune/snaketune/internal/optim"
	"github.com/snaketune/snaketune/internal/tuner"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func trainAction(c *cli.Context, logger *zap.Logger) error {
	cfg := config.Default()
	if path := c.String(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	cfg.ApplyOverrides(config.Overrides{
		Steps:        c.Int(flagSteps),
		Seed:         c.Uint64(flagSeed),
		LearningRate: c.Float64(flagLR),
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := loadData(c.String(flagData), data.CSVConfig{
		LabelColumn: c.Int(flagLabelColumn),
		Header:      c.Bool(flagHeader),
		Comma:       ',',
	})
	if err != nil {
		return err
	}

	_, err = train(c.Context, cfg, db, logger)
	return err
}

func loadData(path string, csvCfg data.CSVConfig) (*data.Memory, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, err
	}
	defer f.Close()

	db, err := data.LoadCSV(f, csvCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// train builds the configured model and tuner, runs cfg.Steps steps and
// returns the final mean squared error over db.
func train(ctx context.Context, cfg *config.Config, db *data.Memory, logger *zap.Logger) (float64, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec // seeds are not secrets
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	loader, err := data.NewDataLoader[data.Sample](db, data.LoaderConfig{
		BatchSize: cfg.BatchSize,
		Shuffle:   cfg.Shuffle,
		Rand:      rng,
	})
	if err != nil {
		return 0, err
	}

	act, err := cfg.ActivationFunc()
	if err != nil {
		return 0, err
	}

	tcfg := tuner.Config{LogEvery: cfg.LogEvery, Logger: logger}
	var t *tuner.Tuner[data.Sample]
	switch cfg.Model {
	case config.ModelLinear:
		unit, err := nn.NewLinear(loader.Dim(), act, rng)
		if err != nil {
			return 0, err
		}
		sgd, err := optim.NewSGD[data.Sample](unit, optim.SGDConfig{LR: cfg.LearningRate, Parallel: cfg.Parallel})
		if err != nil {
			return 0, err
		}
		t, err = tuner.New[data.Sample](loader, sgd, unit, tcfg)
		if err != nil {
			return 0, err
		}
	default:
		sizes := append([]int{loader.Dim()}, cfg.HiddenSizes...)
		net, err := nn.NewNet(append(sizes, 1), act, rng)
		if err != nil {
			return 0, err
		}
		t, err = tuner.NewNet(loader, cfg.LearningRate, net, tcfg)
		if err != nil {
			return 0, err
		}
	}

	logger.Info("training started",
		zap.String("model", cfg.Model),
		zap.String("activation", cfg.Activation),
		zap.Int("entries", loader.Size()),
		zap.Int("batches", loader.Len()),
		zap.Uint64("seed", seed),
	)

	if _, err := t.Run(ctx, cfg.Steps); err != nil {
		return 0, err
	}

	mse := t.Evaluate()
	logger.Info("training finished",
		zap.Int("steps", t.Steps()),
		zap.Float64("mse", mse),
	)
	return mse, nil
}
