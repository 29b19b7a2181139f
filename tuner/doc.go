// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tuner drives training of snaketune models.
//
// A Tuner owns a data.DataLoader, an optim.Optimizer and the model being
// trained. Each Step samples exactly one batch and applies one update:
//
//	loader, _ := data.NewDataLoader[data.Sample](db, data.LoaderConfig{BatchSize: 4})
//	net, _ := nn.NewNet([]int{2, 2, 1}, activation.Sigmoid{}, rng)
//
//	t, err := tuner.NewNet(loader, 0.1, net, tuner.Config{
//	    LogEvery: 10000,
//	    Logger:   logger,
//	})
//	if err != nil {
//	    return err
//	}
//	if _, err := t.Run(ctx, 100000); err != nil {
//	    return err
//	}
//	fmt.Println(t.Evaluate())
//
// Progress records go to Config.Logger (a *zap.Logger); nothing is logged
// without one.
package tuner
