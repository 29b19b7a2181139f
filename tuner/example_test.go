// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tuner_test

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/snaketune/snaketune/activation"
	"github.com/snaketune/snaketune/data"
	"github.com/snaketune/snaketune/nn"
	"github.com/snaketune/snaketune/tuner"
)

// Trains a single sigmoid unit on logical AND. The last input column is a
// constant bias term.
func Example() {
	db, err := data.NewMemory(
		[][]float64{{0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1}},
		[]float64{0, 0, 0, 1},
	)
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	loader, err := data.NewDataLoader[data.Sample](db, data.LoaderConfig{BatchSize: 4, Shuffle: true, Rand: rng})
	if err != nil {
		panic(err)
	}

	unit, err := nn.NewLinear(3, activation.Sigmoid{}, rng)
	if err != nil {
		panic(err)
	}

	t, err := tuner.NewLinear(loader, 0.5, unit, tuner.Config{})
	if err != nil {
		panic(err)
	}
	if _, err := t.Run(context.Background(), 20000); err != nil {
		panic(err)
	}

	for _, e := range loader.Entries() {
		fmt.Printf("%v AND %v = %v\n", e.In[0], e.In[1], math.Round(unit.Predict(e.In)))
	}
	// Unordered output:
	// 0 AND 0 = 0
	// 0 AND 1 = 0
	// 1 AND 0 = 0
	// 1 AND 1 = 1
}
