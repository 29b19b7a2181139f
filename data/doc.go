// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides labeled-example sources and the batching DataLoader.
//
// # Overview
//
// A Database exposes entries by index. NewDataLoader reads it once,
// optionally shuffles the index order with a seedable generator, splits it
// into batches and then serves those batches cyclically:
//
//	db, err := data.NewMemory(inputs, outputs)
//	loader, err := data.NewDataLoader[data.Sample](db, data.LoaderConfig{
//	    BatchSize: 32,
//	    Shuffle:   true,
//	    Rand:      rand.New(rand.NewPCG(1, 2)),
//	})
//	batch := loader.Sample()
//
// # Custom sources
//
// Any type with Size and Get satisfies Database. Entries need only Inputs
// and ExpectedOutput, so callers can train on their own record types
// without copying them into Sample.
//
// # CSV
//
// LoadCSV reads numeric rows into a Memory database, one column being the
// label (the last column by default).
package data
