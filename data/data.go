// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"io"

	"github.com/snaketune/snaketune/internal/data"
)

// Entry is a single labeled training example.
type Entry = data.Entry

// Database provides indexed, deterministic access to entries.
type Database[E Entry] = data.Database[E]

// Sample is a plain in-memory Entry.
type Sample = data.Sample

// Memory is a Database backed by a slice of samples.
type Memory = data.Memory

// DataLoader serves shuffled, fixed-size batches cyclically.
type DataLoader[E Entry] = data.DataLoader[E]

// LoaderConfig holds DataLoader configuration.
type LoaderConfig = data.LoaderConfig

// CSVConfig controls LoadCSV.
type CSVConfig = data.CSVConfig

// Errors returned by this package.
var (
	ErrEmptyDatabase     = data.ErrEmptyDatabase
	ErrInvalidBatchSize  = data.ErrInvalidBatchSize
	ErrIndexOutOfRange   = data.ErrIndexOutOfRange
	ErrDimensionMismatch = data.ErrDimensionMismatch
	ErrEmptyInputs       = data.ErrEmptyInputs
	ErrLengthMismatch    = data.ErrLengthMismatch
)

// NewMemory creates an in-memory database from parallel input and output slices.
func NewMemory(inputs [][]float64, outputs []float64) (*Memory, error) {
	return data.NewMemory(inputs, outputs)
}

// NewDataLoader builds the batch sequence from db.
//
// Example:
//
//	loader, err := data.NewDataLoader[data.Sample](db, data.LoaderConfig{BatchSize: 4})
func NewDataLoader[E Entry](db Database[E], cfg LoaderConfig) (*DataLoader[E], error) {
	return data.NewDataLoader[E](db, cfg)
}

// DefaultCSVConfig returns a CSVConfig using the last column as label.
func DefaultCSVConfig() CSVConfig {
	return data.DefaultCSVConfig()
}

// LoadCSV reads numeric rows from r into a Memory database.
func LoadCSV(r io.Reader, cfg CSVConfig) (*Memory, error) {
	return data.LoadCSV(r, cfg)
}
