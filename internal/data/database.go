// Package data defines the labeled-example contracts consumed by snaketune
// and the DataLoader that turns a Database into shuffled, fixed-size batches.
//
// This package provides:
//   - Entry: one labeled example (feature vector + scalar target)
//   - Database: indexed, read-only access to entries
//   - Memory: an in-memory Database, also produced by LoadCSV
//   - DataLoader: cyclic batch sampler built once from a Database
package data

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyDatabase     = errors.New("database has no entries")
	ErrInvalidBatchSize  = errors.New("batch size must be >= 1")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrDimensionMismatch = errors.New("input dimension mismatch")
	ErrEmptyInputs       = errors.New("entry has no inputs")
	ErrLengthMismatch    = errors.New("inputs and outputs length mismatch")
)

// Entry is a single labeled training example.
//
// Inputs has a fixed length shared by every entry of a training run.
// Callers must treat the returned slice as read-only.
type Entry interface {
	// Inputs returns the feature vector.
	Inputs() []float64

	// ExpectedOutput returns the target value.
	ExpectedOutput() float64
}

// Database provides indexed, deterministic access to entries.
//
// Get must return the same entry for the same index for as long as a
// DataLoader is being constructed from it, and must reject indices outside
// [0, Size()) with an error wrapping ErrIndexOutOfRange.
type Database[E Entry] interface {
	Size() int
	Get(idx int) (E, error)
}

// Sample is a plain in-memory Entry.
type Sample struct {
	In  []float64
	Out float64
}

// Inputs returns the feature vector.
func (s Sample) Inputs() []float64 { return s.In }

// ExpectedOutput returns the target value.
func (s Sample) ExpectedOutput() float64 { return s.Out }

// Memory is a Database backed by a slice of samples.
type Memory struct {
	samples []Sample
	dim     int
}

// NewMemory creates an in-memory database from parallel input and output slices.
//
// Input rows are copied. Every row must have the same, non-zero length.
func NewMemory(inputs [][]float64, outputs []float64) (*Memory, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("%w: %d inputs, %d outputs", ErrLengthMismatch, len(inputs), len(outputs))
	}
	m := &Memory{samples: make([]Sample, 0, len(inputs))}
	for i, row := range inputs {
		if err := m.Append(row, outputs[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return m, nil
}

// Append adds one labeled row to the database.
func (m *Memory) Append(inputs []float64, output float64) error {
	if len(inputs) == 0 {
		return ErrEmptyInputs
	}
	if m.dim != 0 && len(inputs) != m.dim {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(inputs), m.dim)
	}
	m.dim = len(inputs)
	m.samples = append(m.samples, Sample{
		In:  append([]float64(nil), inputs...),
		Out: output,
	})
	return nil
}

// Size returns the number of samples.
func (m *Memory) Size() int {
	return len(m.samples)
}

// Get returns the sample at idx.
func (m *Memory) Get(idx int) (Sample, error) {
	if idx < 0 || idx >= len(m.samples) {
		return Sample{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(m.samples))
	}
	return m.samples[idx], nil
}

// Dim returns the input dimensionality, or 0 for an empty database.
func (m *Memory) Dim() int {
	return m.dim
}
