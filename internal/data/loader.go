package data

import (
	"fmt"
	"math/rand/v2"
)

// LoaderConfig holds configuration for a DataLoader.
type LoaderConfig struct {
	BatchSize int        // Entries per batch; the final batch may be shorter (must be >= 1)
	Shuffle   bool       // Permute entries once at construction
	Rand      *rand.Rand // Source for the permutation (default: randomly seeded PCG)
}

// DataLoader serves fixed-size batches of entries in a cyclic stream.
//
// The loader reads its Database exactly once, at construction, and keeps
// private copies of every batch. The database is not retained. Batches
// partition the index range [0, Size()): every entry appears in exactly one
// batch. When shuffling is requested the partition is taken over a uniform
// random permutation that stays fixed for the lifetime of the loader; build
// a new loader to reshuffle.
//
// Example:
//
//	loader, err := data.NewDataLoader(db, data.LoaderConfig{
//	    BatchSize: 32,
//	    Shuffle:   true,
//	    Rand:      rand.New(rand.NewPCG(1, 2)),
//	})
//	batch := loader.Sample() // never runs dry, wraps after the last batch
//
// A DataLoader is not safe for concurrent use. Clone it for independent
// iteration.
type DataLoader[E Entry] struct {
	batches   [][]E
	idx       int
	batchSize int
	size      int
	dim       int
}

// NewDataLoader materializes the batches of db.
//
// Returns an error if the database is empty, the batch size is < 1, any Get
// fails, or entries disagree on input dimensionality.
func NewDataLoader[E Entry](db Database[E], cfg LoaderConfig) (*DataLoader[E], error) {
	if cfg.BatchSize < 1 {
		return nil, fmt.Errorf("data loader: %w (got %d)", ErrInvalidBatchSize, cfg.BatchSize)
	}
	size := db.Size()
	if size < 1 {
		return nil, fmt.Errorf("data loader: %w", ErrEmptyDatabase)
	}

	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}

	if cfg.Shuffle {
		rng := cfg.Rand
		if rng == nil {
			//nolint:gosec // Shuffling training data is not security-critical
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		// Fisher-Yates: every permutation equally likely.
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	numBatches := (size + cfg.BatchSize - 1) / cfg.BatchSize
	batches := make([][]E, 0, numBatches)
	dim := -1

	for start := 0; start < size; start += cfg.BatchSize {
		end := min(start+cfg.BatchSize, size)
		batch := make([]E, 0, end-start)
		for _, idx := range indices[start:end] {
			entry, err := db.Get(idx)
			if err != nil {
				return nil, fmt.Errorf("data loader: get entry %d: %w", idx, err)
			}
			n := len(entry.Inputs())
			if n == 0 {
				return nil, fmt.Errorf("data loader: entry %d: %w", idx, ErrEmptyInputs)
			}
			if dim < 0 {
				dim = n
			} else if n != dim {
				return nil, fmt.Errorf("data loader: entry %d: %w: got %d, want %d",
					idx, ErrDimensionMismatch, n, dim)
			}
			batch = append(batch, entry)
		}
		batches = append(batches, batch)
	}

	return &DataLoader[E]{
		batches:   batches,
		batchSize: cfg.BatchSize,
		size:      size,
		dim:       dim,
	}, nil
}

// Sample returns the batch at the cursor and advances it, wrapping to the
// first batch after the last one.
//
// The returned slice is a copy; modifying it does not affect the loader.
func (l *DataLoader[E]) Sample() []E {
	if l.idx == len(l.batches) {
		l.idx = 0
	}
	out := append([]E(nil), l.batches[l.idx]...)
	l.idx++
	return out
}

// Clone returns an independent copy with its own batches and cursor.
func (l *DataLoader[E]) Clone() *DataLoader[E] {
	batches := make([][]E, len(l.batches))
	for i, b := range l.batches {
		batches[i] = append([]E(nil), b...)
	}
	c := *l
	c.batches = batches
	return &c
}

// Reset moves the cursor back to the first batch.
func (l *DataLoader[E]) Reset() {
	l.idx = 0
}

// Len returns the number of batches, ceil(Size() / BatchSize()).
func (l *DataLoader[E]) Len() int {
	return len(l.batches)
}

// Size returns the total number of entries.
func (l *DataLoader[E]) Size() int {
	return l.size
}

// BatchSize returns the configured batch size.
func (l *DataLoader[E]) BatchSize() int {
	return l.batchSize
}

// Dim returns the input dimensionality shared by all entries.
func (l *DataLoader[E]) Dim() int {
	return l.dim
}

// Entries returns every entry in batch order.
func (l *DataLoader[E]) Entries() []E {
	out := make([]E, 0, l.size)
	for _, b := range l.batches {
		out = append(out, b...)
	}
	return out
}
