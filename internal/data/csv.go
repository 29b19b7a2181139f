package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVConfig controls how LoadCSV interprets a file.
type CSVConfig struct {
	// LabelColumn is the index of the target column. Negative values count
	// from the end, so the default -1 selects the last column.
	LabelColumn int

	// Header skips the first row.
	Header bool

	// Comma is the field delimiter (default ',').
	Comma rune

	// MaxRows limits the number of rows loaded (0 = load all).
	MaxRows int
}

// DefaultCSVConfig returns a config for headerless files labelled by their last column.
func DefaultCSVConfig() CSVConfig {
	return CSVConfig{LabelColumn: -1, Comma: ','}
}

// LoadCSV reads labeled numeric rows into an in-memory database.
//
// CSV format (label in the last column by default):
//
//	0.0,0.0,0
//	0.0,1.0,1
//	1.0,0.0,1
//
// Every row must have the same number of columns. All non-label columns
// become the entry's inputs in file order.
func LoadCSV(r io.Reader, cfg CSVConfig) (*Memory, error) {
	reader := csv.NewReader(r)
	if cfg.Comma != 0 {
		reader.Comma = cfg.Comma
	}
	reader.TrimLeadingSpace = true

	if cfg.Header {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("load csv: %w", ErrEmptyDatabase)
			}
			return nil, fmt.Errorf("load csv: read header: %w", err)
		}
	}

	db := &Memory{}
	for row := 1; cfg.MaxRows <= 0 || db.Size() < cfg.MaxRows; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load csv: row %d: %w", row, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("load csv: row %d: need at least 2 columns, got %d", row, len(record))
		}

		label := cfg.LabelColumn
		if label < 0 {
			label += len(record)
		}
		if label < 0 || label >= len(record) {
			return nil, fmt.Errorf("load csv: row %d: label column %d out of range for %d columns",
				row, cfg.LabelColumn, len(record))
		}

		inputs := make([]float64, 0, len(record)-1)
		var output float64
		for col, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("load csv: row %d, column %d: %w", row, col+1, err)
			}
			if col == label {
				output = v
				continue
			}
			inputs = append(inputs, v)
		}

		if err := db.Append(inputs, output); err != nil {
			return nil, fmt.Errorf("load csv: row %d: %w", row, err)
		}
	}

	if db.Size() == 0 {
		return nil, fmt.Errorf("load csv: %w", ErrEmptyDatabase)
	}
	return db, nil
}
