package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snaketune/snaketune/internal/config"
	"github.com/snaketune/snaketune/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const andCSV = `a,b,bias,label
0,0,1,0
0,1,1,0
1,0,1,0
1,1,1,1
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "and.csv")
	require.NoError(t, os.WriteFile(path, []byte(andCSV), 0o600))
	return path
}

func TestTrainLinear(t *testing.T) {
	db, err := loadData(writeCSV(t), data.CSVConfig{LabelColumn: -1, Header: true, Comma: ','})
	require.NoError(t, err)
	require.Equal(t, 4, db.Size())

	cfg := config.Default()
	cfg.Model = config.ModelLinear
	cfg.BatchSize = 4
	cfg.LearningRate = 0.5
	cfg.Steps = 20000
	cfg.Seed = 11
	cfg.Parallel = true

	core, logs := observer.New(zap.InfoLevel)
	mse, err := train(context.Background(), cfg, db, zap.New(core))
	require.NoError(t, err)
	assert.Less(t, mse, 0.05)

	finished := logs.FilterMessage("training finished").AllUntimed()
	require.Len(t, finished, 1)
	assert.EqualValues(t, 20000, finished[0].ContextMap()["steps"])
	assert.NotEmpty(t, logs.FilterMessage("training step").AllUntimed())
}

func TestTrainNetIsSeedDeterministic(t *testing.T) {
	db, err := data.LoadCSV(strings.NewReader(andCSV), data.CSVConfig{LabelColumn: -1, Header: true, Comma: ','})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.HiddenSizes = []int{3}
	cfg.BatchSize = 2
	cfg.Steps = 500
	cfg.Seed = 5

	first, err := train(context.Background(), cfg, db, zap.NewNop())
	require.NoError(t, err)
	second, err := train(context.Background(), cfg, db, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadDataErrors(t *testing.T) {
	_, err := loadData(filepath.Join(t.TempDir(), "missing.csv"), data.DefaultCSVConfig())
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\nx,3\n"), 0o600))
	_, err = loadData(path, data.DefaultCSVConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
