package runstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/findexlab/fipulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow(year int) schema.ForecastRow {
	return schema.ForecastRow{
		Year:        year,
		Baseline:    52.71,
		WithEvents:  54.21,
		Optimistic:  54.51,
		Base:        54.21,
		Pessimistic: 53.76,
		CILower:     43.37,
		CIUpper:     65.05,
	}
}

func TestRunStoreSQLiteRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	start := time.Now().Add(-2 * time.Second)
	params := map[string]any{"trend": "linear", "years": "2025-2027"}

	runID, err := store.BeginRun(start, "Account Ownership Rate", params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	for _, year := range []int{2025, 2026, 2027} {
		require.NoError(t, store.RecordForecastRow(runID, "Account Ownership Rate", sampleRow(year)))
	}
	require.NoError(t, store.EndRun(runID, time.Now(), 3))

	// Status reflects the recorded run
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, int64(3), status.TotalRows)
	assert.Equal(t, int64(1), status.TableSizes[forecastRunsTable])
	assert.Equal(t, int64(3), status.TableSizes[forecastRowsTable])
	assert.WithinDuration(t, start, status.LastRunTime, time.Millisecond)

	// Run record round trip
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "Account Ownership Rate", runs[0].Indicator)
	assert.Equal(t, int32(3), runs[0].TotalYears)
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.GreaterOrEqual(t, *runs[0].RunDurationMs, int32(0))
	require.NotNil(t, runs[0].ConfigParams)
	assert.Contains(t, *runs[0].ConfigParams, `"trend":"linear"`)

	// Row records round trip in order
	rows, err := store.GetAllForecastRows()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int32(2025), rows[0].Year)
	assert.Equal(t, int32(2027), rows[2].Year)
	assert.InDelta(t, 54.21, rows[1].BaseCase, 1e-9)
	assert.InDelta(t, 43.37, rows[1].CILower, 1e-9)
	assert.False(t, rows[0].CreatedAt.IsZero())
}

func TestRunStoreSecondRunIncrementsID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	first, err := store.BeginRun(time.Now(), "Account Ownership Rate", nil)
	require.NoError(t, err)
	second, err := store.BeginRun(time.Now(), "Mobile Money Activity Rate", nil)
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Every operation is a silent no-op
	runID, err := store.BeginRun(time.Now(), "Account Ownership Rate", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	require.NoError(t, store.RecordForecastRow(runID, "Account Ownership Rate", sampleRow(2025)))
	require.NoError(t, store.EndRun(runID, time.Now(), 1))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, string(schema.NoneBackend), status.Backend)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestClearRunsSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is fine, the file is already gone
	assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
}

func TestClearRunsValidation(t *testing.T) {
	assert.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
	assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
	assert.Error(t, ClearRuns(schema.DatabaseBackend("oracle"), "", ""))
}

func TestExecuteRunsExportRequiresOutputFile(t *testing.T) {
	err := ExecuteRunsExport("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}
