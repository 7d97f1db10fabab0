package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/findexlab/fipulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempCSV writes content to a temp file and returns its path.
func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleDataset = `record_id,record_type,pillar,indicator,indicator_code,gender,fiscal_year,value_numeric,unit,confidence
r1,indicator,access,Account Ownership Rate,acct_own,all,2011,22.0,percent,high
r2,indicator,access,Account Ownership Rate,acct_own,all,2014,26.0,percent,high
r3,indicator,access,Account Ownership Rate,acct_own,all,2017,35.0,percent,high
r4,indicator,access,Account Ownership Rate,acct_own,all,2021,46.0,percent,medium
r5,indicator,access,Account Ownership Rate,acct_own,all,2024,49.0,percent,medium
r6,indicator,usage,Mobile Money Activity Rate,mm_active,all,2024,28.0,percent,low
r7,event,policy,Account Ownership Rate,acct_own,all,2023,,percent,low
r8,indicator,access,Account Ownership Rate,acct_own,male,2024,53.0,percent,medium
`

// TestLoadCSV checks typed parsing and missing-value tolerance.
func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, "data.csv", sampleDataset)

	records, err := LoadCSV(path, schema.DefaultYearColumn, schema.DefaultValueColumn)
	require.NoError(t, err)
	require.Len(t, records, 8)

	assert.Equal(t, "Account Ownership Rate", records[0].Indicator)
	assert.Equal(t, 2011, records[0].FiscalYear)
	assert.InDelta(t, 22.0, records[0].Value, 0.0001)
	assert.True(t, records[0].HasValue)

	// The event row has a blank value cell but is still loaded.
	assert.Equal(t, "event", records[6].RecordType)
	assert.False(t, records[6].HasValue)
}

// TestLoadCSVMissingColumn ensures loading fails naming the absent column.
func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "bad.csv", "indicator,fiscal_year\nAccount Ownership Rate,2024\n")

	_, err := LoadCSV(path, schema.DefaultYearColumn, schema.DefaultValueColumn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value_numeric")
}

// TestLoadCSVCustomColumns checks that year/value column names are configurable.
func TestLoadCSVCustomColumns(t *testing.T) {
	path := writeTempCSV(t, "custom.csv", "indicator,yr,val\nAccount Ownership Rate,2024,49.0\n")

	records, err := LoadCSV(path, "yr", "val")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2024, records[0].FiscalYear)
	assert.InDelta(t, 49.0, records[0].Value, 0.0001)
}

// TestAnnualSeries verifies filtering, ordering, and duplicate averaging.
func TestAnnualSeries(t *testing.T) {
	path := writeTempCSV(t, "data.csv", sampleDataset)
	records, err := LoadCSV(path, schema.DefaultYearColumn, schema.DefaultValueColumn)
	require.NoError(t, err)

	t.Run("by name", func(t *testing.T) {
		series, err := AnnualSeries(records, "Account Ownership Rate")
		require.NoError(t, err)
		assert.Equal(t, []int{2011, 2014, 2017, 2021, 2024}, series.Years())
		// 2024 has two observations (49.0 all, 53.0 male) averaged to 51.0.
		assert.InDelta(t, 51.0, series.Observations[4].Value, 0.0001)
	})

	t.Run("by code", func(t *testing.T) {
		series, err := AnnualSeries(records, "mm_active")
		require.NoError(t, err)
		assert.Equal(t, "Mobile Money Activity Rate", series.Indicator)
		require.Len(t, series.Observations, 1)
		assert.InDelta(t, 28.0, series.Observations[0].Value, 0.0001)
	})

	t.Run("unknown indicator", func(t *testing.T) {
		_, err := AnnualSeries(records, "Credit Card Penetration")
		assert.Error(t, err)
	})

	t.Run("empty indicator", func(t *testing.T) {
		_, err := AnnualSeries(records, "  ")
		assert.Error(t, err)
	})
}
