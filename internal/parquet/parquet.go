// Package parquet provides data structures and functions for exporting
// forecast run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/findexlab/fipulse/schema"
	"github.com/parquet-go/parquet-go"
)

// ForecastRun represents a single tracked forecast invocation.
// This struct maps to the fipulse_forecast_runs database table.
type ForecastRun struct {
	// RunID is the unique identifier for this forecast run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Indicator is the indicator the run forecast
	Indicator string `parquet:"indicator,snappy"`

	// TotalYears is the number of forecast years produced by this run
	TotalYears int32 `parquet:"total_years,snappy"`

	// ConfigParams contains the JSON-encoded pipeline parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ForecastScenarioRow represents one forecast year with all scenario columns.
// This struct maps to the fipulse_forecast_rows database table.
type ForecastScenarioRow struct {
	// RunID references the parent forecast run
	RunID int64 `parquet:"run_id,snappy"`

	// Indicator is the forecast indicator
	Indicator string `parquet:"indicator,snappy"`

	// Year is the forecast year
	Year int32 `parquet:"year,snappy"`

	// Baseline is the trend-only projection
	Baseline float64 `parquet:"baseline,snappy"`

	// WithEvents is the baseline plus scheduled event effects
	WithEvents float64 `parquet:"with_events,snappy"`

	// Optimistic scales the event delta up around the baseline
	Optimistic float64 `parquet:"optimistic,snappy"`

	// BaseCase equals the event-adjusted path
	BaseCase float64 `parquet:"base_case,snappy"`

	// Pessimistic scales the event delta down around the baseline
	Pessimistic float64 `parquet:"pessimistic,snappy"`

	// CILower is the lower edge of the uncertainty band
	CILower float64 `parquet:"ci_lower,snappy"`

	// CIUpper is the upper edge of the uncertainty band
	CIUpper float64 `parquet:"ci_upper,snappy"`

	// CreatedAt is when the row was recorded
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// WriteForecastRunsParquet writes a slice of ForecastRun structs to a Parquet file.
func WriteForecastRunsParquet(data []ForecastRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is derived from the ForecastRun struct tags
	writer := parquet.NewGenericWriter[ForecastRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteForecastRowsParquet writes a slice of ForecastScenarioRow structs to a Parquet file.
func WriteForecastRowsParquet(data []ForecastScenarioRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is derived from the ForecastScenarioRow struct tags
	writer := parquet.NewGenericWriter[ForecastScenarioRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertForecastRunRecords converts schema.ForecastRunRecord to ForecastRun for Parquet export.
func ConvertForecastRunRecords(records []schema.ForecastRunRecord) []ForecastRun {
	result := make([]ForecastRun, len(records))
	for i, record := range records {
		result[i] = ForecastRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Indicator:     record.Indicator,
			TotalYears:    record.TotalYears,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertForecastRowRecords converts schema.ForecastRowRecord to ForecastScenarioRow for Parquet export.
func ConvertForecastRowRecords(records []schema.ForecastRowRecord) []ForecastScenarioRow {
	result := make([]ForecastScenarioRow, len(records))
	for i, record := range records {
		result[i] = ForecastScenarioRow{
			RunID:       record.RunID,
			Indicator:   record.Indicator,
			Year:        record.Year,
			Baseline:    record.Baseline,
			WithEvents:  record.WithEvents,
			Optimistic:  record.Optimistic,
			BaseCase:    record.BaseCase,
			Pessimistic: record.Pessimistic,
			CILower:     record.CILower,
			CIUpper:     record.CIUpper,
			CreatedAt:   record.CreatedAt,
		}
	}
	return result
}

// ConvertForecastTable converts a live pipeline result into scenario rows
// for direct Parquet output. The rows carry no run ID because they were
// never persisted.
func ConvertForecastTable(table schema.ForecastTable) []ForecastScenarioRow {
	now := time.Now()
	result := make([]ForecastScenarioRow, len(table.Rows))
	for i, row := range table.Rows {
		result[i] = ForecastScenarioRow{
			RunID:       0,
			Indicator:   table.Indicator,
			Year:        int32(row.Year),
			Baseline:    row.Baseline,
			WithEvents:  row.WithEvents,
			Optimistic:  row.Optimistic,
			BaseCase:    row.Base,
			Pessimistic: row.Pessimistic,
			CILower:     row.CILower,
			CIUpper:     row.CIUpper,
			CreatedAt:   now,
		}
	}
	return result
}

// MockFetchForecastRuns generates sample ForecastRun data for demonstration.
func MockFetchForecastRuns() []ForecastRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(3 * time.Second)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"trend":"linear","years":"2025-2027","uncertainty_width":0.2}`

	startTime2 := now.Add(-10 * time.Minute)
	// endTime2, durationMs2, configParams2 stay nil to demonstrate nullable fields

	return []ForecastRun{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			Indicator:     "Account Ownership Rate",
			TotalYears:    3,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       nil,
			RunDurationMs: nil,
			Indicator:     "Mobile Money Activity Rate",
			TotalYears:    0,
			ConfigParams:  nil,
		},
	}
}

// MockFetchForecastRows generates sample ForecastScenarioRow data for demonstration.
func MockFetchForecastRows() []ForecastScenarioRow {
	now := time.Now()

	return []ForecastScenarioRow{
		{
			RunID:       1,
			Indicator:   "Account Ownership Rate",
			Year:        2025,
			Baseline:    52.71,
			WithEvents:  52.71,
			Optimistic:  52.71,
			BaseCase:    52.71,
			Pessimistic: 52.71,
			CILower:     42.17,
			CIUpper:     63.25,
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			RunID:       1,
			Indicator:   "Account Ownership Rate",
			Year:        2026,
			Baseline:    54.96,
			WithEvents:  56.46,
			Optimistic:  56.76,
			BaseCase:    56.46,
			Pessimistic: 56.01,
			CILower:     45.17,
			CIUpper:     67.75,
			CreatedAt:   now.Add(-2 * time.Hour),
		},
	}
}
