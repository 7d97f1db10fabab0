package runstore

import (
	"errors"
	"fmt"

	"github.com/findexlab/fipulse/internal/parquet"
)

// ExecuteRunsExport performs the actual export of run tracking data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get runs status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no forecast run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total forecast runs: %d\n", status.TotalRuns)
	fmt.Printf("Total forecast rows: %d\n", status.TableSizes[forecastRowsTable])

	// Retrieve all forecast runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve forecast runs: %w", err)
	}

	// Retrieve all stored forecast rows
	forecastRows, err := store.GetAllForecastRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve forecast rows: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertForecastRunRecords(runs)
	parquetRows := parquet.ConvertForecastRowRecords(forecastRows)

	// Write forecast runs to Parquet
	runsFile := outputFile + ".forecast_runs.parquet"
	if err := parquet.WriteForecastRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write forecast runs: %w", err)
	}
	fmt.Printf("Exported %d forecast runs to: %s\n", len(parquetRuns), runsFile)

	// Write forecast rows to Parquet
	rowsFile := outputFile + ".forecast_rows.parquet"
	if err := parquet.WriteForecastRowsParquet(parquetRows, rowsFile); err != nil {
		return fmt.Errorf("failed to write forecast rows: %w", err)
	}
	fmt.Printf("Exported %d forecast rows to: %s\n", len(parquetRows), rowsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
