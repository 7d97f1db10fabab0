package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/internal/parquet"
	"github.com/findexlab/fipulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintForecastTable outputs the forecast result, dispatching based on the output format configured.
func PrintForecastTable(table schema.ForecastTable, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printForecastJSONResults(table, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printForecastCSVResults(table, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printForecastParquetResults(table, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeForecastTable(table, cfg, fmtFloat, duration, w)
		}, "Wrote forecast table")
	}
	return nil
}

// printForecastJSONResults handles opening the file and calling the JSON writer.
func printForecastJSONResults(table schema.ForecastTable, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForForecast(w, table)
	}, "Wrote JSON forecast")
}

// printForecastCSVResults handles opening the file and calling the CSV writer.
func printForecastCSVResults(table schema.ForecastTable, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForForecast(csvWriter, table, fmtFloat)
	}, "Wrote CSV forecast")
}

// printForecastParquetResults writes the forecast rows as a Parquet file.
// Parquet is a binary format, so a concrete output file is required.
func printForecastParquetResults(table schema.ForecastTable, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	return parquet.WriteForecastRowsParquet(parquet.ConvertForecastTable(table), cfg.OutputFile)
}

// writeForecastTable generates and writes the human-readable table.
func writeForecastTable(table schema.ForecastTable, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	t := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Year", "Baseline", "With Events", "Optimistic", "Base", "Pessimistic", "CI Lower", "CI Upper"}
	t.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	t.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, row := range table.Rows {
		data = append(data, []string{
			fmt.Sprintf("%d", row.Year),
			fmtFloat(row.Baseline),
			fmtFloat(row.WithEvents),
			fmtFloat(row.Optimistic),
			fmtFloat(row.Base),
			fmtFloat(row.Pessimistic),
			fmtFloat(row.CILower),
			fmtFloat(row.CIUpper),
		})
	}

	// 4. Render the table
	if err := t.Bulk(data); err != nil {
		return err
	}
	if err := t.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Forecast for %s over %d years (%s trend, slope %s)\n",
		table.Indicator, len(table.Rows), table.Trend.Form, fmtFloat(table.Trend.Slope)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Forecast completed in %v. Runs backend: %s\n", duration, cfg.RunsBackend); err != nil {
		return err
	}
	return nil
}
