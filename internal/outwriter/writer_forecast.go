package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/findexlab/fipulse/schema"
)

// writeJSONResultsForForecast marshals the schema.ForecastTable to JSON and writes it.
func writeJSONResultsForForecast(w io.Writer, table schema.ForecastTable) error {
	return writeJSON(w, table)
}

// writeCSVResultsForForecast writes the schema.ForecastTable data to a CSV writer.
func writeCSVResultsForForecast(w *csv.Writer, table schema.ForecastTable, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"year",
		"baseline",
		"with_events",
		"optimistic",
		"base",
		"pessimistic",
		"ci_lower",
		"ci_upper",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, row := range table.Rows {
		rec := []string{
			fmt.Sprintf("%d", row.Year),
			fmtFloat(row.Baseline),
			fmtFloat(row.WithEvents),
			fmtFloat(row.Optimistic),
			fmtFloat(row.Base),
			fmtFloat(row.Pessimistic),
			fmtFloat(row.CILower),
			fmtFloat(row.CIUpper),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
