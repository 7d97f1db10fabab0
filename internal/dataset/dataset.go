// Package dataset loads the indicator CSV files that feed the pipeline.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/findexlab/fipulse/schema"
)

// indicatorColumn is the only column name that is not configurable.
const indicatorColumn = "indicator"

// LoadCSV reads the long-format indicator dataset into typed records.
// The indicator column plus the configured year and value columns must be
// present; loading fails fast naming the first missing column. Rows with a
// blank or non-numeric value cell are kept with HasValue unset so they still
// participate in category counting.
func LoadCSV(path, yearColumn, valueColumn string) ([]schema.DataRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	cols := indexColumns(header)
	for _, required := range []string{indicatorColumn, yearColumn, valueColumn} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset %q is missing required column %q", path, required)
		}
	}

	var records []schema.DataRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", line, err)
		}

		rec := schema.DataRecord{
			RecordID:      cell(row, cols, "record_id"),
			RecordType:    cell(row, cols, "record_type"),
			Pillar:        cell(row, cols, "pillar"),
			Indicator:     cell(row, cols, indicatorColumn),
			IndicatorCode: cell(row, cols, "indicator_code"),
			Gender:        cell(row, cols, "gender"),
			Unit:          cell(row, cols, "unit"),
			Confidence:    cell(row, cols, "confidence"),
		}

		if yearStr := cell(row, cols, yearColumn); yearStr != "" {
			if year, err := strconv.Atoi(yearStr); err == nil {
				rec.FiscalYear = year
			}
		}

		if valueStr := cell(row, cols, valueColumn); valueStr != "" {
			if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
				rec.Value = value
				rec.HasValue = true
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

// indexColumns maps normalized header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// cell returns the trimmed cell for a named column, or "" when the column
// is absent from the file.
func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
