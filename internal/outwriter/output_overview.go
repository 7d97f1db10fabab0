package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintOverview outputs the descriptive dataset summary, dispatching based
// on the output format configured.
func PrintOverview(overview schema.OverviewResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printOverviewJSONResults(overview, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printOverviewCSVResults(overview, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOverviewTables(overview, cfg, fmtFloat, duration, w)
		}, "Wrote overview")
	}
	return nil
}

// printOverviewJSONResults handles opening the file and calling the JSON writer.
func printOverviewJSONResults(overview schema.OverviewResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, overview)
	}, "Wrote JSON overview")
}

// printOverviewCSVResults writes the headline metrics in CSV form, the one
// overview section that is useful row-wise downstream.
func printOverviewCSVResults(overview schema.OverviewResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"indicator", "year", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, h := range overview.Headlines {
				rec := []string{
					h.Indicator,
					fmt.Sprintf(intFmt, h.Year),
					fmtFloat(h.Value),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV overview")
}

// writeOverviewTables generates and writes the human-readable summary:
// a headline table followed by the categorical breakdowns.
func writeOverviewTables(overview schema.OverviewResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Dataset: %d records across %d indicators (%d-%d)\n",
		overview.TotalRecords, len(overview.Indicators), overview.YearRange[0], overview.YearRange[1]); err != nil {
		return err
	}

	// --- 1. Headline Metrics ---
	t := tablewriter.NewWriter(writer)
	t.Header([]string{"Indicator", "Latest Year", "Value"})
	t.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, h := range overview.Headlines {
		data = append(data, []string{
			contract.TruncateLabel(h.Indicator, GetMaxTableLabelWidth(cfg)),
			fmt.Sprintf("%d", h.Year),
			fmtFloat(h.Value),
		})
	}
	if err := t.Bulk(data); err != nil {
		return err
	}
	if err := t.Render(); err != nil {
		return err
	}

	// --- 2. Categorical Breakdowns ---
	sections := []struct {
		title  string
		counts []schema.CategoryCount
	}{
		{"Record types", overview.RecordTypes},
		{"Pillars", overview.Pillars},
		{"Confidence levels", overview.ConfidenceLevel},
	}
	for _, section := range sections {
		if len(section.counts) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(writer, "%s:\n", section.title); err != nil {
			return err
		}
		for _, c := range section.counts {
			if _, err := fmt.Fprintf(writer, "  %-24s %d\n", c.Value, c.Count); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "Overview completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
