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

// PrintTrendSummaries outputs the per-indicator trend summaries, dispatching
// based on the output format configured.
func PrintTrendSummaries(summaries []schema.TrendSummary, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printTrendsJSONResults(summaries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printTrendsCSVResults(summaries, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsTable(summaries, cfg, fmtFloat, duration, w)
		}, "Wrote trends table")
	}
	return nil
}

// printTrendsJSONResults handles opening the file and calling the JSON writer.
func printTrendsJSONResults(summaries []schema.TrendSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForTrends(w, summaries)
	}, "Wrote JSON trends")
}

// printTrendsCSVResults handles opening the file and calling the CSV writer.
func printTrendsCSVResults(summaries []schema.TrendSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForTrends(csvWriter, summaries, fmtFloat, intFmt)
	}, "Wrote CSV trends")
}

// writeTrendsTable generates and writes the human-readable table.
// One row per indicator: latest value, latest growth, drift, coverage.
func writeTrendsTable(summaries []schema.TrendSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	t := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Indicator", "Years", "Latest", "Growth %", "Drift %/yr", "Coverage"}
	t.Header(headers)

	// 2. Configure Alignment
	t.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, s := range summaries {
		latest, growth := latestGrowthPoint(s)
		growthStr := "-"
		if growth != nil {
			growthStr = fmtFloat(growth.GrowthPct)
		}

		label := contract.GetPlainCoverageLabel(len(s.Points))
		if cfg.UseColors {
			label = contract.GetColorCoverageLabel(len(s.Points))
		}

		data = append(data, []string{
			contract.TruncateLabel(s.Indicator, GetMaxTableLabelWidth(cfg)),
			fmt.Sprintf("%d", len(s.Points)),
			fmtFloat(latest),
			growthStr,
			fmtFloat(s.AnnualDrift),
			label,
		})
	}

	// 4. Render the table
	if err := t.Bulk(data); err != nil {
		return err
	}
	if err := t.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Trend analysis for %d indicators completed in %v\n", len(summaries), duration); err != nil {
		return err
	}
	return nil
}

// latestGrowthPoint returns the last observed value and, when available,
// the last point carrying a growth figure.
func latestGrowthPoint(s schema.TrendSummary) (float64, *schema.GrowthPoint) {
	if len(s.Points) == 0 {
		return 0, nil
	}
	last := s.Points[len(s.Points)-1]
	if last.HasGrowth {
		return last.Value, &last
	}
	return last.Value, nil
}
