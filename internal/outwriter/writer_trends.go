package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"
)

// writeJSONResultsForTrends marshals the trend summaries to JSON and writes them.
func writeJSONResultsForTrends(w io.Writer, summaries []schema.TrendSummary) error {
	// Prepare the data structure for JSON with coverage label added
	type JSONTrendSummary struct {
		schema.TrendSummary
		Observations int `json:"observations"`
	}

	output := make([]JSONTrendSummary, len(summaries))
	for i, s := range summaries {
		output[i] = JSONTrendSummary{
			TrendSummary: s,
			Observations: len(s.Points),
		}
	}

	return writeJSON(w, output)
}

// writeCSVResultsForTrends writes one CSV row per indicator-year with its
// growth figure, in long format for downstream tooling.
func writeCSVResultsForTrends(w *csv.Writer, summaries []schema.TrendSummary, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"indicator",
		"year",
		"value",
		"growth_pct",
		"annual_drift",
		"coverage",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, s := range summaries {
		for _, p := range s.Points {
			growthStr := ""
			if p.HasGrowth {
				growthStr = fmtFloat(p.GrowthPct)
			}
			rec := []string{
				s.Indicator,
				fmt.Sprintf(intFmt, p.Year),
				fmtFloat(p.Value),
				growthStr,
				fmtFloat(s.AnnualDrift),
				contract.GetPlainCoverageLabel(len(s.Points)),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
