package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/findexlab/fipulse/schema"
)

// AnnualSeries builds the cleaned per-year series for one indicator.
// Records match on the indicator name or its code, case-insensitively.
// Duplicate years are averaged and the result is sorted ascending by year.
// Records without a numeric value or a usable year are ignored.
func AnnualSeries(records []schema.DataRecord, indicator string) (schema.IndicatorSeries, error) {
	want := strings.ToLower(strings.TrimSpace(indicator))
	if want == "" {
		return schema.IndicatorSeries{}, fmt.Errorf("indicator name cannot be empty")
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	canonical := indicator

	for _, rec := range records {
		if !rec.HasValue || rec.FiscalYear == 0 {
			continue
		}
		if strings.ToLower(rec.Indicator) != want && strings.ToLower(rec.IndicatorCode) != want {
			continue
		}
		canonical = rec.Indicator
		sums[rec.FiscalYear] += rec.Value
		counts[rec.FiscalYear]++
	}

	if len(sums) == 0 {
		return schema.IndicatorSeries{}, fmt.Errorf("no observations found for indicator %q", indicator)
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	observations := make([]schema.Observation, len(years))
	for i, year := range years {
		observations[i] = schema.Observation{
			Year:  year,
			Value: sums[year] / float64(counts[year]),
		}
	}

	return schema.IndicatorSeries{
		Indicator:    canonical,
		Observations: observations,
	}, nil
}
