package core

import (
	"sort"

	"github.com/findexlab/fipulse/schema"
)

// GrowthRates computes year-over-year percent change for an annual
// series. The first observation has no prior year and carries HasGrowth
// false; a zero prior value also yields no growth figure.
func GrowthRates(series schema.IndicatorSeries) []schema.GrowthPoint {
	points := make([]schema.GrowthPoint, len(series.Observations))
	for i, obs := range series.Observations {
		point := schema.GrowthPoint{Year: obs.Year, Value: obs.Value}
		if i > 0 {
			prev := series.Observations[i-1].Value
			if prev != 0 {
				point.GrowthPct = (obs.Value - prev) / prev * 100
				point.HasGrowth = true
			}
		}
		points[i] = point
	}
	return points
}

// TemporalCoverage counts observations per indicator per year, sorted by
// indicator then year for stable output.
func TemporalCoverage(records []schema.DataRecord) []schema.CoverageCell {
	type key struct {
		indicator string
		year      int
	}
	counts := make(map[key]int)
	for _, rec := range records {
		if !rec.HasValue || rec.FiscalYear == 0 || rec.Indicator == "" {
			continue
		}
		counts[key{rec.Indicator, rec.FiscalYear}]++
	}

	cells := make([]schema.CoverageCell, 0, len(counts))
	for k, count := range counts {
		cells = append(cells, schema.CoverageCell{Indicator: k.indicator, Year: k.year, Count: count})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Indicator != cells[j].Indicator {
			return cells[i].Indicator < cells[j].Indicator
		}
		return cells[i].Year < cells[j].Year
	})
	return cells
}

// CountByCategory tallies records by an arbitrary categorical column.
// Blank values are grouped under "unknown". Results come back in
// descending count order.
func CountByCategory(records []schema.DataRecord, category func(schema.DataRecord) string) []schema.CategoryCount {
	counts := make(map[string]int)
	for _, rec := range records {
		value := category(rec)
		if value == "" {
			value = "unknown"
		}
		counts[value]++
	}

	result := make([]schema.CategoryCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, schema.CategoryCount{Value: value, Count: count})
	}
	schema.SortCategoryCounts(result)
	return result
}

// GenderGap computes the mean value by gender for one indicator. The gap
// is male minus female and is only meaningful when both genders have
// observations.
func GenderGap(records []schema.DataRecord, indicator string) schema.GenderGapResult {
	result := schema.GenderGapResult{Indicator: indicator}

	var maleSum, femaleSum float64
	var maleCount, femaleCount int
	for _, rec := range records {
		if !rec.HasValue || rec.Indicator != indicator {
			continue
		}
		switch rec.Gender {
		case "male":
			maleSum += rec.Value
			maleCount++
		case "female":
			femaleSum += rec.Value
			femaleCount++
		}
	}

	if maleCount > 0 {
		result.Male = maleSum / float64(maleCount)
	}
	if femaleCount > 0 {
		result.Female = femaleSum / float64(femaleCount)
	}
	if maleCount > 0 && femaleCount > 0 {
		result.Gap = result.Male - result.Female
		result.HasBoth = true
	}
	return result
}

// Headlines returns the most recent observed value per indicator, sorted
// by indicator name.
func Headlines(records []schema.DataRecord) []schema.HeadlineMetric {
	latest := make(map[string]schema.HeadlineMetric)
	for _, rec := range records {
		if !rec.HasValue || rec.FiscalYear == 0 || rec.Indicator == "" {
			continue
		}
		if current, ok := latest[rec.Indicator]; !ok || rec.FiscalYear > current.Year {
			latest[rec.Indicator] = schema.HeadlineMetric{
				Indicator: rec.Indicator,
				Year:      rec.FiscalYear,
				Value:     rec.Value,
			}
		}
	}

	metrics := make([]schema.HeadlineMetric, 0, len(latest))
	for _, metric := range latest {
		metrics = append(metrics, metric)
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].Indicator < metrics[j].Indicator })
	return metrics
}

// BuildOverview assembles the descriptive dataset summary.
func BuildOverview(records []schema.DataRecord) schema.OverviewResult {
	overview := schema.OverviewResult{
		TotalRecords: len(records),
		Indicators:   schema.IndicatorNames(records),
		RecordTypes:  CountByCategory(records, func(r schema.DataRecord) string { return r.RecordType }),
		Pillars:      CountByCategory(records, func(r schema.DataRecord) string { return r.Pillar }),
		ConfidenceLevel: CountByCategory(records, func(r schema.DataRecord) string {
			return r.Confidence
		}),
		Coverage:  TemporalCoverage(records),
		Headlines: Headlines(records),
	}

	for _, rec := range records {
		if rec.FiscalYear == 0 {
			continue
		}
		if overview.YearRange[0] == 0 || rec.FiscalYear < overview.YearRange[0] {
			overview.YearRange[0] = rec.FiscalYear
		}
		if rec.FiscalYear > overview.YearRange[1] {
			overview.YearRange[1] = rec.FiscalYear
		}
	}

	return overview
}
