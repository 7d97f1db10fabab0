package core

import (
	"fmt"

	"github.com/findexlab/fipulse/schema"
)

// PipelineOptions carries the tunable parameters of one pipeline run.
type PipelineOptions struct {
	Form              schema.TrendForm
	Multiplier        float64
	OptimisticFactor  float64
	PessimisticFactor float64
	UncertaintyWidth  float64
}

// RunForecastPipeline executes the full forecasting sequence for one
// indicator: fit the trend, project the baseline over the forecast years,
// overlay scheduled event effects, bracket the scenarios, and attach the
// uncertainty band. Rows come back in the order of the requested years;
// an empty year list yields a table with no rows.
// A trend-fitting failure aborts the run with no partial output.
func RunForecastPipeline(series schema.IndicatorSeries, years []int, impacts map[string]float64, schedule map[string][]int, opts PipelineOptions) (schema.ForecastTable, error) {
	// --- 1. Trend Fitting Phase ---
	model, err := FitTrend(series, opts.Form)
	if err != nil {
		return schema.ForecastTable{}, fmt.Errorf("trend fitting failed: %w", err)
	}
	baseline := PredictTrend(model, years)

	// --- 2. Event Adjustment Phase ---
	withEvents := ApplyEventImpacts(baseline, impacts, schedule, opts.Multiplier)

	// --- 3. Scenario + Band Phase ---
	optimistic, base, pessimistic := BuildScenarios(baseline, withEvents, opts.OptimisticFactor, opts.PessimisticFactor)
	lower, upper := ConfidenceBand(base, opts.UncertaintyWidth)

	// --- 4. Assembly Phase ---
	rows := make([]schema.ForecastRow, len(years))
	for i, year := range years {
		rows[i] = schema.ForecastRow{
			Year:        year,
			Baseline:    baseline[i].Value,
			WithEvents:  withEvents[i].Value,
			Optimistic:  optimistic[i].Value,
			Base:        base[i].Value,
			Pessimistic: pessimistic[i].Value,
			CILower:     lower[i].Value,
			CIUpper:     upper[i].Value,
		}
	}

	return schema.ForecastTable{
		Indicator: series.Indicator,
		Trend:     model,
		Rows:      rows,
	}, nil
}
