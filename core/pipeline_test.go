package core

import (
	"testing"

	"github.com/findexlab/fipulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() PipelineOptions {
	return PipelineOptions{
		Form:              schema.LinearTrend,
		Multiplier:        1.0,
		OptimisticFactor:  1.2,
		PessimisticFactor: 0.7,
		UncertaintyWidth:  0.2,
	}
}

// TestRunForecastPipelineNoEvents checks the end-to-end run without any
// event overlay: every scenario column collapses onto the baseline and the
// band brackets it.
func TestRunForecastPipelineNoEvents(t *testing.T) {
	table, err := RunForecastPipeline(accountOwnershipSeries(), []int{2025, 2026, 2027}, nil, nil, defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Account Ownership Rate", table.Indicator)
	assert.Equal(t, schema.LinearTrend, table.Trend.Form)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, []int{2025, 2026, 2027}, table.Years())
	assert.InDelta(t, 52.707, table.Rows[0].Baseline, 0.01)

	for _, row := range table.Rows {
		assert.InDelta(t, row.Baseline, row.WithEvents, 1e-9)
		assert.InDelta(t, row.Baseline, row.Optimistic, 1e-9)
		assert.InDelta(t, row.Baseline, row.Base, 1e-9)
		assert.InDelta(t, row.Baseline, row.Pessimistic, 1e-9)
		assert.InDelta(t, row.Base*0.8, row.CILower, 1e-9)
		assert.InDelta(t, row.Base*1.2, row.CIUpper, 1e-9)
	}
}

// TestRunForecastPipelineWithEvents runs the reference case: a flat
// baseline of 50.0 with one event adding 1.5 in 2026 and 2027.
func TestRunForecastPipelineWithEvents(t *testing.T) {
	impacts := map[string]float64{"digital_id_rollout": 1.5}
	schedule := map[string][]int{"digital_id_rollout": {2026, 2027}}

	table, err := RunForecastPipeline(flatSeries(50.0), []int{2025, 2026, 2027}, impacts, schedule, defaultOptions())
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)

	assert.InDelta(t, 50.0, table.Rows[0].WithEvents, 1e-9)
	assert.InDelta(t, 51.5, table.Rows[1].WithEvents, 1e-9)
	assert.InDelta(t, 51.5, table.Rows[2].WithEvents, 1e-9)

	assert.InDelta(t, 51.8, table.Rows[1].Optimistic, 1e-9)
	assert.InDelta(t, 51.5, table.Rows[1].Base, 1e-9)
	assert.InDelta(t, 51.05, table.Rows[1].Pessimistic, 1e-9)

	// Band is anchored on the event-adjusted base case.
	assert.InDelta(t, 51.5*0.8, table.Rows[1].CILower, 1e-9)
	assert.InDelta(t, 51.5*1.2, table.Rows[1].CIUpper, 1e-9)
}

// TestRunForecastPipelineNoYears checks that an empty year list is not an
// error: the trend still fits and the table simply carries no rows.
func TestRunForecastPipelineNoYears(t *testing.T) {
	table, err := RunForecastPipeline(accountOwnershipSeries(), nil, nil, nil, defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Account Ownership Rate", table.Indicator)
	assert.Equal(t, schema.LinearTrend, table.Trend.Form)
	assert.Empty(t, table.Rows)
	assert.Empty(t, table.Years())
}

// TestRunForecastPipelineErrors checks that failures surface before any
// rows are produced.
func TestRunForecastPipelineErrors(t *testing.T) {
	series := schema.IndicatorSeries{
		Indicator:    "Account Ownership Rate",
		Observations: []schema.Observation{{Year: 2024, Value: 49.0}},
	}

	table, err := RunForecastPipeline(series, []int{2025}, nil, nil, defaultOptions())
	assert.Error(t, err)
	assert.Empty(t, table.Rows)
}
