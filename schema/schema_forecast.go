package schema

// ForecastRow is one forecast year with all scenario and band columns.
type ForecastRow struct {
	Year        int     `json:"year"`
	Baseline    float64 `json:"baseline"`
	WithEvents  float64 `json:"with_events"`
	Optimistic  float64 `json:"optimistic"`
	Base        float64 `json:"base"`
	Pessimistic float64 `json:"pessimistic"`
	CILower     float64 `json:"ci_lower"`
	CIUpper     float64 `json:"ci_upper"`
}

// ForecastTable is the full pipeline output for one indicator.
// Rows preserve the order of the requested forecast years.
type ForecastTable struct {
	Indicator string        `json:"indicator"`
	Trend     TrendModel    `json:"trend"`
	Rows      []ForecastRow `json:"rows"`
}

// Years returns the forecast years in row order.
func (t ForecastTable) Years() []int {
	years := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		years[i] = row.Year
	}
	return years
}

// ScenarioValue returns the named scenario column for a row.
func (r ForecastRow) ScenarioValue(name ScenarioName) float64 {
	switch name {
	case OptimisticScenario:
		return r.Optimistic
	case PessimisticScenario:
		return r.Pessimistic
	default:
		return r.Base
	}
}
