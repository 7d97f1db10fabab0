// Package schema defines the shared data models for fipulse.
package schema

// DataRecord is one row of the long-format indicator dataset.
type DataRecord struct {
	RecordID      string `json:"record_id"`
	RecordType    string `json:"record_type"`
	Pillar        string `json:"pillar"`
	Indicator     string `json:"indicator"`
	IndicatorCode string `json:"indicator_code"`
	Gender        string `json:"gender"`
	Unit          string `json:"unit"`
	Confidence    string `json:"confidence"`
	FiscalYear    int    `json:"fiscal_year"`

	// Value is only meaningful when HasValue is true. Rows with a blank
	// or non-numeric value cell are kept for category counting but carry
	// no observation.
	Value    float64 `json:"value"`
	HasValue bool    `json:"has_value"`
}

// Observation is a single (year, value) point of an annual series.
type Observation struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// IndicatorSeries is the cleaned annual series for one indicator.
// Observations are sorted by year ascending and contain one point per
// year (duplicate years averaged by the loader).
type IndicatorSeries struct {
	Indicator    string        `json:"indicator"`
	Observations []Observation `json:"observations"`
}

// Years returns the observation years in order.
func (s IndicatorSeries) Years() []int {
	years := make([]int, len(s.Observations))
	for i, obs := range s.Observations {
		years[i] = obs.Year
	}
	return years
}

// Values returns the observation values in year order.
func (s IndicatorSeries) Values() []float64 {
	values := make([]float64, len(s.Observations))
	for i, obs := range s.Observations {
		values[i] = obs.Value
	}
	return values
}

// TrendModel is a fitted trend over an annual series.
// For LogLinearTrend the slope and intercept apply to log(value), and
// predictions are exponentiated back to the original scale.
type TrendModel struct {
	Form      TrendForm `json:"form"`
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
}
