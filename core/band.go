package core

import "github.com/findexlab/fipulse/schema"

// ConfidenceBand computes the fixed-percentage uncertainty band around
// each value: lower = value*(1-width), upper = value*(1+width). This is a
// heuristic envelope, not a statistical interval; for negative values the
// bounds invert, which callers accept as-is.
func ConfidenceBand(values []schema.Observation, width float64) (lower, upper []schema.Observation) {
	lower = make([]schema.Observation, len(values))
	upper = make([]schema.Observation, len(values))

	for i, obs := range values {
		lower[i] = schema.Observation{Year: obs.Year, Value: obs.Value * (1 - width)}
		upper[i] = schema.Observation{Year: obs.Year, Value: obs.Value * (1 + width)}
	}

	return lower, upper
}
