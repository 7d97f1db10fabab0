package core

import (
	"testing"

	"github.com/findexlab/fipulse/schema"
	"github.com/stretchr/testify/assert"
)

func flatBaseline(value float64, years ...int) []schema.Observation {
	baseline := make([]schema.Observation, len(years))
	for i, year := range years {
		baseline[i] = schema.Observation{Year: year, Value: value}
	}
	return baseline
}

// TestApplyEventImpacts covers the additive overlay semantics, including
// the silent skip of events scheduled outside the forecast horizon.
func TestApplyEventImpacts(t *testing.T) {
	tests := []struct {
		name       string
		impacts    map[string]float64
		schedule   map[string][]int
		multiplier float64
		expected   []float64
	}{
		{
			name:       "no events leaves baseline untouched",
			impacts:    nil,
			schedule:   nil,
			multiplier: 1.0,
			expected:   []float64{50.0, 50.0, 50.0},
		},
		{
			name:       "single event on two years",
			impacts:    map[string]float64{"digital_id_rollout": 1.5},
			schedule:   map[string][]int{"digital_id_rollout": {2026, 2027}},
			multiplier: 1.0,
			expected:   []float64{50.0, 51.5, 51.5},
		},
		{
			name:       "event year outside horizon is skipped",
			impacts:    map[string]float64{"digital_id_rollout": 1.5},
			schedule:   map[string][]int{"digital_id_rollout": {2030}},
			multiplier: 1.0,
			expected:   []float64{50.0, 50.0, 50.0},
		},
		{
			name:       "scheduled event with no effect is a no-op",
			impacts:    map[string]float64{},
			schedule:   map[string][]int{"digital_id_rollout": {2026}},
			multiplier: 1.0,
			expected:   []float64{50.0, 50.0, 50.0},
		},
		{
			name: "overlapping events stack additively",
			impacts: map[string]float64{
				"digital_id_rollout": 1.5,
				"telecom_expansion":  2.0,
			},
			schedule: map[string][]int{
				"digital_id_rollout": {2026},
				"telecom_expansion":  {2026, 2027},
			},
			multiplier: 1.0,
			expected:   []float64{50.0, 53.5, 52.0},
		},
		{
			name:       "multiplier scales effects",
			impacts:    map[string]float64{"digital_id_rollout": 1.5},
			schedule:   map[string][]int{"digital_id_rollout": {2026, 2027}},
			multiplier: 2.0,
			expected:   []float64{50.0, 53.0, 53.0},
		},
		{
			name:       "negative effect shock",
			impacts:    map[string]float64{"currency_devaluation": -2.5},
			schedule:   map[string][]int{"currency_devaluation": {2025}},
			multiplier: 1.0,
			expected:   []float64{47.5, 50.0, 50.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := flatBaseline(50.0, 2025, 2026, 2027)
			adjusted := ApplyEventImpacts(baseline, tt.impacts, tt.schedule, tt.multiplier)

			for i, want := range tt.expected {
				assert.InDelta(t, want, adjusted[i].Value, 1e-9, "year %d", adjusted[i].Year)
			}
			// Input baseline must not be mutated.
			for _, obs := range baseline {
				assert.InDelta(t, 50.0, obs.Value, 1e-9)
			}
		})
	}
}
