package core

import (
	"sort"

	"github.com/findexlab/fipulse/schema"
)

// ApplyEventImpacts overlays scheduled event effects onto the baseline
// forecast. Each event adds effect*multiplier to every scheduled year that
// appears in the forecast; scheduled years outside the forecast are
// silently skipped. The input slice is never mutated. Events are applied
// in sorted name order so the result is deterministic even though the
// offsets are additive.
func ApplyEventImpacts(baseline []schema.Observation, impacts map[string]float64, schedule map[string][]int, multiplier float64) []schema.Observation {
	adjusted := make([]schema.Observation, len(baseline))
	copy(adjusted, baseline)

	if len(impacts) == 0 || len(schedule) == 0 {
		return adjusted
	}

	index := make(map[int]int, len(adjusted))
	for i, obs := range adjusted {
		index[obs.Year] = i
	}

	events := make([]string, 0, len(impacts))
	for event := range impacts {
		events = append(events, event)
	}
	sort.Strings(events)

	for _, event := range events {
		effect := impacts[event]
		for _, year := range schedule[event] {
			if i, ok := index[year]; ok {
				adjusted[i].Value += effect * multiplier
			}
		}
	}

	return adjusted
}
