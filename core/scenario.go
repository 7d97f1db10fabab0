package core

import "github.com/findexlab/fipulse/schema"

// BuildScenarios brackets the event-adjusted forecast around the baseline.
// For each year the event delta is withEvents - baseline; the optimistic
// scenario amplifies it and the pessimistic scenario dampens it:
//
//	optimistic  = baseline + optimisticFactor * delta
//	base        = withEvents
//	pessimistic = baseline + pessimisticFactor * delta
//
// With no events all three scenarios collapse onto the baseline.
func BuildScenarios(baseline, withEvents []schema.Observation, optimisticFactor, pessimisticFactor float64) (optimistic, base, pessimistic []schema.Observation) {
	optimistic = make([]schema.Observation, len(baseline))
	base = make([]schema.Observation, len(baseline))
	pessimistic = make([]schema.Observation, len(baseline))

	for i, obs := range baseline {
		delta := withEvents[i].Value - obs.Value
		optimistic[i] = schema.Observation{Year: obs.Year, Value: obs.Value + optimisticFactor*delta}
		base[i] = schema.Observation{Year: obs.Year, Value: withEvents[i].Value}
		pessimistic[i] = schema.Observation{Year: obs.Year, Value: obs.Value + pessimisticFactor*delta}
	}

	return optimistic, base, pessimistic
}
