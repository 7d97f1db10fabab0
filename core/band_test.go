package core

import (
	"testing"

	"github.com/findexlab/fipulse/schema"
	"github.com/stretchr/testify/assert"
)

// TestConfidenceBand checks the fixed-percentage envelope.
func TestConfidenceBand(t *testing.T) {
	values := []schema.Observation{
		{Year: 2025, Value: 50.0},
		{Year: 2026, Value: 51.5},
		{Year: 2027, Value: 0.0},
	}

	lower, upper := ConfidenceBand(values, 0.2)

	assert.InDelta(t, 40.0, lower[0].Value, 1e-9)
	assert.InDelta(t, 60.0, upper[0].Value, 1e-9)

	assert.InDelta(t, 41.2, lower[1].Value, 1e-9)
	assert.InDelta(t, 61.8, upper[1].Value, 1e-9)

	// Zero value pins both bounds at zero.
	assert.InDelta(t, 0.0, lower[2].Value, 1e-9)
	assert.InDelta(t, 0.0, upper[2].Value, 1e-9)

	assert.Equal(t, 2026, lower[1].Year)
	assert.Equal(t, 2026, upper[1].Year)
}

// TestConfidenceBandNegativeValue documents the inverted bounds for
// negative values: "lower" ends up above "upper".
func TestConfidenceBandNegativeValue(t *testing.T) {
	lower, upper := ConfidenceBand([]schema.Observation{{Year: 2025, Value: -10.0}}, 0.2)

	assert.InDelta(t, -8.0, lower[0].Value, 1e-9)
	assert.InDelta(t, -12.0, upper[0].Value, 1e-9)
}
