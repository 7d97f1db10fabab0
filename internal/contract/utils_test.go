package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseYearList covers year expressions in all accepted shapes.
func TestParseYearList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
		wantErr  bool
	}{
		{
			name:     "inclusive range",
			input:    "2025-2027",
			expected: []int{2025, 2026, 2027},
		},
		{
			name:     "comma list",
			input:    "2025,2026,2030",
			expected: []int{2025, 2026, 2030},
		},
		{
			name:     "mixed list and range",
			input:    "2024, 2026-2028",
			expected: []int{2024, 2026, 2027, 2028},
		},
		{
			name:     "single year",
			input:    "2025",
			expected: []int{2025},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "reversed range",
			input:   "2027-2025",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "twenty25",
			wantErr: true,
		},
		{
			name:    "out of bounds",
			input:   "1492",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, err := ParseYearList(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, years)
		})
	}
}

// TestParseBoolString checks all accepted boolean spellings.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "YES", "True"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "false", "0", "NO"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// TestGetPlainCoverageLabel checks the threshold boundaries.
func TestGetPlainCoverageLabel(t *testing.T) {
	tests := []struct {
		points   int
		expected string
	}{
		{10, HighValue},
		{8, HighValue},
		{7, ModerateValue},
		{5, ModerateValue},
		{4, LowValue},
		{3, LowValue},
		{2, SparseValue},
		{0, SparseValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetPlainCoverageLabel(tt.points))
	}
}

// TestTruncateLabel ensures long labels are shortened and short ones untouched.
func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "Account...", TruncateLabel("Account Ownership Rate", 10))
	assert.Equal(t, "Savings", TruncateLabel("Savings", 10))
	assert.Equal(t, "abc", TruncateLabel("abc", 3))
}

// TestDateTimeFormat pins the timestamp layout used for run store display.
func TestDateTimeFormat(t *testing.T) {
	ts := time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24T09:30:00Z", ts.Format(DateTimeFormat))
}
