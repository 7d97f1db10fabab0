package outwriter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrendSummaries() []schema.TrendSummary {
	return []schema.TrendSummary{
		{
			Indicator: "Account Ownership Rate",
			Points: []schema.GrowthPoint{
				{Year: 2021, Value: 46.0},
				{Year: 2024, Value: 49.0, GrowthPct: 6.52, HasGrowth: true},
			},
			AnnualDrift: 2.25,
			Coverage:    contract.SparseValue,
		},
		{
			Indicator: "Mobile Money Activity Rate",
			Points: []schema.GrowthPoint{
				{Year: 2024, Value: 9.0},
			},
			AnnualDrift: 0.0,
			Coverage:    contract.SparseValue,
		},
	}
}

func TestPrintTrendSummariesCSV(t *testing.T) {
	cfg := forecastOutputConfig(t, schema.CSVOut, "trends.csv")

	require.NoError(t, PrintTrendSummaries(sampleTrendSummaries(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// One header plus one row per indicator-year.
	require.Len(t, lines, 4)
	assert.Equal(t, "indicator,year,value,growth_pct,annual_drift,coverage", lines[0])
	assert.Contains(t, lines[1], "Account Ownership Rate,2021,46.00,,")
	assert.Contains(t, lines[2], "6.52")
	assert.Contains(t, lines[3], "Sparse")
}

func TestPrintTrendSummariesJSON(t *testing.T) {
	cfg := forecastOutputConfig(t, schema.JSONOut, "trends.json")

	require.NoError(t, PrintTrendSummaries(sampleTrendSummaries(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"indicator": "Account Ownership Rate"`)
	assert.Contains(t, text, `"observations": 2`)
	assert.Contains(t, text, `"annual_drift": 2.25`)
}

func TestPrintTrendSummariesText(t *testing.T) {
	cfg := forecastOutputConfig(t, schema.TextOut, "trends.txt")
	cfg.Width = 120

	require.NoError(t, PrintTrendSummaries(sampleTrendSummaries(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Account Ownership Rate")
	assert.Contains(t, text, "49.00")
	assert.Contains(t, text, "Sparse")
	assert.Contains(t, text, "Trend analysis for 2 indicators")
}

func TestPrintOverviewText(t *testing.T) {
	cfg := forecastOutputConfig(t, schema.TextOut, "overview.txt")
	cfg.Width = 120

	overview := schema.OverviewResult{
		TotalRecords: 6,
		Indicators:   []string{"Account Ownership Rate", "Mobile Money Activity Rate"},
		YearRange:    [2]int{2011, 2024},
		RecordTypes:  []schema.CategoryCount{{Value: "historical", Count: 5}, {Value: "event", Count: 1}},
		Pillars:      []schema.CategoryCount{{Value: "access", Count: 4}},
		Headlines: []schema.HeadlineMetric{
			{Indicator: "Account Ownership Rate", Year: 2024, Value: 49.0},
		},
	}

	require.NoError(t, PrintOverview(overview, cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "6 records across 2 indicators (2011-2024)")
	assert.Contains(t, text, "historical")
	assert.Contains(t, text, "49.00")
}

func TestPrintMethodologyText(t *testing.T) {
	cfg := forecastOutputConfig(t, schema.TextOut, "methodology.txt")
	cfg.Trend = schema.LinearTrend
	cfg.EventMultiplier = 1.0
	cfg.OptimisticFactor = 1.2
	cfg.PessimisticFactor = 0.7
	cfg.UncertaintyWidth = 0.2

	require.NoError(t, PrintMethodology(cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Forecast Methodology")
	assert.Contains(t, text, "optimistic = baseline + 1.20*delta")
	assert.Contains(t, text, "pessimistic = baseline + 0.70*delta")
	assert.Contains(t, text, "1.00 * sum(effects scheduled in y)")
	assert.Contains(t, text, "heuristic envelope")
}

func TestGetMaxTableLabelWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "narrow override clamps to minimum", width: 40, expected: 15},
		{name: "standard terminal", width: 80, expected: 40},
		{name: "wide terminal clamps to maximum", width: 200, expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTableLabelWidth(cfg))
		})
	}
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "52.71", fmtFloat(52.707))
	assert.Equal(t, "%d", intFmt)

	fmtFloat0, _ := createFormatters(0)
	assert.Equal(t, "53", fmtFloat0(52.707))
}

func TestWriteWithFileReportsPathErrors(t *testing.T) {
	badPath := filepath.Join(t.TempDir(), "missing", "out.json")
	err := PrintMethodology(&contract.Config{Output: schema.JSONOut, OutputFile: badPath})
	assert.Error(t, err)
}
