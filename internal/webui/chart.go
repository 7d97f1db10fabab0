package webui

import (
	"fmt"
	"math"
	"strings"

	"github.com/findexlab/fipulse/schema"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartPoint is one labeled value in a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is one named line or band in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartConfig is a renderable chart description consumed by the dashboard
// frontend.
type ChartConfig struct {
	ChartType  string        `json:"chart_type"`
	Title      string        `json:"title"`
	XAxis      string        `json:"x_axis"`
	YAxis      string        `json:"y_axis"`
	ShowLegend bool          `json:"show_legend"`
	ShowGrid   bool          `json:"show_grid"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors"`
}

// roundTo2 rounds a value to two decimal places for display.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// chartColumn maps one forecast table column onto a chart series.
type chartColumn struct {
	name  string
	value func(schema.ForecastRow) float64
}

// scenarioLabel turns a scenario name into its legend label.
func scenarioLabel(name schema.ScenarioName) string {
	s := string(name)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildForecastChart produces a line chart with one series per scenario
// column plus the uncertainty band edges.
func BuildForecastChart(table schema.ForecastTable) *ChartConfig {
	if len(table.Rows) == 0 {
		return nil
	}

	config := &ChartConfig{
		ChartType:  "line",
		Title:      fmt.Sprintf("%s forecast", table.Indicator),
		XAxis:      "Year",
		YAxis:      table.Indicator,
		ShowLegend: true,
		ShowGrid:   true,
	}

	columns := []chartColumn{
		{"Baseline", func(r schema.ForecastRow) float64 { return r.Baseline }},
		{"With events", func(r schema.ForecastRow) float64 { return r.WithEvents }},
	}
	// Scenario series follow the canonical scenario order.
	for _, scenario := range schema.AllScenarios {
		columns = append(columns, chartColumn{
			name:  scenarioLabel(scenario),
			value: func(r schema.ForecastRow) float64 { return r.ScenarioValue(scenario) },
		})
	}
	columns = append(columns,
		chartColumn{"CI lower", func(r schema.ForecastRow) float64 { return r.CILower }},
		chartColumn{"CI upper", func(r schema.ForecastRow) float64 { return r.CIUpper }},
	)

	for _, col := range columns {
		points := make([]ChartPoint, 0, len(table.Rows))
		for _, row := range table.Rows {
			points = append(points, ChartPoint{
				Label: fmt.Sprintf("%d", row.Year),
				Value: roundTo2(col.value(row)),
			})
		}
		config.Series = append(config.Series, ChartSeries{Name: col.name, Data: points})
	}

	assignColors(config)
	return config
}

// BuildHistoryChart produces a single-series line chart for an observed
// annual series.
func BuildHistoryChart(series schema.IndicatorSeries) *ChartConfig {
	if len(series.Observations) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(series.Observations))
	for _, obs := range series.Observations {
		points = append(points, ChartPoint{
			Label: fmt.Sprintf("%d", obs.Year),
			Value: roundTo2(obs.Value),
		})
	}

	config := &ChartConfig{
		ChartType:  "line",
		Title:      fmt.Sprintf("%s history", series.Indicator),
		XAxis:      "Year",
		YAxis:      series.Indicator,
		ShowLegend: false,
		ShowGrid:   true,
		Series:     []ChartSeries{{Name: series.Indicator, Data: points}},
	}

	assignColors(config)
	return config
}

// assignColors colors each series from the default palette.
func assignColors(config *ChartConfig) {
	config.Colors = make([]string, len(config.Series))
	for i := range config.Series {
		color := defaultColors[i%len(defaultColors)]
		config.Series[i].Color = color
		config.Colors[i] = color
	}
}
