package core

import (
	"fmt"
	"time"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/internal/dataset"
	"github.com/findexlab/fipulse/internal/outwriter"
	"github.com/findexlab/fipulse/schema"
)

// LoadInputs reads the dataset plus the optional event files named in the
// config. Missing event files are an error only when explicitly configured.
func LoadInputs(cfg *contract.Config) ([]schema.DataRecord, map[string]map[string]float64, map[string][]int, error) {
	records, err := dataset.LoadCSV(cfg.DataFile, cfg.YearColumn, cfg.ValueColumn)
	if err != nil {
		return nil, nil, nil, err
	}

	var impacts map[string]map[string]float64
	if cfg.EventsFile != "" {
		impacts, err = dataset.LoadEventImpacts(cfg.EventsFile)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	var schedule map[string][]int
	if cfg.ScheduleFile != "" {
		schedule, err = dataset.LoadEventSchedule(cfg.ScheduleFile)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return records, impacts, schedule, nil
}

// resolveImpacts selects the event effects for the configured indicator.
// The impact matrix is keyed by indicator code, but users may address the
// indicator by display name, so both are tried.
func resolveImpacts(records []schema.DataRecord, indicator string, impacts map[string]map[string]float64) map[string]float64 {
	if effects := dataset.ImpactsFor(impacts, indicator); effects != nil {
		return effects
	}
	for _, rec := range records {
		if rec.Indicator == indicator && rec.IndicatorCode != "" {
			return dataset.ImpactsFor(impacts, rec.IndicatorCode)
		}
	}
	return nil
}

// pipelineOptions maps the validated config onto pipeline parameters.
func pipelineOptions(cfg *contract.Config) PipelineOptions {
	return PipelineOptions{
		Form:              cfg.Trend,
		Multiplier:        cfg.EventMultiplier,
		OptimisticFactor:  cfg.OptimisticFactor,
		PessimisticFactor: cfg.PessimisticFactor,
		UncertaintyWidth:  cfg.UncertaintyWidth,
	}
}

// GetForecastTable runs the pipeline for the configured indicator against
// already-loaded inputs. It is the shared entry point for the forecast
// command, the dashboard, and the MCP tools.
func GetForecastTable(cfg *contract.Config, records []schema.DataRecord, impacts map[string]map[string]float64, schedule map[string][]int) (schema.ForecastTable, error) {
	if cfg.Indicator == "" {
		return schema.ForecastTable{}, fmt.Errorf("--indicator is required")
	}

	series, err := dataset.AnnualSeries(records, cfg.Indicator)
	if err != nil {
		return schema.ForecastTable{}, err
	}

	effects := resolveImpacts(records, series.Indicator, impacts)
	return RunForecastPipeline(series, cfg.ForecastYears, effects, schedule, pipelineOptions(cfg))
}

// ExecuteForecast runs the forecast pipeline and prints the result.
// It serves as the main entry point for the 'forecast' command.
// Run tracking is best-effort: store failures are warned, not fatal.
func ExecuteForecast(cfg *contract.Config, mgr contract.RunManager) error {
	start := time.Now()

	records, impacts, schedule, err := LoadInputs(cfg)
	if err != nil {
		return err
	}

	table, err := GetForecastTable(cfg, records, impacts, schedule)
	if err != nil {
		return err
	}

	recordRun(cfg, mgr, start, table)

	duration := time.Since(start)
	return outwriter.PrintForecastTable(table, cfg, duration)
}

// recordRun persists one forecast invocation and its rows.
func recordRun(cfg *contract.Config, mgr contract.RunManager, start time.Time, table schema.ForecastTable) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"trend":              string(cfg.Trend),
		"years":              schema.FormatYears(cfg.ForecastYears),
		"multiplier":         cfg.EventMultiplier,
		"uncertainty_width":  cfg.UncertaintyWidth,
		"optimistic_factor":  cfg.OptimisticFactor,
		"pessimistic_factor": cfg.PessimisticFactor,
	}

	runID, err := store.BeginRun(start, table.Indicator, params)
	if err != nil {
		contract.LogWarn("Could not begin run tracking", err)
		return
	}
	for _, row := range table.Rows {
		if err := store.RecordForecastRow(runID, table.Indicator, row); err != nil {
			contract.LogWarn("Could not record forecast row", err)
			return
		}
	}
	if err := store.EndRun(runID, time.Now(), len(table.Rows)); err != nil {
		contract.LogWarn("Could not end run tracking", err)
	}
}

// GetTrendSummaries fits a trend and computes growth rates for each
// indicator in the dataset, or just the configured one when set.
// Indicators too sparse to fit keep their growth points with a zero drift.
func GetTrendSummaries(cfg *contract.Config, records []schema.DataRecord) ([]schema.TrendSummary, error) {
	indicators := schema.IndicatorNames(records)
	if cfg.Indicator != "" {
		series, err := dataset.AnnualSeries(records, cfg.Indicator)
		if err != nil {
			return nil, err
		}
		indicators = []string{series.Indicator}
	}

	summaries := make([]schema.TrendSummary, 0, len(indicators))
	for _, indicator := range indicators {
		series, err := dataset.AnnualSeries(records, indicator)
		if err != nil {
			continue
		}

		summary := schema.TrendSummary{
			Indicator: series.Indicator,
			Points:    GrowthRates(series),
			Coverage:  contract.GetPlainCoverageLabel(len(series.Observations)),
		}
		if model, err := FitTrend(series, cfg.Trend); err == nil {
			summary.AnnualDrift = AnnualDrift(model)
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) == 0 {
		return nil, fmt.Errorf("no indicator series could be built from %q", cfg.DataFile)
	}
	return summaries, nil
}

// ExecuteTrends computes per-indicator growth and trend summaries and
// prints them. It serves as the main entry point for the 'trends' command.
func ExecuteTrends(cfg *contract.Config) error {
	start := time.Now()

	records, _, _, err := LoadInputs(cfg)
	if err != nil {
		return err
	}

	summaries, err := GetTrendSummaries(cfg, records)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.PrintTrendSummaries(summaries, cfg, duration)
}

// ExecuteOverview prints the descriptive dataset summary.
// It serves as the main entry point for the 'overview' command.
func ExecuteOverview(cfg *contract.Config) error {
	start := time.Now()

	records, _, _, err := LoadInputs(cfg)
	if err != nil {
		return err
	}

	overview := BuildOverview(records)

	duration := time.Since(start)
	return outwriter.PrintOverview(overview, cfg, duration)
}
