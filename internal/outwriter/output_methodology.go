package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"
)

// PrintMethodology displays the formal definition of the forecasting
// sequence. This is a static display that does not require data loading.
func PrintMethodology(cfg *contract.Config) error {
	renderModel := buildMethodologyRenderModel(cfg)

	switch cfg.Output {
	case schema.JSONOut:
		return printMethodologyJSON(renderModel, cfg)
	case schema.CSVOut:
		return printMethodologyCSV(renderModel, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMethodologyText(w, renderModel)
		}, "Wrote text")
	}
}

// printMethodologyText displays the methodology in human-readable text format.
func printMethodologyText(w io.Writer, renderModel *schema.MethodologyRenderModel) error {
	if _, err := fmt.Fprintf(w, "📈 %s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "==============================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for i, step := range renderModel.Steps {
		if _, err := fmt.Fprintf(w, "%d. %s: %s\n", i+1, step.Name, step.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n\n", step.Formula); err != nil {
			return err
		}
	}

	for _, key := range []string{"band", "events"} {
		if note, ok := renderModel.Notes[key]; ok {
			if _, err := fmt.Fprintf(w, "%s\n", note); err != nil {
				return err
			}
		}
	}
	return nil
}

// printMethodologyJSON displays the methodology in JSON format.
func printMethodologyJSON(renderModel *schema.MethodologyRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, renderModel)
	}, "Wrote JSON")
}

// printMethodologyCSV displays the methodology steps in CSV format.
func printMethodologyCSV(renderModel *schema.MethodologyRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"step", "name", "purpose", "formula"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, step := range renderModel.Steps {
				rec := []string{
					fmt.Sprintf("%d", i+1),
					step.Name,
					step.Purpose,
					step.Formula,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// buildMethodologyRenderModel constructs the methodology description using
// the configured pipeline parameters, so the displayed formulas match what
// a forecast run would actually compute.
func buildMethodologyRenderModel(cfg *contract.Config) *schema.MethodologyRenderModel {
	return &schema.MethodologyRenderModel{
		Title:       "Forecast Methodology",
		Description: "Each forecast runs a fixed sequence: trend fit, event overlay, scenario bracketing, uncertainty band",
		Steps: []schema.MethodologyStep{
			{
				Name:    "Trend",
				Purpose: "Ordinary least squares on observed years (log-transformed for log-linear form)",
				Formula: fmt.Sprintf("baseline(y) = intercept + slope*y (%s form)", cfg.Trend),
			},
			{
				Name:    "Events",
				Purpose: "Additive effects for scheduled events within the forecast horizon",
				Formula: fmt.Sprintf("with_events(y) = baseline(y) + %.2f * sum(effects scheduled in y)", cfg.EventMultiplier),
			},
			{
				Name:    "Scenarios",
				Purpose: "Bracket the event delta around the baseline",
				Formula: fmt.Sprintf("optimistic = baseline + %.2f*delta; base = with_events; pessimistic = baseline + %.2f*delta",
					cfg.OptimisticFactor, cfg.PessimisticFactor),
			},
			{
				Name:    "Band",
				Purpose: "Fixed-percentage envelope around the base case",
				Formula: fmt.Sprintf("ci = base * (1 ± %.2f)", cfg.UncertaintyWidth),
			},
		},
		Notes: map[string]string{
			"band":   "The band is a heuristic envelope, not a statistical confidence interval.",
			"events": "Events scheduled outside the forecast years are silently skipped.",
		},
	}
}
