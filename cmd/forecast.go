package cmd

import (
	"github.com/findexlab/fipulse/core"
	"github.com/findexlab/fipulse/internal/contract"
	"github.com/spf13/cobra"
)

// forecastCmd runs the scenario forecast pipeline for one indicator.
var forecastCmd = &cobra.Command{
	Use:   "forecast [dataset.csv]",
	Short: "Project an indicator forward under optimistic, base, and pessimistic scenarios.",
	Long: `Fit a trend to one indicator's annual history and project it over the
requested forecast years, layering scheduled event effects on top of the
baseline.

The output table carries eight columns per year: the trend baseline, the
event-adjusted path, the three scenarios derived from it, and the
uncertainty band around the base case.

Examples:
  # Three-year forecast for account ownership
  fipulse forecast data.csv --indicator acct_own

  # Log-linear trend with event files and a custom horizon
  fipulse forecast data.csv -i acct_own --trend loglinear \
    --events impacts.csv --schedule schedule.csv --years 2025-2030

  # Dampen all event effects by half and export to CSV
  fipulse forecast data.csv -i acct_own --multiplier 0.5 \
    --output csv --output-file forecast.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForecast(cfg, runManager); err != nil {
			contract.LogFatal("Cannot run forecast", err)
		}
	},
}
