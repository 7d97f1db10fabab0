package cmd

import (
	"github.com/findexlab/fipulse/core"
	"github.com/findexlab/fipulse/internal/contract"
	"github.com/spf13/cobra"
)

// trendsCmd summarizes growth and fitted drift per indicator.
var trendsCmd = &cobra.Command{
	Use:   "trends [dataset.csv]",
	Short: "Show year-over-year growth and fitted annual drift per indicator.",
	Long: `Compute year-over-year growth rates for every indicator in the dataset
and fit a trend to each to report its annual drift, alongside a coverage
label reflecting how many observations back the fit.

Examples:
  # Summarize all indicators
  fipulse trends data.csv

  # Focus on one indicator with a log-linear fit
  fipulse trends data.csv --indicator acct_own --trend loglinear

  # Long-format export for spreadsheets
  fipulse trends data.csv --output csv --output-file trends.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrends(cfg); err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
	},
}
