package cmd

import (
	"github.com/findexlab/fipulse/core"
	"github.com/findexlab/fipulse/internal/contract"
	"github.com/spf13/cobra"
)

// overviewCmd prints the descriptive dataset summary.
var overviewCmd = &cobra.Command{
	Use:   "overview [dataset.csv]",
	Short: "Summarize the dataset: counts, categories, coverage, and headlines.",
	Long: `Describe the loaded dataset without fitting anything: total records,
indicator inventory, year range, categorical splits by record type,
pillar, and confidence, plus the latest headline value per indicator.

Examples:
  # Quick dataset health check
  fipulse overview data.csv

  # Machine-readable summary
  fipulse overview data.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOverview(cfg); err != nil {
			contract.LogFatal("Cannot run overview", err)
		}
	},
}
