package cmd

import (
	"fmt"
	"strings"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/internal/outwriter"
	"github.com/findexlab/fipulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// methodologySetup loads just the scenario and output parameters, without
// requiring a dataset. The printed formulas reflect the configured factors.
func methodologySetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.EventMultiplier = viper.GetFloat64("multiplier")
	cfg.UncertaintyWidth = viper.GetFloat64("uncertainty-width")
	cfg.OptimisticFactor = viper.GetFloat64("optimistic-factor")
	cfg.PessimisticFactor = viper.GetFloat64("pessimistic-factor")

	colors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", viper.GetString("output"))
	}
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// methodologyCmd explains how the forecast numbers are produced.
var methodologyCmd = &cobra.Command{
	Use:   "methodology",
	Short: "Explain the trend fit, event adjustment, and scenario formulas.",
	Long: `Print a step-by-step description of the forecast methodology with the
currently configured parameters substituted into each formula.

Examples:
  # Methodology with default parameters
  fipulse methodology

  # See how a custom multiplier changes the formulas
  fipulse methodology --multiplier 0.5`,
	PreRunE: methodologySetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.PrintMethodology(cfg); err != nil {
			contract.LogFatal("Cannot print methodology", err)
		}
	},
}
