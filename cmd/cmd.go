// Package cmd defines the command-line interface for fipulse.
package cmd

import (
	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(methodologyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("events", "", "Path to the event impact matrix CSV")
	rootCmd.PersistentFlags().String("schedule", "", "Path to the event schedule CSV")
	rootCmd.PersistentFlags().StringP("indicator", "i", "", "Indicator display name or code to analyze")
	rootCmd.PersistentFlags().String("year-column", schema.DefaultYearColumn, "Dataset column holding the observation year")
	rootCmd.PersistentFlags().String("value-column", schema.DefaultValueColumn, "Dataset column holding the numeric value")
	rootCmd.PersistentFlags().String("years", contract.DefaultForecastYears, "Forecast years: a range (2025-2027) or list (2025,2026)")
	rootCmd.PersistentFlags().String("trend", string(schema.LinearTrend), "Trend form: linear or loglinear")
	rootCmd.PersistentFlags().Float64("multiplier", contract.DefaultEventMultiplier, "Scaling factor applied to every scheduled event effect")
	rootCmd.PersistentFlags().Float64("uncertainty-width", contract.DefaultUncertaintyWidth, "Half-width of the uncertainty band as a fraction of the base value")
	rootCmd.PersistentFlags().Float64("optimistic-factor", contract.DefaultOptimisticFactor, "Event delta multiplier for the optimistic scenario")
	rootCmd.PersistentFlags().Float64("pessimistic-factor", contract.DefaultPessimisticFactor, "Event delta multiplier for the pessimistic scenario")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("runs-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListenAddr, "Address for the dashboard HTTP server")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
