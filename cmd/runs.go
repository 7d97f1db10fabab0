package cmd

import (
	"fmt"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/internal/runstore"
	"github.com/findexlab/fipulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run-tracking operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-tracking config values
	backend := schema.DatabaseBackend(viper.GetString("runs-backend"))
	connStr := viper.GetString("runs-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize run tracking with the loaded config
	if err := runstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsCmd focused on forecast run tracking management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by analysis commands. This avoids dataset
// loading and forecast parameter validation for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage forecast run tracking (history of pipeline invocations)",
	Long: `Manage the forecast run store that records every pipeline invocation.

Each forecast run is persisted with its configuration parameters and the
full scenario table it produced, so results can be audited and compared
over time.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run store statistics and connection info
  clear   - Remove all recorded runs
  export  - Export recorded runs to Parquet files
  migrate - Apply schema migrations to the run store

Examples:
  # Check run store status
  fipulse runs status

  # Clear recorded runs
  fipulse runs clear`,
}

// runsStatusCmd shows run store status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run store statistics and connection details",
	Long: `Show detailed information about the forecast run store.

Displays:
- Backend type and connection status
- Total number of recorded runs and forecast rows
- Last and oldest run timestamps
- Per-table row counts

Examples:
  # Check SQLite run store (default)
  fipulse runs status

  # Check PostgreSQL run store
  FIPULSE_RUNS_BACKEND=postgresql FIPULSE_RUNS_DB_CONNECT="..." fipulse runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := runstore.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get runs status", err)
		}
		runstore.PrintRunStatus(status)
	},
}

// runsClearCmd clears the recorded runs.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded forecast runs",
	Long: `Delete all recorded forecast run data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the run tracking tables

Examples:
  # Clear SQLite run history (default)
  fipulse runs clear

  # Clear MySQL run history (set connection string via env variable)
  FIPULSE_RUNS_BACKEND=mysql FIPULSE_RUNS_DB_CONNECT="..." fipulse runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ClearRuns(cfg.RunsBackend, contract.GetRunsDBFilePath(), cfg.RunsDBConnect); err != nil {
			contract.LogFatal("Failed to clear runs", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// runsExportCmd exports recorded runs to Parquet.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs and forecast rows to Parquet files",
	Long: `Export the full run history to Parquet files for external analysis.

Two files are written next to the given output path: one holding the run
metadata and one holding every persisted forecast row.

Examples:
  # Export to runs.forecast_runs.parquet / runs.forecast_rows.parquet
  fipulse runs export --output-file runs`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteRunsExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Failed to export runs", err)
		}
	},
}

// runsMigrateCmd applies schema migrations to the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations to the run store",
	Long: `Run database schema migrations for the forecast run store.

By default migrates to the latest version. Use --target-version to pin a
specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest schema
  fipulse runs migrate

  # Roll back all migrations
  fipulse runs migrate --target-version 0`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(cfg.RunsBackend, cfg.RunsDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate runs store", err)
		}
	},
}
