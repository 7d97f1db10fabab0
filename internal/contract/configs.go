package contract

import (
	"fmt"
	"strings"

	"github.com/findexlab/fipulse/schema"
)

// Default values for configuration.
const (
	DefaultForecastYears     = "2025-2027"
	DefaultEventMultiplier   = 1.0
	DefaultUncertaintyWidth  = 0.2
	DefaultOptimisticFactor  = 1.2
	DefaultPessimisticFactor = 0.7
	DefaultPrecision         = 2
	DefaultListenAddr        = ":8980"

	MinForecastYear = 1900
	MaxForecastYear = 2100
)

// Config holds the runtime configuration for the pipeline.
// This struct remains the "final, validated" config.
type Config struct {
	DataFile     string
	EventsFile   string
	ScheduleFile string

	Indicator   string
	YearColumn  string
	ValueColumn string

	ForecastYears   []int
	Trend           schema.TrendForm
	EventMultiplier float64

	UncertaintyWidth  float64
	OptimisticFactor  float64
	PessimisticFactor float64

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext

	ListenAddr string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Events            string  `mapstructure:"events"`
	Schedule          string  `mapstructure:"schedule"`
	Indicator         string  `mapstructure:"indicator"`
	YearColumn        string  `mapstructure:"year-column"`
	ValueColumn       string  `mapstructure:"value-column"`
	Years             string  `mapstructure:"years"`
	Trend             string  `mapstructure:"trend"`
	Multiplier        float64 `mapstructure:"multiplier"`
	UncertaintyWidth  float64 `mapstructure:"uncertainty-width"`
	OptimisticFactor  float64 `mapstructure:"optimistic-factor"`
	PessimisticFactor float64 `mapstructure:"pessimistic-factor"`
	Precision         int     `mapstructure:"precision"`
	Output            string  `mapstructure:"output"`
	OutputFile        string  `mapstructure:"output-file"`
	Width             int     `mapstructure:"width"`
	Color             string  `mapstructure:"color"`
	RunsBackend       string  `mapstructure:"runs-backend"`
	RunsDBConnect     string  `mapstructure:"runs-db-connect"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ForecastYears != nil {
		clone.ForecastYears = make([]int, len(c.ForecastYears))
		copy(clone.ForecastYears, c.ForecastYears)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processForecastYears(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-year related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.DataFile = strings.TrimSpace(input.DataFileStr)
	cfg.EventsFile = strings.TrimSpace(input.Events)
	cfg.ScheduleFile = strings.TrimSpace(input.Schedule)
	cfg.Indicator = strings.TrimSpace(input.Indicator)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ListenAddr = input.Listen

	if cfg.DataFile == "" {
		return fmt.Errorf("a dataset CSV path is required (pass it as the positional argument or set 'data' in the config file)")
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Column Names ---
	cfg.YearColumn = strings.TrimSpace(input.YearColumn)
	if cfg.YearColumn == "" {
		cfg.YearColumn = schema.DefaultYearColumn
	}
	cfg.ValueColumn = strings.TrimSpace(input.ValueColumn)
	if cfg.ValueColumn == "" {
		cfg.ValueColumn = schema.DefaultValueColumn
	}

	// --- 2. Trend Form Validation ---
	cfg.Trend = schema.TrendForm(strings.ToLower(input.Trend))
	if _, ok := schema.ValidTrendForms[cfg.Trend]; !ok {
		return fmt.Errorf("invalid trend form '%s'. must be linear, loglinear", input.Trend)
	}

	// --- 3. Scenario Parameters ---
	if input.Multiplier < 0 {
		return fmt.Errorf("multiplier cannot be negative (received %.2f)", input.Multiplier)
	}
	cfg.EventMultiplier = input.Multiplier

	if input.UncertaintyWidth <= 0 || input.UncertaintyWidth >= 1 {
		return fmt.Errorf("uncertainty-width must be between 0 and 1 exclusive (received %.2f)", input.UncertaintyWidth)
	}
	cfg.UncertaintyWidth = input.UncertaintyWidth

	if input.OptimisticFactor <= 0 {
		return fmt.Errorf("optimistic-factor must be greater than 0 (received %.2f)", input.OptimisticFactor)
	}
	cfg.OptimisticFactor = input.OptimisticFactor

	if input.PessimisticFactor <= 0 {
		return fmt.Errorf("pessimistic-factor must be greater than 0 (received %.2f)", input.PessimisticFactor)
	}
	cfg.PessimisticFactor = input.PessimisticFactor

	if input.PessimisticFactor > input.OptimisticFactor {
		return fmt.Errorf("pessimistic-factor (%.2f) cannot exceed optimistic-factor (%.2f)", input.PessimisticFactor, input.OptimisticFactor)
	}

	// --- 4. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	return nil
}

// processForecastYears parses the forecast year expression.
func processForecastYears(cfg *Config, input *ConfigRawInput) error {
	years, err := ParseYearList(input.Years)
	if err != nil {
		return fmt.Errorf("invalid --years value: %w", err)
	}
	cfg.ForecastYears = years
	return nil
}

// validateBackendConfig validates the run-tracking backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
		return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
	}
	cfg.RunsDBConnect = input.RunsDBConnect
	return ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
