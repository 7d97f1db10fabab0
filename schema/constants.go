package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// TrendForm represents the functional form of the fitted trend.
	TrendForm string

	// ScenarioName represents a named forecast scenario.
	ScenarioName string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All trend forms supported.
const (
	LinearTrend    TrendForm = "linear" // default
	LogLinearTrend TrendForm = "loglinear"
)

// All scenarios produced by the pipeline.
const (
	OptimisticScenario  ScenarioName = "optimistic"
	BaseScenario        ScenarioName = "base"
	PessimisticScenario ScenarioName = "pessimistic"
)

// All run-tracking backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllScenarios returns scenarios in their canonical display order.
var AllScenarios = []ScenarioName{OptimisticScenario, BaseScenario, PessimisticScenario}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidTrendForms lists all valid trend forms.
var ValidTrendForms = map[TrendForm]struct{}{
	LinearTrend:    {},
	LogLinearTrend: {},
}

// ValidDatabaseBackends lists all valid run-tracking backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Column names expected in the indicator dataset.
const (
	DefaultYearColumn  = "fiscal_year"
	DefaultValueColumn = "value_numeric"
)
