package schema

import "time"

// RunStatus holds status information about the run-tracking store.
type RunStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int64            `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalRows     int64            `json:"total_rows"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// ForecastRunRecord is one tracked forecast invocation.
type ForecastRunRecord struct {
	RunID         int64      `json:"run_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	RunDurationMs *int32     `json:"run_duration_ms"`
	Indicator     string     `json:"indicator"`
	TotalYears    int32      `json:"total_years"`
	ConfigParams  *string    `json:"config_params"`
}

// ForecastRowRecord is one stored forecast row belonging to a run.
type ForecastRowRecord struct {
	RunID       int64     `json:"run_id"`
	Indicator   string    `json:"indicator"`
	Year        int32     `json:"year"`
	Baseline    float64   `json:"baseline"`
	WithEvents  float64   `json:"with_events"`
	Optimistic  float64   `json:"optimistic"`
	BaseCase    float64   `json:"base_case"`
	Pessimistic float64   `json:"pessimistic"`
	CILower     float64   `json:"ci_lower"`
	CIUpper     float64   `json:"ci_upper"`
	CreatedAt   time.Time `json:"created_at"`
}
