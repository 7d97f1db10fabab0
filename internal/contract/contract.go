// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/findexlab/fipulse/schema"
)

// RunStore defines the interface for tracking forecast runs and storing
// their output rows. This allows mocking the store for testing.
type RunStore interface {
	// BeginRun creates a new forecast run and returns its unique ID
	BeginRun(startTime time.Time, indicator string, configParams map[string]any) (int64, error)

	// EndRun updates the forecast run with completion data
	EndRun(runID int64, endTime time.Time, totalYears int) error

	// RecordForecastRow stores one forecast row for a run
	RecordForecastRow(runID int64, indicator string, row schema.ForecastRow) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves all tracked runs
	GetAllRuns() ([]schema.ForecastRunRecord, error)

	// GetAllForecastRows retrieves all stored forecast rows
	GetAllForecastRows() ([]schema.ForecastRowRecord, error)

	// Close closes the underlying connection
	Close() error
}

// RunManager defines the interface for accessing the run store.
// This allows the persistence layer to be mocked for testing.
type RunManager interface {
	GetRunStore() RunStore
}
