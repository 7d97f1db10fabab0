package runstore

import (
	"time"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockRunManager is a mock implementation of RunManager for testing.
type MockRunManager struct {
	mock.Mock
}

var _ contract.RunManager = &MockRunManager{} // Compile-time check

// GetRunStore implements the RunManager interface.
func (m *MockRunManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, indicator string, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, indicator, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, totalYears int) error {
	args := m.Called(runID, endTime, totalYears)
	return args.Error(0)
}

// RecordForecastRow implements the RunStore interface.
func (m *MockRunStore) RecordForecastRow(runID int64, indicator string, row schema.ForecastRow) error {
	args := m.Called(runID, indicator, row)
	return args.Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStatus), args.Error(1)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.ForecastRunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.ForecastRunRecord)
	return records, args.Error(1)
}

// GetAllForecastRows implements the RunStore interface.
func (m *MockRunStore) GetAllForecastRows() ([]schema.ForecastRowRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.ForecastRowRecord)
	return records, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
