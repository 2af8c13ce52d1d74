package contract

import (
	"context"

	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/mock"
)

// MockResultsProvider is a mock implementation of ResultsProvider for testing.
type MockResultsProvider struct {
	mock.Mock
}

var _ ResultsProvider = &MockResultsProvider{} // Compile-time check

// GetResult implements the ResultsProvider interface.
func (m *MockResultsProvider) GetResult(ctx context.Context, functionName, sketchID string) (schema.ReportResult, error) {
	args := m.Called(ctx, functionName, sketchID)
	return args.Get(0).(schema.ReportResult), args.Error(1)
}

// MockResultsStore is a mock implementation of ResultsStore for testing.
type MockResultsStore struct {
	mock.Mock
}

var _ ResultsStore = &MockResultsStore{} // Compile-time check

// Get implements the ResultsStore interface.
func (m *MockResultsStore) Get(functionName, sketchID string) ([]byte, error) {
	args := m.Called(functionName, sketchID)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// Put implements the ResultsStore interface.
func (m *MockResultsStore) Put(functionName, sketchID string, result []byte) error {
	args := m.Called(functionName, sketchID, result)
	return args.Error(0)
}

// GetStatus implements the ResultsStore interface.
func (m *MockResultsStore) GetStatus() (schema.ResultsStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.ResultsStatus), args.Error(1)
}

// Close implements the ResultsStore interface.
func (m *MockResultsStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
