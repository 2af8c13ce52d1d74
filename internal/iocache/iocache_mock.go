package iocache

import (
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockResultsManager is a mock implementation of ResultsManager for testing.
type MockResultsManager struct {
	mock.Mock
}

var _ contract.ResultsManager = &MockResultsManager{} // Compile-time check

// GetResultsStore implements the ResultsManager interface.
func (m *MockResultsManager) GetResultsStore() contract.ResultsStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ResultsStore)
	return store
}
