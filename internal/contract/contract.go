// Package contract provides interfaces and shared utilities for the sizecard internal architecture.
package contract

import (
	"context"

	"github.com/oceanplan/sizecard/schema"
)

// ResultsProvider supplies the result object of a named geoprocessing function.
// A provider that has nothing for the request returns schema.EmptyReportResult
// and a nil error; the caller decides what "not found" means.
type ResultsProvider interface {
	GetResult(ctx context.Context, functionName, sketchID string) (schema.ReportResult, error)
}

// ResultsManager defines the interface for managing the results store.
// This allows the store layer to be mocked for testing.
type ResultsManager interface {
	GetResultsStore() ResultsStore
}

// ResultsStore defines the interface for persisted geoprocessing results.
type ResultsStore interface {
	// Get returns the raw result object, or nil when no row exists
	Get(functionName, sketchID string) ([]byte, error)

	// Put inserts or replaces the result object for the function and sketch
	Put(functionName, sketchID string, result []byte) error

	// GetStatus returns status information about the results store
	GetStatus() (schema.ResultsStatus, error)

	// Close closes the underlying connection
	Close() error
}

// Translator looks up localized display strings by key.
type Translator interface {
	T(key string) string
}
