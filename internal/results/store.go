package results

import (
	"context"
	"fmt"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// StoreProvider reads result objects from a ResultsStore.
type StoreProvider struct {
	store contract.ResultsStore
}

var _ contract.ResultsProvider = &StoreProvider{} // Compile-time check

// NewStoreProvider returns a StoreProvider over store.
func NewStoreProvider(store contract.ResultsStore) *StoreProvider {
	return &StoreProvider{store: store}
}

// GetResult implements the ResultsProvider interface.
func (p *StoreProvider) GetResult(ctx context.Context, functionName, sketchID string) (schema.ReportResult, error) {
	if err := ctx.Err(); err != nil {
		return schema.ReportResult{}, err
	}
	data, err := p.store.Get(functionName, sketchID)
	if err != nil {
		return schema.ReportResult{}, err
	}
	if data == nil {
		return schema.EmptyReportResult(), nil
	}
	result, err := schema.DecodeReportResult(data)
	if err != nil {
		return schema.ReportResult{}, fmt.Errorf("stored result %s/%s: %w", functionName, sketchID, err)
	}
	return result, nil
}
