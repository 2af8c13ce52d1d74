// Package results provides the sources a card reads geoprocessing results from.
package results

import (
	"context"
	"fmt"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// NewProvider returns the ResultsProvider selected by cfg.Source.
// The store source reads from the store held by mgr.
func NewProvider(ctx context.Context, cfg *contract.Config, mgr contract.ResultsManager) (contract.ResultsProvider, error) {
	switch cfg.Source {
	case schema.FileSource, "":
		return NewFileProvider(cfg.ResultsDir), nil
	case schema.StoreSource:
		if mgr == nil || mgr.GetResultsStore() == nil {
			return nil, fmt.Errorf("results store is not initialized")
		}
		return NewStoreProvider(mgr.GetResultsStore()), nil
	case schema.S3Source:
		return NewS3Provider(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported results source: %s", cfg.Source)
	}
}

// objectName is the file or object name of a function result.
func objectName(functionName string) string {
	return functionName + ".json"
}
