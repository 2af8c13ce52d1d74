// Package iocache persists geoprocessing results so cards can be rendered without
// the service that produced them.
package iocache

import (
	"sync"

	"github.com/oceanplan/sizecard/internal/contract"
)

// ResultsStoreManager manages the ResultsStore instance.
type ResultsStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	results      contract.ResultsStore
}

var _ contract.ResultsManager = &ResultsStoreManager{} // Compile-time check

// GetResultsStore returns the results store.
func (mgr *ResultsStoreManager) GetResultsStore() contract.ResultsStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.results
}
