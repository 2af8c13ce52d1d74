package schema

import "time"

// ResultsStatus represents the status of the results store.
type ResultsStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	TotalFunctions  int       `json:"total_functions"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
}

// StoredResult is one row of the results store.
type StoredResult struct {
	FunctionName string
	SketchID     string
	Result       []byte
	UpdatedAt    time.Time
}
