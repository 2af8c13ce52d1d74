// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSizeCard prints the size card using the configured output format.
func (ow *OutWriter) WriteSizeCard(card *schema.SizeCardModel, cfg *contract.Config) error {
	return WriteSizeCardResults(card, cfg)
}

// WriteDownload exports raw metrics using the configured download format.
func (ow *OutWriter) WriteDownload(metrics []schema.Metric, cfg *contract.Config) error {
	return WriteDownloadResults(metrics, cfg)
}
