package results

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// FileProvider reads result objects from a directory tree laid out as
// <dir>/<sketchId>/<functionName>.json. The aggregate result without a sketch id
// lives at <dir>/<functionName>.json. This is the layout ImportDir stores.
type FileProvider struct {
	Dir string
}

var _ contract.ResultsProvider = &FileProvider{} // Compile-time check

// NewFileProvider returns a FileProvider rooted at dir.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{Dir: dir}
}

// GetResult implements the ResultsProvider interface.
func (p *FileProvider) GetResult(ctx context.Context, functionName, sketchID string) (schema.ReportResult, error) {
	if err := ctx.Err(); err != nil {
		return schema.ReportResult{}, err
	}

	path := filepath.Join(p.Dir, sketchID, objectName(functionName))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return schema.EmptyReportResult(), nil
	}
	if err != nil {
		return schema.ReportResult{}, fmt.Errorf("failed to read result %s: %w", path, err)
	}
	result, err := schema.DecodeReportResult(data)
	if err != nil {
		return schema.ReportResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
