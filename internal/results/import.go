package results

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// ImportDir copies every result object of a results directory into store.
// <dir>/<functionName>.json is stored for the aggregate (empty) sketch id and
// <dir>/<sketchId>/<functionName>.json for that sketch. Deeper files are ignored.
// Every object is validated before it is stored. It returns the number of objects stored.
func ImportDir(store contract.ResultsStore, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		var sketchID string
		switch len(parts) {
		case 1:
		case 2:
			sketchID = parts[0]
		default:
			return nil
		}
		functionName := strings.TrimSuffix(parts[len(parts)-1], ".json")

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := schema.DecodeReportResult(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := store.Put(functionName, sketchID, data); err != nil {
			return fmt.Errorf("failed to store %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}
