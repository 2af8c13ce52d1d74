package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oceanplan/sizecard/internal/iocache"
	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResult(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestImportDirIntoSQLiteStore(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, filepath.Join(dir, "boundaryAreaOverlap.json"), `{"metrics":[]}`)
	writeResult(t, filepath.Join(dir, "s1", "boundaryAreaOverlap.json"),
		`{"metrics":[{"metricId":"boundaryAreaOverlap","classId":"eez","sketchId":"s1","value":7}]}`)
	writeResult(t, filepath.Join(dir, "s1", "deep", "other.json"), `{}`)
	writeResult(t, filepath.Join(dir, "notes.txt"), `skip me`)

	store, err := iocache.NewResultsStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	count, err := ImportDir(store, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	p := NewStoreProvider(store)
	result, err := p.GetResult(context.Background(), schema.SizeFunctionName, "s1")
	require.NoError(t, err)
	require.Len(t, result.Metrics, 1)
	assert.Equal(t, 7.0, result.Metrics[0].Value)

	top, err := store.Get(schema.SizeFunctionName, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"metrics":[]}`, string(top))
}

func TestImportDirRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, filepath.Join(dir, "s1", "boundaryAreaOverlap.json"), `{"metrics":`)

	store, err := iocache.NewResultsStore(schema.NoneBackend, "")
	require.NoError(t, err)

	_, err = ImportDir(store, dir)
	assert.Error(t, err)
}

func TestImportDirMissing(t *testing.T) {
	store, err := iocache.NewResultsStore(schema.NoneBackend, "")
	require.NoError(t, err)

	_, err = ImportDir(store, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
