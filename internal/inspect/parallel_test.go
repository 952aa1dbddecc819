package inspect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selquery/selq/internal/discovery"
)

// writeSQLFiles creates n numbered SQL files and returns them in input
// order.
func writeSQLFiles(t *testing.T, n int) []discovery.DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	files := make([]discovery.DiscoveredFile, n)
	for i := range files {
		name := fmt.Sprintf("q%d.sql", i)
		path := filepath.Join(dir, name)
		sql := fmt.Sprintf("SELECT c%d FROM t%d", i, i)
		require.NoError(t, os.WriteFile(path, []byte(sql), 0644))
		files[i] = discovery.DiscoveredFile{Path: path, RelativePath: name}
	}
	return files
}

func TestNewWorkerPool_ClampsToOne(t *testing.T) {
	assert.Equal(t, 1, NewWorkerPool(0).maxWorkers)
	assert.Equal(t, 1, NewWorkerPool(-5).maxWorkers)
	assert.Equal(t, 4, NewWorkerPool(4).maxWorkers)
}

func TestWorkerPool_ResultsInInputOrder(t *testing.T) {
	files := writeSQLFiles(t, 8)
	pool := NewWorkerPool(3)

	results := pool.InspectParallel(context.Background(), files)
	require.Len(t, results, len(files))

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, files[i].RelativePath, r.File.RelativePath)
		require.Len(t, r.Statements, 1)
		assert.Equal(t, fmt.Sprintf("t%d", i), r.Statements[0].FirstTable)
	}
}

func TestWorkerPool_Sequential(t *testing.T) {
	files := writeSQLFiles(t, 3)
	pool := NewWorkerPool(1)

	results := pool.InspectParallel(context.Background(), files)
	require.Len(t, results, 3)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, files[i].RelativePath, r.File.RelativePath)
	}
}

func TestWorkerPool_FailureRecordedPerFile(t *testing.T) {
	files := writeSQLFiles(t, 3)
	files[1].Path = filepath.Join(t.TempDir(), "missing.sql")

	results := NewWorkerPool(2).InspectParallel(context.Background(), files)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}

func TestWorkerPool_NoFiles(t *testing.T) {
	results := NewWorkerPool(2).InspectParallel(context.Background(), nil)
	assert.Nil(t, results)
}

func TestWorkerPool_ContextCancelled(t *testing.T) {
	files := writeSQLFiles(t, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewWorkerPool(2).InspectParallel(ctx, files)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Error(t, r.Err)
	}
}
