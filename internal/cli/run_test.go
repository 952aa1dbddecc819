package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selquery/selq/internal/config"
	"github.com/selquery/selq/internal/inspect"
)

// writeSQL writes a SQL file under dir and returns its path.
func writeSQL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// testConfig returns the default config with the data file pointed at a
// temp directory.
func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.DataFile = filepath.Join(t.TempDir(), "inspection.json")
	return &cfg
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeSQL(t, dir, "orders.sql", "SELECT TOP 5 * FROM Orders ORDER BY Id DESC")
	writeSQL(t, dir, "users.sql", "SELECT Id, Name FROM Users WHERE Active = 1")

	cfg := testConfig(t)
	code, err := Run(context.Background(), cfg, dir)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	store := inspect.NewStore(cfg.DataFile)
	require.True(t, store.Exists())
	insp, err := store.Load()
	require.NoError(t, err)
	require.Len(t, insp.Statements, 2)

	first := insp.Statements[0]
	assert.Equal(t, "Orders", first.FirstTable)
	assert.Equal(t, 5, first.Top)
	assert.Equal(t, "Id DESC", first.OrderBy)

	second := insp.Statements[1]
	assert.Equal(t, "Users", second.FirstTable)
	require.Len(t, second.Predicates, 1)
	assert.Equal(t, "Active", second.Predicates[0].Column)
	assert.Equal(t, "=", second.Predicates[0].Operator)
	assert.Equal(t, "1", second.Predicates[0].Value)
}

func TestRun_NoSQLFiles(t *testing.T) {
	cfg := testConfig(t)
	code, err := Run(context.Background(), cfg, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	// Nothing to inspect means nothing is saved
	assert.False(t, inspect.NewStore(cfg.DataFile).Exists())
}

func TestRun_MissingPath(t *testing.T) {
	cfg := testConfig(t)
	code, err := Run(context.Background(), cfg, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "failed to discover SQL files")
}

func TestRun_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeSQL(t, dir, "a.sql", "SELECT 1 FROM t")
	writeSQL(t, dir, "b.sql", "SELECT 2 FROM u")

	cfg := testConfig(t)
	cfg.Parallelism = 2

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := Run(ctx, cfg, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	// The empty inspection is still saved
	insp, loadErr := inspect.NewStore(cfg.DataFile).Load()
	require.NoError(t, loadErr)
	assert.Empty(t, insp.Statements)
}
