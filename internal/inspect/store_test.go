package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selquery/selq/pkg/types"
)

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "inspection.json")
	store := NewStore(path)

	c := NewCollector()
	c.Add(types.StatementInfo{
		File:       "q.sql",
		Line:       3,
		Statement:  "SELECT a FROM t",
		FirstTable: "t",
		Columns:    []types.ColumnDescriptor{{Name: "a"}},
	})
	require.NoError(t, store.Save(c.Inspection()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, loaded.Version)
	require.Len(t, loaded.Statements, 1)
	assert.Equal(t, "q.sql", loaded.Statements[0].File)
	assert.Equal(t, 3, loaded.Statements[0].Line)
	assert.Equal(t, "t", loaded.Statements[0].FirstTable)
	assert.Equal(t, []types.ColumnDescriptor{{Name: "a"}}, loaded.Statements[0].Columns)
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run inspect first")
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}

func TestStore_ExistsAndDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspection.json")
	store := NewStore(path)
	assert.False(t, store.Exists())

	require.NoError(t, store.Save(NewCollector().Inspection()))
	assert.True(t, store.Exists())

	require.NoError(t, store.Delete())
	assert.False(t, store.Exists())

	// Deleting an absent file is not an error.
	require.NoError(t, store.Delete())
}

func TestNewStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultDataFile, NewStore("").Path())
	assert.Equal(t, "custom.json", NewStore("custom.json").Path())
}
