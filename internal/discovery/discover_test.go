package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscover_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.sql"), "SELECT 1")
	writeFile(t, filepath.Join(dir, "sub", "b.sql"), "SELECT 2")
	writeFile(t, filepath.Join(dir, "note.txt"), "not sql")
	writeFile(t, filepath.Join(dir, ".hidden", "c.sql"), "SELECT 3")

	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "a.sql", files[0].RelativePath)
	assert.Equal(t, filepath.Join(dir, "a.sql"), files[0].Path)
	assert.False(t, files[0].ModTime.IsZero())

	assert.Equal(t, filepath.Join("sub", "b.sql"), files[1].RelativePath)
}

func TestDiscover_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	writeFile(t, path, "SELECT 1")

	files, err := Discover(path)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
	assert.Equal(t, "query.sql", files[0].RelativePath)
}

func TestDiscover_SingleFileNotSQL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readme.txt")
	writeFile(t, path, "hello")

	_, err := Discover(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a SQL file")
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path not found")
}

func TestDiscover_UppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "REPORT.SQL"), "SELECT 1")

	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "REPORT.SQL", files[0].RelativePath)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want StatementKind
	}{
		{
			name: "plain select",
			stmt: "SELECT * FROM t",
			want: KindSelect,
		},
		{
			name: "lower case select",
			stmt: "select 1",
			want: KindSelect,
		},
		{
			name: "select behind prologue and comments",
			stmt: "-- q\nUSE db;\nWITH c AS (SELECT 1) SELECT a FROM t",
			want: KindSelect,
		},
		{
			name: "insert",
			stmt: "INSERT INTO t VALUES (1)",
			want: KindScript,
		},
		{
			name: "create table",
			stmt: "CREATE TABLE t (id INT)",
			want: KindScript,
		},
		{
			name: "empty",
			stmt: "",
			want: KindScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.stmt))
		})
	}
}

func TestIsSelect(t *testing.T) {
	assert.True(t, IsSelect("SELECT 1"))
	assert.False(t, IsSelect("DELETE FROM t"))
}

func TestStatementKindString(t *testing.T) {
	assert.Equal(t, "select", KindSelect.String())
	assert.Equal(t, "script", KindScript.String())
	assert.Equal(t, "unknown", StatementKind(9).String())
}
