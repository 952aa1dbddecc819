package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selquery/selq/pkg/types"
)

func TestReport_JSONToFile(t *testing.T) {
	dir := t.TempDir()
	writeSQL(t, dir, "q.sql", "SELECT Name FROM People WHERE Age > 30")

	cfg := testConfig(t)
	code, err := Run(context.Background(), cfg, dir)
	require.NoError(t, err)
	require.Equal(t, 0, code)

	cfg.Format = "json"
	cfg.Output = filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, Report(cfg))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	var insp types.Inspection
	require.NoError(t, json.Unmarshal(data, &insp))
	require.Len(t, insp.Statements, 1)
	assert.Equal(t, "People", insp.Statements[0].FirstTable)
}

func TestReport_CSVToFile(t *testing.T) {
	dir := t.TempDir()
	writeSQL(t, dir, "q.sql", "SELECT Name FROM People")

	cfg := testConfig(t)
	code, err := Run(context.Background(), cfg, dir)
	require.NoError(t, err)
	require.Equal(t, 0, code)

	cfg.Format = "csv"
	cfg.Output = filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, Report(cfg))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "file,line,first_table"))
}

func TestReport_MissingData(t *testing.T) {
	cfg := testConfig(t)
	err := Report(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inspection data not found")
	assert.Contains(t, err.Error(), "run 'selq inspect' first")
}

func TestReport_BadFormat(t *testing.T) {
	dir := t.TempDir()
	writeSQL(t, dir, "q.sql", "SELECT 1 FROM t")

	cfg := testConfig(t)
	code, err := Run(context.Background(), cfg, dir)
	require.NoError(t, err)
	require.Equal(t, 0, code)

	cfg.Format = "bogus"
	err = Report(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format: bogus")
}

func TestReportSummary_MissingData(t *testing.T) {
	cfg := testConfig(t)
	err := ReportSummary(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inspection data not found")
}
