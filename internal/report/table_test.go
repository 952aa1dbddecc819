package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selquery/selq/pkg/types"
)

func TestTableReporter_FormatString(t *testing.T) {
	out, err := NewTableReporter().FormatString(sampleInspection())
	require.NoError(t, err)

	// StyleLight upper-cases the header row
	assert.Contains(t, out, "FIRST TABLE")
	assert.Contains(t, out, "ORDER BY")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "Users")
	assert.Contains(t, out, "Name AS UserName, Age")
	assert.Contains(t, out, "Age >= 21")
	assert.Contains(t, out, "crm")
	assert.True(t, strings.HasSuffix(out, "(2 statements)"))
}

func TestTableReporter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableReporter().Format(sampleInspection(), &buf))
	assert.True(t, strings.HasSuffix(buf.String(), "(2 statements)\n"))
}

func TestTableReporter_EmptyStatements(t *testing.T) {
	out, err := NewTableReporter().FormatString(&types.Inspection{Version: "1.0"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "(0 statements)"))
}

func TestMarkdownReporter_FormatString(t *testing.T) {
	out, err := NewMarkdownReporter().FormatString(sampleInspection())
	require.NoError(t, err)

	// The markdown render keeps the header casing
	assert.Contains(t, out, "| First Table |")
	assert.Contains(t, out, "| queries/users.sql |")
	assert.Contains(t, out, "| Age DESC |")
}

func TestTableReporter_Name(t *testing.T) {
	assert.Equal(t, "table", NewTableReporter().Name())
	assert.Equal(t, "markdown", NewMarkdownReporter().Name())
}

func TestColumnSummary(t *testing.T) {
	cols := []types.ColumnDescriptor{
		{Name: "Id"},
		{Name: "Name", Alias: "n"},
	}
	assert.Equal(t, "Id, Name AS n", columnSummary(cols))
	assert.Equal(t, "", columnSummary(nil))
}

func TestPredicateSummary(t *testing.T) {
	preds := []types.PredicateDescriptor{
		{Column: "a", Operator: "=", Value: "1"},
		{Column: "b", Operator: "LIKE", Value: "'x%'"},
	}
	assert.Equal(t, "a = 1, b LIKE 'x%'", predicateSummary(preds))
}

func TestTopCell(t *testing.T) {
	assert.Equal(t, "", topCell(0))
	assert.Equal(t, "25", topCell(25))
}
