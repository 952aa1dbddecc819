package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selquery/selq/pkg/types"
)

func TestJSONReporter_Format(t *testing.T) {
	insp := sampleInspection()

	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter().Format(insp, &buf))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	var got types.Inspection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, insp.Version, got.Version)
	assert.True(t, got.Timestamp.Equal(insp.Timestamp))
	require.Len(t, got.Statements, 2)
	assert.Equal(t, insp.Statements[0], got.Statements[0])
	assert.Equal(t, insp.Statements[1], got.Statements[1])
}

func TestJSONReporter_FormatString(t *testing.T) {
	out, err := NewJSONReporter().FormatString(sampleInspection())
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(out, "\n"))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.0", got["version"])
}

func TestJSONReporter_FormatSummary(t *testing.T) {
	out, err := NewJSONReporter().FormatSummary(sampleInspection())
	require.NoError(t, err)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, float64(2), summary["statement_count"])

	files, ok := summary["files"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), files["queries/users.sql"])
	assert.Equal(t, float64(1), files["queries/orders.sql"])

	tables, ok := summary["tables"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), tables["Users"])
	assert.Equal(t, float64(1), tables["Orders"])

	databases, ok := summary["databases"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), databases["crm"])
}

func TestJSONReporter_Name(t *testing.T) {
	assert.Equal(t, "json", NewJSONReporter().Name())
}
