package report

import (
	"encoding/json"
	"io"

	"github.com/selquery/selq/internal/errors"
	"github.com/selquery/selq/pkg/types"
)

// JSONReporter formats inspection data as JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Format formats inspection data as JSON and writes to the writer
func (r *JSONReporter) Format(insp *types.Inspection, writer io.Writer) error {
	data, err := json.MarshalIndent(insp, "", "  ")
	if err != nil {
		return errors.NewFormatError("json", err.Error())
	}

	if _, err = writer.Write(data); err != nil {
		return errors.NewFormatError("json", err.Error())
	}

	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns inspection data as a JSON string
func (r *JSONReporter) FormatString(insp *types.Inspection) (string, error) {
	data, err := json.MarshalIndent(insp, "", "  ")
	if err != nil {
		return "", errors.NewFormatError("json", err.Error())
	}
	return string(data), nil
}

// FormatSummary formats a summary view of the inspection as JSON: statement
// counts per file plus overall table and database tallies
func (r *JSONReporter) FormatSummary(insp *types.Inspection) (string, error) {
	summary := make(map[string]interface{})
	summary["version"] = insp.Version
	summary["timestamp"] = insp.Timestamp
	summary["statement_count"] = len(insp.Statements)

	files := make(map[string]int)
	tables := make(map[string]int)
	databases := make(map[string]int)
	for _, info := range insp.Statements {
		files[info.File]++
		if info.FirstTable != "" {
			tables[info.FirstTable]++
		}
		for _, db := range info.Databases {
			databases[db]++
		}
	}
	summary["files"] = files
	summary["tables"] = tables
	summary["databases"] = databases

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", errors.NewFormatError("json", err.Error())
	}

	return string(data), nil
}

// Name returns the name of this reporter
func (r *JSONReporter) Name() string {
	return "json"
}
