package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/spf13/cast"

	"github.com/selquery/selq/internal/errors"
	"github.com/selquery/selq/pkg/types"
)

// CSVReporter formats inspection data as CSV with one record per statement
type CSVReporter struct{}

// NewCSVReporter creates a new CSV reporter
func NewCSVReporter() *CSVReporter {
	return &CSVReporter{}
}

// Format formats inspection data as CSV and writes to the writer
func (r *CSVReporter) Format(insp *types.Inspection, writer io.Writer) error {
	s, err := r.FormatString(insp)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(writer, s); err != nil {
		return errors.NewFormatError("csv", err.Error())
	}
	_, err = io.WriteString(writer, "\n")
	return err
}

// FormatString returns inspection data as a CSV string. Multi-valued
// fields (databases, columns, predicates) are joined with semicolons
// inside their cell.
func (r *CSVReporter) FormatString(insp *types.Inspection) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"file", "line", "first_table", "databases", "columns", "predicates", "order_by", "top", "statement"}
	if err := w.Write(header); err != nil {
		return "", errors.NewFormatError("csv", err.Error())
	}

	for _, info := range insp.Statements {
		record := []string{
			info.File,
			cast.ToString(info.Line),
			info.FirstTable,
			strings.Join(info.Databases, ";"),
			joinColumns(info.Columns),
			joinPredicates(info.Predicates),
			info.OrderBy,
			cast.ToString(info.Top),
			info.Statement,
		}
		if err := w.Write(record); err != nil {
			return "", errors.NewFormatError("csv", err.Error())
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.NewFormatError("csv", err.Error())
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Name returns the name of this reporter
func (r *CSVReporter) Name() string {
	return "csv"
}

func joinColumns(cols []types.ColumnDescriptor) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		name := c.Name
		if c.Alias != "" {
			name += " AS " + c.Alias
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ";")
}

func joinPredicates(preds []types.PredicateDescriptor) string {
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		parts = append(parts, p.Column+" "+p.Operator+" "+p.Value)
	}
	return strings.Join(parts, ";")
}
