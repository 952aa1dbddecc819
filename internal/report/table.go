package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cast"

	"github.com/selquery/selq/pkg/types"
)

// renderMode selects the go-pretty render flavor
type renderMode int

const (
	renderTerminal renderMode = iota
	renderMarkdown
)

// TableReporter formats inspection data as a table with one row per
// statement. The same reporter backs the table and markdown formats,
// differing only in how the assembled table is rendered.
type TableReporter struct {
	mode renderMode
}

// NewTableReporter creates a reporter for terminal table output
func NewTableReporter() *TableReporter {
	return &TableReporter{mode: renderTerminal}
}

// NewMarkdownReporter creates a reporter for markdown table output
func NewMarkdownReporter() *TableReporter {
	return &TableReporter{mode: renderMarkdown}
}

// Format renders the inspection table and writes it to the writer
func (r *TableReporter) Format(insp *types.Inspection, writer io.Writer) error {
	s, err := r.FormatString(insp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer, s)
	return err
}

// FormatString returns the rendered inspection table as a string
func (r *TableReporter) FormatString(insp *types.Inspection) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Line", "First Table", "Columns", "Predicates", "Top", "Order By", "Databases"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Columns", WidthMax: 40},
		{Name: "Predicates", WidthMax: 36},
		{Name: "Order By", WidthMax: 28},
	})

	for _, info := range insp.Statements {
		t.AppendRow(table.Row{
			info.File,
			info.Line,
			info.FirstTable,
			columnSummary(info.Columns),
			predicateSummary(info.Predicates),
			topCell(info.Top),
			info.OrderBy,
			strings.Join(info.Databases, ", "),
		})
	}

	switch r.mode {
	case renderMarkdown:
		return t.RenderMarkdown(), nil
	default:
		return t.Render() + "\n" + fmt.Sprintf("(%d statements)", len(insp.Statements)), nil
	}
}

// Name returns the name of this reporter
func (r *TableReporter) Name() string {
	if r.mode == renderMarkdown {
		return "markdown"
	}
	return "table"
}

// columnSummary joins projection entries into one display cell
func columnSummary(cols []types.ColumnDescriptor) string {
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		name := c.Name
		if c.Alias != "" {
			name += " AS " + c.Alias
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// predicateSummary joins predicates into one display cell
func predicateSummary(preds []types.PredicateDescriptor) string {
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		parts = append(parts, p.Column+" "+p.Operator+" "+p.Value)
	}
	return strings.Join(parts, ", ")
}

// topCell renders the TOP limit, hiding the 0 no-limit sentinel
func topCell(top int) string {
	if top == 0 {
		return ""
	}
	return cast.ToString(top)
}
