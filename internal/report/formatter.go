package report

import (
	"fmt"
	"io"

	"github.com/selquery/selq/pkg/types"
)

// Formatter is an interface for inspection report formatters
type Formatter interface {
	// Format formats inspection data and writes to the writer
	Format(insp *types.Inspection, writer io.Writer) error

	// FormatString returns inspection data as a string
	FormatString(insp *types.Inspection) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatJSON     FormatType = "json"
	FormatTable    FormatType = "table"
	FormatCSV      FormatType = "csv"
	FormatMarkdown FormatType = "markdown"
	FormatHTML     FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatTable:
		return NewTableReporter(), nil
	case FormatCSV:
		return NewCSVReporter(), nil
	case FormatMarkdown:
		return NewMarkdownReporter(), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, table, csv, markdown, html)", format)
	}
}

// FormatToWriter formats inspection data to a writer using the specified format
func FormatToWriter(insp *types.Inspection, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(insp, writer)
}

// FormatToString formats inspection data to a string using the specified format
func FormatToString(insp *types.Inspection, format FormatType) (string, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return "", err
	}
	return formatter.FormatString(insp)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatJSON, FormatTable, FormatCSV, FormatMarkdown, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatTable),
		string(FormatCSV),
		string(FormatMarkdown),
		string(FormatHTML),
	}
}
