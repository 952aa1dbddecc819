package types

import (
	"fmt"
	"time"
)

// Config holds runtime configuration combining flags, environment variables,
// config file values, and defaults
type Config struct {
	// Output
	Format   string `koanf:"format"` // Report format: json, table, csv, markdown, html
	Output   string `koanf:"output"` // Output file path ("" = stdout)
	DataFile string `koanf:"data"`   // Inspection data path for save/load

	// Execution
	Parallelism int           `koanf:"parallelism"` // Max concurrent file inspections (1 = sequential)
	Debounce    time.Duration `koanf:"debounce"`    // Watch mode debounce interval

	Verbose bool `koanf:"verbose"` // Enable debug logging
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	if c.Parallelism < 0 {
		return &ConfigError{Field: "parallelism", Message: "must not be negative"}
	}
	if c.Debounce < 0 {
		return &ConfigError{Field: "debounce", Message: "must not be negative"}
	}
	return nil
}

// ColumnDescriptor describes one item of a SELECT projection list.
// DatabaseName and TableName are empty unless the column reference was
// qualified; Alias is set only for a simple reference followed by an alias
// token. For a complex expression with an explicit alias, Name carries the
// alias, Alias stays empty, and Expression carries the raw expression text.
type ColumnDescriptor struct {
	DatabaseName string `json:"database,omitempty"`
	TableName    string `json:"table,omitempty"`
	Name         string `json:"name"`
	Alias        string `json:"alias,omitempty"`
	Expression   string `json:"expression,omitempty"`
}

// PredicateDescriptor describes one comparison of a WHERE clause.
// Column is the left operand as a single dotted string; Value keeps the
// right operand's original formatting verbatim.
type PredicateDescriptor struct {
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// StatementInfo is the inspection result for a single SELECT statement.
// File is relative to the search root, Line is the 1-based line where the
// statement starts, and Statement holds the normalized statement text.
type StatementInfo struct {
	File       string                `json:"file"`
	Line       int                   `json:"line"`
	Statement  string                `json:"statement"`
	FirstTable string                `json:"first_table,omitempty"`
	Databases  []string              `json:"databases,omitempty"`
	Columns    []ColumnDescriptor    `json:"columns,omitempty"`
	Predicates []PredicateDescriptor `json:"predicates,omitempty"`
	OrderBy    string                `json:"order_by,omitempty"`
	Top        int                   `json:"top,omitempty"`
}

// Inspection is the aggregated analysis across all inspected files
type Inspection struct {
	Version    string          `json:"version"`   // Schema version (e.g., "1.0")
	Timestamp  time.Time       `json:"timestamp"` // When inspection ran
	Statements []StatementInfo `json:"statements"`
}
