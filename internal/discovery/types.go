package discovery

import "time"

// DiscoveredFile is a SQL file found during filesystem traversal.
type DiscoveredFile struct {
	Path         string    // absolute path to the file
	RelativePath string    // path relative to the search root
	ModTime      time.Time // last modification time
}

// StatementKind classifies a single SQL statement by its leading keyword.
type StatementKind int

const (
	KindSelect StatementKind = iota // plain SELECT query
	KindScript                      // anything else: DDL, DML, procedural
)

// String returns a string representation of StatementKind.
func (k StatementKind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}
