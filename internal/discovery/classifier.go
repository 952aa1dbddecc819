package discovery

import (
	"github.com/selquery/selq/internal/normalize"
	"github.com/selquery/selq/internal/scan"
)

// Classify determines the kind of a single statement from its text. The
// statement is normalized first, so comments, USE prologues, and leading
// CTEs do not hide the leading keyword.
func Classify(stmt string) StatementKind {
	if scan.FirstWord(normalize.Statement(stmt)) == "SELECT" {
		return KindSelect
	}
	return KindScript
}

// IsSelect reports whether the statement is a plain SELECT query.
func IsSelect(stmt string) bool {
	return Classify(stmt) == KindSelect
}
