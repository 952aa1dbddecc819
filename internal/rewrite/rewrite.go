/*
 * rewrite.go
 *
 * Textual SELECT statement rewrites: TOP injection, DISTINCT injection,
 * COUNT conversion, and ORDER BY replacement.
 *
 * Every operation follows the same three-step shape. Validate: blank input
 * or input that does not begin with a top-level SELECT fails. Decompose:
 * the SELECT header (through any DISTINCT / TOP qualifier) and the first
 * top-level FROM are located, and whether DISTINCT was already present is
 * captured before this call's own rewrite. Rebuild: a new header is
 * constructed for the requested operation and the input substring from
 * FROM onward is appended unmodified, so every later clause survives
 * byte-for-byte. The one exception is the COUNT conversion of a DISTINCT
 * statement, which wraps the entire original text in a subquery.
 *
 * Failure is always the empty string, never a panic or an error value, and
 * an empty input short-circuits to an empty output so rewrites compose by
 * plain call nesting.
 */
package rewrite

import (
	"strconv"
	"strings"

	"github.com/selquery/selq/internal/scan"
)

// ToTop rewrites sql to return at most n rows. An existing TOP value is
// replaced, not accumulated; n <= 0 fails.
func ToTop(sql string, n int) string {
	if sql == "" || n <= 0 {
		return ""
	}
	h, ok := scan.ParseHeader(sql)
	if !ok || h.From < 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(sql) + 16)
	b.WriteString("SELECT ")
	if h.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString("TOP ")
	b.WriteString(strconv.Itoa(n))
	b.WriteString(" ")
	b.WriteString(sql[h.From:])
	return b.String()
}

// ToDistinct inserts DISTINCT immediately after SELECT. Idempotent: a
// statement that already carries DISTINCT is returned unchanged.
func ToDistinct(sql string) string {
	if sql == "" {
		return ""
	}
	h, ok := scan.ParseHeader(sql)
	if !ok {
		return ""
	}
	if h.Distinct {
		return sql
	}
	return sql[:h.SelectEnd] + " DISTINCT" + sql[h.SelectEnd:]
}

// ToCount rewrites sql into a row-count query. Without DISTINCT the
// header simply becomes SELECT COUNT(*); with DISTINCT the entire original
// statement is wrapped so the de-duplicated row set is what gets counted.
func ToCount(sql string) string {
	if sql == "" {
		return ""
	}
	h, ok := scan.ParseHeader(sql)
	if !ok {
		return ""
	}
	if h.Distinct {
		return "SELECT COUNT(*) FROM (" + sql + ") AS DistinctCount"
	}
	if h.From < 0 {
		return ""
	}
	return "SELECT COUNT(*) " + sql[h.From:]
}

// ToOrderBy replaces or inserts the statement's ORDER BY clause. Any
// existing OFFSET ... [FETCH ...] pagination suffix is extracted first and
// re-appended verbatim after the new clause. A blank clause fails.
func ToOrderBy(sql, clause string) string {
	clause = strings.TrimSpace(clause)
	if sql == "" || clause == "" {
		return ""
	}
	if _, ok := scan.ParseHeader(sql); !ok {
		return ""
	}

	pagination := ""
	base := sql
	if pagStart := scan.Locate(sql, "OFFSET"); pagStart >= 0 {
		pagination = sql[pagStart:]
		base = sql[:pagStart]
	}
	if obStart := scan.Locate(base, "ORDER BY"); obStart >= 0 {
		base = base[:obStart]
	}

	var b strings.Builder
	b.Grow(len(sql) + len(clause) + 16)
	b.WriteString(strings.TrimRight(base, " \t\r\n"))
	b.WriteString(" ORDER BY ")
	b.WriteString(clause)
	if pagination != "" {
		b.WriteString(" ")
		b.WriteString(pagination)
	}
	return b.String()
}

// ExtractOrderBy returns the statement's ORDER BY clause including the
// literal ORDER BY prefix and excluding any pagination suffix, or "" when
// the statement has none.
func ExtractOrderBy(sql string) string {
	start := scan.Locate(sql, "ORDER BY")
	if start < 0 {
		return ""
	}
	end := scan.ClauseEnd(sql, start, "OFFSET", "UNION", ";")
	return strings.TrimSpace(sql[start:end])
}
