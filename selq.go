// Package selq analyzes and rewrites SQL SELECT statement text without
// executing it. It targets a dialect with [bracket] identifiers, TOP n row
// limits, and OFFSET/FETCH pagination, and works purely on text: a
// quote-, bracket-, and parenthesis-aware scanner locates clause
// boundaries, and every extraction or rewrite is a thin layer over that
// scanner.
//
// All operations are pure functions, safe for concurrent use, and never
// fail with an error: input that is blank, not a SELECT statement, or
// structurally broken yields a designated sentinel ("" for text results,
// nil for lists, 0 for the TOP number). Rewrites short-circuit on blank
// input, so they compose by plain call nesting:
//
//	counted := selq.ConvertSelectStatementToSelectCount(
//	    selq.ConvertSelectStatementToSelectDistinct(sql))
//
// Inputs are normalized first: comments, USE prologues, and leading CTE
// prologues are stripped the same way Normalize does.
package selq

import (
	"net/url"
	"sort"

	"github.com/spf13/cast"

	"github.com/selquery/selq/internal/columns"
	"github.com/selquery/selq/internal/ident"
	"github.com/selquery/selq/internal/normalize"
	"github.com/selquery/selq/internal/params"
	"github.com/selquery/selq/internal/rewrite"
	"github.com/selquery/selq/internal/scan"
	"github.com/selquery/selq/internal/where"
	"github.com/selquery/selq/pkg/types"
)

// ColumnDescriptor is an alias for the shared descriptor type.
type ColumnDescriptor = types.ColumnDescriptor

// PredicateDescriptor is an alias for the shared descriptor type.
type PredicateDescriptor = types.PredicateDescriptor

// Normalize strips comments, USE <db> prologues, and a leading CTE
// prologue from sql, preserving all other whitespace. Every operation in
// this package normalizes its input the same way, so callers only need
// Normalize when preparing text for their own processing.
func Normalize(sql string) string {
	return normalize.Statement(sql)
}

// ExtractFirstTableNameFromSelectClauseInSql returns the resolved name of
// the first table referenced by the statement's FROM clause, or "" when
// the text is not a SELECT statement or has no FROM table.
func ExtractFirstTableNameFromSelectClauseInSql(sql string) string {
	text := Normalize(sql)
	h, ok := scan.ParseHeader(text)
	if !ok || h.From < 0 {
		return ""
	}
	segments, _ := ident.ReadChain(text, h.FromEnd)
	if len(segments) == 0 {
		return ""
	}
	_, _, name := resolveRaw(segments)
	return name
}

// ExtractDatabaseNamesFromSql returns the de-duplicated, sorted set of
// database names across all table references in the statement: FROM
// tables, JOIN targets, and MERGE/USING targets. Only references
// qualified down to the database level contribute.
func ExtractDatabaseNamesFromSql(sql string) []string {
	text := Normalize(sql)
	set := make(map[string]struct{})
	for _, segments := range tableRefs(text) {
		database, _, _ := resolveRaw(segments)
		if database != "" {
			set[database] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExtractColumnDetailsFromSelectClauseInSql returns descriptors for the
// statement's projection list, in order. Bare literals and unaliased
// complex expressions yield no descriptor.
func ExtractColumnDetailsFromSelectClauseInSql(sql string) []types.ColumnDescriptor {
	return columns.Parse(Normalize(sql))
}

// ExtractWhereClausesFromSql returns the statement's WHERE predicates in
// order, split on top-level AND/OR.
func ExtractWhereClausesFromSql(sql string) []types.PredicateDescriptor {
	text := Normalize(sql)
	if _, ok := scan.ParseHeader(text); !ok {
		return nil
	}
	return where.Parse(text)
}

// ExtractOrderByClause returns the statement's ORDER BY clause including
// the literal ORDER BY prefix and excluding any pagination suffix, or "".
func ExtractOrderByClause(sql string) string {
	text := Normalize(sql)
	if _, ok := scan.ParseHeader(text); !ok {
		return ""
	}
	return rewrite.ExtractOrderBy(text)
}

// ExtractTopNumber returns the statement's TOP argument, accepting both
// TOP n and TOP(n) forms. 0 is the absent/unparsable sentinel; the result
// is never negative.
func ExtractTopNumber(sql string) int {
	text := Normalize(sql)
	h, ok := scan.ParseHeader(text)
	if !ok || !h.HasTop {
		return 0
	}
	n := cast.ToInt(h.TopRaw)
	if n < 0 {
		return 0
	}
	return n
}

// ConvertSelectStatementToSelectCount rewrites sql into a row-count
// query, or "" when sql is blank or not a SELECT statement.
func ConvertSelectStatementToSelectCount(sql string) string {
	return rewrite.ToCount(Normalize(sql))
}

// ConvertSelectStatementToSelectTop rewrites sql to return at most top
// rows, replacing any existing TOP value. top <= 0 fails with "".
func ConvertSelectStatementToSelectTop(sql string, top int) string {
	return rewrite.ToTop(Normalize(sql), top)
}

// ConvertSelectStatementToSelectDistinct inserts DISTINCT after SELECT,
// idempotently.
func ConvertSelectStatementToSelectDistinct(sql string) string {
	return rewrite.ToDistinct(Normalize(sql))
}

// ConvertSelectStatementToSelectOrderBy replaces or inserts the
// statement's ORDER BY clause, keeping any OFFSET/FETCH pagination suffix.
// A blank clause fails with "".
func ConvertSelectStatementToSelectOrderBy(sql, orderBy string) string {
	return rewrite.ToOrderBy(Normalize(sql), orderBy)
}

// SubstituteParameters replaces each @name parameter that has an entry in
// values with a quoted or numeric literal. Parameters without an entry are
// left untouched, as are @-sequences inside strings, quoted identifiers,
// and comments.
func SubstituteParameters(sql string, values url.Values) string {
	return params.Substitute(sql, values)
}

// resolveRaw unwraps raw chain segments and resolves them.
func resolveRaw(segments []string) (database, table, name string) {
	unwrapped := make([]string, len(segments))
	for i, s := range segments {
		unwrapped[i] = ident.Unwrap(s)
	}
	return ident.Resolve(unwrapped)
}

// tableRefs collects the raw identifier chains of every table reference
// in the statement: the comma-separated FROM list, each JOIN target, each
// USING source, and a MERGE [INTO] target.
func tableRefs(text string) [][]string {
	var refs [][]string
	if _, fromEnd := scan.Find(text, "FROM"); fromEnd >= 0 {
		clauseEnd := scan.ClauseEnd(text, fromEnd,
			"WHERE", "GROUP BY", "HAVING", "ORDER BY", "OFFSET", "UNION", ";")
		for _, piece := range scan.SplitTopLevel(text[fromEnd:clauseEnd], ',') {
			if segments, _ := ident.ReadChain(piece, 0); len(segments) > 0 {
				refs = append(refs, segments)
			}
		}
	}
	refs = append(refs, refsAfter(text, "JOIN")...)
	refs = append(refs, refsAfter(text, "USING")...)
	if _, mergeEnd := scan.Find(text, "MERGE"); mergeEnd >= 0 {
		pos := mergeEnd
		if intoEnd, ok := scan.MatchKeywordAt(text, skipSpace(text, pos), "INTO"); ok {
			pos = intoEnd
		}
		if segments, _ := ident.ReadChain(text, pos); len(segments) > 0 {
			refs = append(refs, segments)
		}
	}
	return refs
}

// refsAfter collects the identifier chain following every top-level match
// of keyword.
func refsAfter(text, keyword string) [][]string {
	var refs [][]string
	from := 0
	for {
		_, end := scan.FindFrom(text, from, keyword)
		if end < 0 {
			break
		}
		if segments, _ := ident.ReadChain(text, end); len(segments) > 0 {
			refs = append(refs, segments)
		}
		from = end
	}
	return refs
}

func skipSpace(text string, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n' || text[i] == '\r') {
		i++
	}
	return i
}
