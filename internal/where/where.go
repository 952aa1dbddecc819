// Package where decomposes the WHERE clause of a SELECT statement into
// predicate descriptors.
package where

import (
	"strings"

	"github.com/selquery/selq/internal/ident"
	"github.com/selquery/selq/internal/scan"
	"github.com/selquery/selq/pkg/types"
)

// comparison operators in longest-match-first precedence. Word operators
// match on word boundaries with collapsible whitespace; symbol operators
// match literally. Order matters: IS NOT must win over IS, >= over >, and
// so on.
var operators = []struct {
	text string
	word bool
}{
	{"IS NOT", true},
	{"NOT LIKE", true},
	{"NOT IN", true},
	{"IS", true},
	{"<>", false},
	{">=", false},
	{"<=", false},
	{"!=", false},
	{"LIKE", true},
	{"IN", true},
	{"=", false},
	{">", false},
	{"<", false},
}

// Parse extracts the predicates of the statement's WHERE clause, in
// order. Fragments joined by top-level AND/OR are decomposed
// independently; fragments with no top-level comparison operator (such as
// parenthesized groups) yield nothing.
func Parse(sql string) []types.PredicateDescriptor {
	_, bodyStart := scan.Find(sql, "WHERE")
	if bodyStart < 0 {
		return nil
	}
	bodyEnd := scan.ClauseEnd(sql, bodyStart,
		"GROUP BY", "HAVING", "ORDER BY", "OFFSET", "UNION", ";")
	body := sql[bodyStart:bodyEnd]

	var predicates []types.PredicateDescriptor
	for _, fragment := range scan.SplitBoolean(body) {
		if p, ok := decompose(fragment); ok {
			predicates = append(predicates, p)
		}
	}
	return predicates
}

// decompose splits one fragment at its first top-level comparison
// operator. The left side is collapsed to a single dotted string; the
// right side is kept verbatim, trimmed.
func decompose(fragment string) (types.PredicateDescriptor, bool) {
	opStart, opEnd, opText := findOperator(fragment)
	if opStart < 0 {
		return types.PredicateDescriptor{}, false
	}
	column := ident.Collapse(strings.TrimSpace(fragment[:opStart]))
	if column == "" {
		return types.PredicateDescriptor{}, false
	}
	return types.PredicateDescriptor{
		Column:   column,
		Operator: opText,
		Value:    strings.TrimSpace(fragment[opEnd:]),
	}, true
}

// findOperator returns the span of the first top-level comparison operator
// in the fragment and its canonical spelling, or (-1, -1, "").
func findOperator(fragment string) (int, int, string) {
	for w := scan.NewWalker(fragment); !w.Done(); w.Next() {
		i := w.Pos()
		if !w.State().TopLevel() {
			continue
		}
		for _, op := range operators {
			if op.word {
				if end, ok := scan.MatchKeywordAt(fragment, i, op.text); ok {
					return i, end, op.text
				}
			} else if strings.HasPrefix(fragment[i:], op.text) {
				return i, i + len(op.text), op.text
			}
		}
	}
	return -1, -1, ""
}
