// Package normalize prepares raw SQL text for clause analysis. It strips
// the three prologue forms the analysis engine does not want to see:
// comments, USE <db> batch prologues, and leading WITH ... AS (...)
// common-table-expression prologues. All other whitespace is preserved
// byte-for-byte. Inputs that do not exhibit a prologue pass through
// unchanged, so normalizing twice is harmless.
package normalize

import (
	"strings"

	"github.com/selquery/selq/internal/ident"
	"github.com/selquery/selq/internal/scan"
)

// Statement applies all normalization steps in order: comments first, then
// the USE prologue, then the CTE prologue.
func Statement(sql string) string {
	return StripCTEPrologue(StripUsePrologue(StripComments(sql)))
}

// StripComments removes line and block comments. A line comment is removed
// up to, but not including, its terminating newline; a block comment is
// replaced by a single space so adjacent tokens cannot fuse. Comment
// markers inside strings, quoted identifiers, or brackets are left alone.
func StripComments(sql string) string {
	var b strings.Builder
	b.Grow(len(sql))
	i := 0
	for i < len(sql) {
		c := sql[i]
		switch c {
		case '\'':
			end := copyDelimited(&b, sql, i, '\'', true)
			i = end
		case '"':
			end := copyDelimited(&b, sql, i, '"', false)
			i = end
		case '[':
			end := copyDelimited(&b, sql, i, ']', false)
			i = end
		case '-':
			if i+1 < len(sql) && sql[i+1] == '-' {
				for i < len(sql) && sql[i] != '\n' {
					i++
				}
			} else {
				b.WriteByte(c)
				i++
			}
		case '/':
			if i+1 < len(sql) && sql[i+1] == '*' {
				i += 2
				for i < len(sql) {
					if sql[i] == '*' && i+1 < len(sql) && sql[i+1] == '/' {
						i += 2
						break
					}
					i++
				}
				b.WriteByte(' ')
			} else {
				b.WriteByte(c)
				i++
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// copyDelimited copies a delimited region starting at open through its
// terminator, honoring doubled-terminator escapes when escaped is set.
// Returns the offset just past the region; an unterminated region is
// copied to end of input.
func copyDelimited(b *strings.Builder, sql string, open int, term byte, escaped bool) int {
	b.WriteByte(sql[open])
	i := open + 1
	for i < len(sql) {
		c := sql[i]
		b.WriteByte(c)
		i++
		if c != term {
			continue
		}
		if escaped && i < len(sql) && sql[i] == term {
			b.WriteByte(term)
			i++
			continue
		}
		break
	}
	return i
}

// StripUsePrologue removes leading USE <db>[;] statements and GO batch
// separators so the text begins at the first real statement.
func StripUsePrologue(sql string) string {
	i := 0
	for {
		j := skipSpace(sql, i)
		if end, ok := scan.MatchKeywordAt(sql, j, "USE"); ok {
			_, after := ident.ReadChain(sql, end)
			j = skipSpace(sql, after)
			if j < len(sql) && sql[j] == ';' {
				j++
			}
			i = j
			continue
		}
		if end, ok := scan.MatchKeywordAt(sql, j, "GO"); ok {
			i = end
			continue
		}
		return sql[i:]
	}
}

// StripCTEPrologue removes a leading WITH name [(columns)] AS (body)
// prologue, including additional comma-separated CTE terms, so the text
// begins at the main statement. Text that opens with WITH but does not
// follow the CTE shape is returned unchanged.
func StripCTEPrologue(sql string) string {
	i := skipSpace(sql, 0)
	end, ok := scan.MatchKeywordAt(sql, i, "WITH")
	if !ok {
		return sql
	}
	pos := end
	for {
		segments, after := ident.ReadChain(sql, skipSpace(sql, pos))
		if len(segments) == 0 {
			return sql
		}
		pos = skipSpace(sql, after)
		if pos < len(sql) && sql[pos] == '(' {
			_, close, ok := scan.ParenBody(sql, pos)
			if !ok {
				return sql
			}
			pos = skipSpace(sql, close+1)
		}
		asEnd, ok := scan.MatchKeywordAt(sql, pos, "AS")
		if !ok {
			return sql
		}
		pos = skipSpace(sql, asEnd)
		if pos >= len(sql) || sql[pos] != '(' {
			return sql
		}
		_, close, ok := scan.ParenBody(sql, pos)
		if !ok {
			return sql
		}
		pos = skipSpace(sql, close+1)
		if pos < len(sql) && sql[pos] == ',' {
			pos++
			continue
		}
		return sql[pos:]
	}
}

func skipSpace(sql string, i int) int {
	for i < len(sql) && (sql[i] == ' ' || sql[i] == '\t' || sql[i] == '\n' || sql[i] == '\r') {
		i++
	}
	return i
}
