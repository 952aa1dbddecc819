// Package params substitutes URL query parameter values into SQL text at
// @name markers. It is a plain text-substitution utility, not part of the
// clause analysis engine; it shares only the scanner so markers inside
// strings, brackets, or comments are never touched.
package params

import (
	"net/url"
	"strings"

	"github.com/selquery/selq/internal/scan"
)

// Substitute replaces every top-level @name marker that has a matching
// query parameter with that parameter's value. Numeric values are inserted
// bare; everything else is inserted as a single-quoted string with
// embedded quotes doubled. Markers without a matching parameter are left
// in place.
func Substitute(sql string, values url.Values) string {
	if sql == "" || len(values) == 0 {
		return sql
	}
	states := scan.States(sql)
	var b strings.Builder
	b.Grow(len(sql))
	i := 0
	for i < len(sql) {
		if sql[i] == '@' && states[i].Plain() && (i == 0 || !scan.IsWordByte(sql[i-1])) {
			j := i + 1
			for j < len(sql) && scan.IsWordByte(sql[j]) {
				j++
			}
			name := sql[i+1 : j]
			if name != "" && values.Has(name) {
				b.WriteString(Literal(values.Get(name)))
				i = j
				continue
			}
		}
		b.WriteByte(sql[i])
		i++
	}
	return b.String()
}

// Literal renders a parameter value as a SQL literal: numbers stay bare,
// anything else becomes a single-quoted string with quotes doubled.
func Literal(value string) string {
	if isNumeric(value) {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// isNumeric reports whether s is a plain integer or decimal, with an
// optional leading minus.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
		if len(s) == 1 {
			return false
		}
	}
	dot := false
	digits := 0
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
