// Package columns structures the projection list of a SELECT statement
// into column descriptors.
package columns

import (
	"strings"

	"github.com/selquery/selq/internal/ident"
	"github.com/selquery/selq/internal/scan"
	"github.com/selquery/selq/pkg/types"
)

// Parse extracts the column descriptors of the SELECT projection list, in
// order. It returns nil when the text does not begin with a top-level
// SELECT. Items that are bare literals, or complex expressions without an
// explicit alias, produce no descriptor.
func Parse(sql string) []types.ColumnDescriptor {
	header, ok := scan.ParseHeader(sql)
	if !ok {
		return nil
	}
	body := sql[header.End:]
	if header.From >= 0 {
		body = sql[header.End:header.From]
	}

	var descriptors []types.ColumnDescriptor
	for _, piece := range scan.SplitTopLevel(body, ',') {
		if d, ok := parseItem(piece); ok {
			descriptors = append(descriptors, d)
		}
	}
	return descriptors
}

// parseItem classifies one projection item. ok is false for items that
// yield no descriptor.
func parseItem(piece string) (types.ColumnDescriptor, bool) {
	item := strings.TrimSpace(piece)
	if item == "" {
		return types.ColumnDescriptor{}, false
	}
	if item[0] == '*' {
		return types.ColumnDescriptor{Name: "*"}, true
	}

	// Explicit alias: expr AS alias. Handled before anything else so a
	// complex expression still surfaces under its declared name.
	if s, e := scan.Find(item, "AS"); s >= 0 {
		expr := strings.TrimSpace(item[:s])
		alias := ident.Unwrap(item[e:])
		if alias != "" {
			if isBareLiteral(expr) {
				return types.ColumnDescriptor{}, false
			}
			if isChain(expr) {
				d := resolveChain(expr)
				d.Alias = alias
				return d, true
			}
			// Complex expression: the alias is promoted into Name and the
			// alias field stays empty. The raw text rides along so the
			// expression itself is not lost.
			return types.ColumnDescriptor{Name: alias, Expression: expr}, true
		}
	}

	if isBareLiteral(item) {
		return types.ColumnDescriptor{}, false
	}
	if isChain(item) {
		return resolveChain(item), true
	}

	// Implicit alias: a simple chain followed by a second bare identifier.
	if left, alias, ok := splitImplicitAlias(item); ok {
		d := resolveChain(left)
		d.Alias = alias
		return d, true
	}

	// Unaliased complex expressions and anything unclassifiable emit
	// nothing.
	return types.ColumnDescriptor{}, false
}

// resolveChain builds a descriptor from a qualified identifier chain.
func resolveChain(chain string) types.ColumnDescriptor {
	database, table, name := ident.Parse(chain)
	return types.ColumnDescriptor{
		DatabaseName: database,
		TableName:    table,
		Name:         name,
	}
}

// splitImplicitAlias splits "chain alias" at the last top-level whitespace
// run. ok requires a valid chain on the left and a bare identifier on the
// right.
func splitImplicitAlias(item string) (string, string, bool) {
	cut := -1
	for w := scan.NewWalker(item); !w.Done(); w.Next() {
		i := w.Pos()
		if w.State().TopLevel() && (item[i] == ' ' || item[i] == '\t' || item[i] == '\n' || item[i] == '\r') {
			cut = i
		}
	}
	if cut < 0 {
		return "", "", false
	}
	left := strings.TrimSpace(item[:cut])
	alias := strings.TrimSpace(item[cut:])
	if left == "" || alias == "" || !isBareWord(alias) || !isChain(left) {
		return "", "", false
	}
	return left, alias, true
}

// isChain reports whether s is a qualified identifier chain: dot-separated
// segments that are each a bare word, a [bracketed] or "quoted" segment, or
// a trailing star.
func isChain(s string) bool {
	segments := ident.Split(s)
	for _, seg := range segments {
		if seg == "" {
			return false
		}
		if seg == "*" {
			continue
		}
		if len(seg) >= 2 && (seg[0] == '[' && seg[len(seg)-1] == ']' ||
			seg[0] == '"' && seg[len(seg)-1] == '"') {
			continue
		}
		if !isBareWord(seg) {
			return false
		}
	}
	return len(segments) > 0
}

// isBareWord reports whether s is a single undelimited identifier.
func isBareWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !scan.IsWordByte(s[i]) {
			return false
		}
	}
	return true
}

// isBareLiteral reports whether the item is nothing but a numeric or string
// literal. Literals never produce a descriptor, aliased or not.
func isBareLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '\'' {
		return stringLiteralEnd(s, 0) == len(s)
	}
	if len(s) > 1 && (s[0] == 'N' || s[0] == 'n') && s[1] == '\'' {
		return stringLiteralEnd(s, 1) == len(s)
	}
	if s[0] >= '0' && s[0] <= '9' {
		for i := 0; i < len(s); i++ {
			if c := s[i]; (c < '0' || c > '9') && c != '.' {
				return false
			}
		}
		return true
	}
	return false
}

// stringLiteralEnd returns the offset just past the single-quoted string
// opening at start, honoring doubled-quote escapes, or -1 when it never
// closes.
func stringLiteralEnd(s string, start int) int {
	i := start + 1
	for i < len(s) {
		if s[i] != '\'' {
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			i += 2
			continue
		}
		return i + 1
	}
	return -1
}
