// Package ident resolves qualified identifier chains such as
// [db].[schema].[table].[column] into their (database, table, name) parts.
//
// Resolution is heuristic and catalog-unaware: the first segment and the
// last two segments win, middle segments are discarded. The rule is
// asymmetric on purpose and is relied on by every table, database, and
// column extraction; it must not be "corrected" to a schema-aware mapping.
package ident

import (
	"strings"

	"github.com/selquery/selq/internal/scan"
)

// Split breaks a dotted identifier chain into its raw segments. Dots
// inside bracket or double-quoted segments do not split. Segments are
// whitespace-trimmed but keep their delimiters.
func Split(chain string) []string {
	pieces := scan.SplitTopLevel(chain, '.')
	segments := make([]string, 0, len(pieces))
	for _, p := range pieces {
		segments = append(segments, strings.TrimSpace(p))
	}
	return segments
}

// Unwrap strips one layer of [bracket] or "double quote" delimiters from a
// segment and trims surrounding whitespace.
func Unwrap(segment string) string {
	s := strings.TrimSpace(segment)
	if len(s) >= 2 {
		if s[0] == '[' && s[len(s)-1] == ']' {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
		if s[0] == '"' && s[len(s)-1] == '"' {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// Resolve maps N unwrapped segments to (database, table, name):
//
//	N=1 -> (   ,        , seg0)
//	N=2 -> (   , seg0   , seg1)
//	N>2 -> (seg0, segN-2, segN-1)
//
// For N>3 everything between the first and the last two segments is
// discarded, so in a five-part chain the database lands on the leftmost
// segment (a linked server, say) no matter what the middle parts meant.
// That is long-standing observable behavior; callers depend on it.
func Resolve(segments []string) (database, table, name string) {
	switch n := len(segments); {
	case n == 0:
		return "", "", ""
	case n == 1:
		return "", "", segments[0]
	case n == 2:
		return "", segments[0], segments[1]
	default:
		return segments[0], segments[n-2], segments[n-1]
	}
}

// Parse splits, unwraps, and resolves a chain in one step.
func Parse(chain string) (database, table, name string) {
	if strings.TrimSpace(chain) == "" {
		return "", "", ""
	}
	segments := Split(chain)
	for i, s := range segments {
		segments[i] = Unwrap(s)
	}
	return Resolve(segments)
}

// ReadChain reads a qualified identifier chain beginning at offset i of
// text: one or more dot-joined segments, each a bare word, a [bracketed]
// segment, or a "quoted" segment, with whitespace tolerated around the
// dots. It returns the raw segments (delimiters kept) and the offset just
// past the chain; an empty slice means no chain starts there.
func ReadChain(text string, i int) ([]string, int) {
	var segments []string
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	for {
		seg, end := readSegment(text, i)
		if seg == "" {
			break
		}
		segments = append(segments, seg)
		i = end
		j := end
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j >= len(text) || text[j] != '.' {
			break
		}
		i = j + 1
		for i < len(text) && isSpace(text[i]) {
			i++
		}
	}
	return segments, i
}

// readSegment reads a single chain segment at offset i.
func readSegment(text string, i int) (string, int) {
	if i >= len(text) {
		return "", i
	}
	switch c := text[i]; {
	case c == '[':
		for j := i + 1; j < len(text); j++ {
			if text[j] == ']' {
				return text[i : j+1], j + 1
			}
		}
		return text[i:], len(text)
	case c == '"':
		for j := i + 1; j < len(text); j++ {
			if text[j] == '"' {
				return text[i : j+1], j + 1
			}
		}
		return text[i:], len(text)
	case scan.IsWordByte(c):
		j := i
		for j < len(text) && scan.IsWordByte(text[j]) {
			j++
		}
		return text[i:j], j
	}
	return "", i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Collapse reports a chain as a single dotted string built from its
// resolved parts, discarding whatever Resolve discards.
func Collapse(chain string) string {
	database, table, name := Parse(chain)
	parts := make([]string, 0, 3)
	for _, p := range []string{database, table, name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
