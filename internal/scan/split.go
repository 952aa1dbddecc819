package scan

import "strings"

// SplitTopLevel splits text on every top-level occurrence of sep. The
// separator bytes themselves are dropped; pieces are returned untrimmed so
// callers can preserve or normalize whitespace as they see fit. Separators
// inside strings, quoted identifiers, comments, or parentheses never split.
func SplitTopLevel(text string, sep byte) []string {
	var pieces []string
	prev := 0
	for w := NewWalker(text); !w.Done(); w.Next() {
		i := w.Pos()
		if text[i] == sep && w.State().TopLevel() {
			pieces = append(pieces, text[prev:i])
			prev = i + 1
		}
	}
	return append(pieces, text[prev:])
}

// SplitBoolean splits text on top-level AND / OR connectives, preserving
// fragment order. The connectives themselves are dropped.
func SplitBoolean(text string) []string {
	var fragments []string
	prev := 0
	w := NewWalker(text)
	for !w.Done() {
		i := w.Pos()
		if w.State().TopLevel() {
			if end, ok := matchWordAt(text, i, "AND"); ok {
				fragments = append(fragments, text[prev:i])
				prev = end
			} else if end, ok := matchWordAt(text, i, "OR"); ok {
				fragments = append(fragments, text[prev:i])
				prev = end
			}
		}
		w.Next()
	}
	return append(fragments, text[prev:])
}

// Statement is one piece of a multi-statement script.
type Statement struct {
	Text string // raw statement text, separators excluded
	Pos  int    // byte offset of Text within the source script
}

// SplitStatements splits a script into statements on top-level semicolons
// and on GO batch-separator lines. Blank pieces are dropped. Statement
// text is returned untrimmed; Pos points at the piece start in src.
func SplitStatements(src string) []Statement {
	var stmts []Statement
	add := func(from, to int) {
		if strings.TrimSpace(src[from:to]) != "" {
			stmts = append(stmts, Statement{Text: src[from:to], Pos: from})
		}
	}
	prev := 0
	for w := NewWalker(src); !w.Done(); w.Next() {
		i := w.Pos()
		if !w.State().TopLevel() {
			continue
		}
		if src[i] == ';' {
			add(prev, i)
			prev = i + 1
			continue
		}
		if i == 0 || src[i-1] == '\n' {
			if end, ok := batchSeparator(src, i); ok {
				add(prev, i)
				prev = end
			}
		}
	}
	add(prev, len(src))
	return stmts
}

// batchSeparator reports whether the line starting at i consists solely of
// the word GO, and returns the offset just past the line's newline.
func batchSeparator(src string, i int) (int, bool) {
	end := i
	for end < len(src) && src[end] != '\n' {
		end++
	}
	line := strings.TrimSpace(src[i:end])
	if !strings.EqualFold(line, "GO") {
		return 0, false
	}
	if end < len(src) {
		end++
	}
	return end, true
}
