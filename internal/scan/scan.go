/*
 * scan.go
 *
 * Character-level scanner for SQL SELECT statement text in a dialect with
 * bracket-quoted identifiers, single-quoted strings with doubled-quote
 * escapes, double-quoted identifiers, and both line and block comments.
 *
 * The scanner does not tokenize. It classifies every byte offset of the
 * input as plain text or as the interior of a string literal, quoted
 * identifier, or comment, and tracks parenthesis nesting depth, so that
 * clause keywords and separators are only ever recognized where they are
 * structurally meaningful. Rules, in priority order at each offset:
 *
 *   1. Inside a string/identifier/comment, only that state's own
 *      terminator is interpreted: ' closes a string ('' is an escaped
 *      quote, not a terminator), " closes a quoted identifier, ] closes a
 *      bracket identifier, a newline closes a line comment, and the
 *      star-slash pair closes a block comment. Nothing nests.
 *   2. In plain text, a quote or bracket opens the matching state, two
 *      dashes open a line comment, and slash-star opens a block comment.
 *   3. In plain text, ( increments nesting depth and ) decrements it,
 *      floored at zero. Unbalanced input never fails; an unterminated
 *      state simply runs to end of input and downstream clause discovery
 *      degrades to a partial or empty result.
 *
 * Usage - incremental walk:
 *
 *	for w := scan.NewWalker(src); !w.Done(); w.Next() {
 *	    if w.State().TopLevel() {
 *	        // src[w.Pos()] is a structural byte
 *	    }
 *	}
 *
 * Usage - whole-text classification:
 *
 *	states := scan.States(src)
 */
package scan

// State is the scanner classification in effect at a single byte offset.
// At most one of the In* flags is true at a time and Depth is never
// negative.
type State struct {
	Depth          int
	InSingleQuote  bool
	InDoubleQuote  bool
	InBracket      bool
	InLineComment  bool
	InBlockComment bool
}

// Plain reports whether the offset is outside every string, quoted
// identifier, and comment.
func (s State) Plain() bool {
	return !s.InSingleQuote && !s.InDoubleQuote && !s.InBracket &&
		!s.InLineComment && !s.InBlockComment
}

// TopLevel reports whether the offset is plain and outside all parentheses.
func (s State) TopLevel() bool {
	return s.Plain() && s.Depth == 0
}

// Walker steps through input one interpreted unit at a time, carrying the
// State that applies to the byte at Pos. A step consumes one byte, or two
// for the pair forms ('' escape, -- and /* openers, */ terminator).
type Walker struct {
	src string
	pos int
	st  State
}

// NewWalker returns a Walker positioned at offset 0 of src in the plain
// state.
func NewWalker(src string) *Walker {
	return &Walker{src: src}
}

// Done reports whether the input is exhausted.
func (w *Walker) Done() bool {
	return w.pos >= len(w.src)
}

// Pos returns the current byte offset.
func (w *Walker) Pos() int {
	return w.pos
}

// State returns the classification of the byte at Pos.
func (w *Walker) State() State {
	return w.st
}

// peek returns the byte after the current offset, or 0 at end of input.
func (w *Walker) peek() byte {
	if w.pos+1 < len(w.src) {
		return w.src[w.pos+1]
	}
	return 0
}

// Next interprets the byte(s) at the current offset and advances past them.
func (w *Walker) Next() {
	if w.Done() {
		return
	}
	c := w.src[w.pos]
	switch {
	case w.st.InLineComment:
		if c == '\n' {
			w.st.InLineComment = false
		}
		w.pos++
	case w.st.InBlockComment:
		if c == '*' && w.peek() == '/' {
			w.st.InBlockComment = false
			w.pos += 2
		} else {
			w.pos++
		}
	case w.st.InSingleQuote:
		if c == '\'' {
			if w.peek() == '\'' {
				// escaped quote, stay inside the string
				w.pos += 2
			} else {
				w.st.InSingleQuote = false
				w.pos++
			}
		} else {
			w.pos++
		}
	case w.st.InDoubleQuote:
		if c == '"' {
			w.st.InDoubleQuote = false
		}
		w.pos++
	case w.st.InBracket:
		if c == ']' {
			w.st.InBracket = false
		}
		w.pos++
	default:
		switch c {
		case '\'':
			w.st.InSingleQuote = true
		case '"':
			w.st.InDoubleQuote = true
		case '[':
			w.st.InBracket = true
		case '-':
			if w.peek() == '-' {
				w.st.InLineComment = true
				w.pos++
			}
		case '/':
			if w.peek() == '*' {
				w.st.InBlockComment = true
				w.pos++
			}
		case '(':
			w.st.Depth++
		case ')':
			if w.st.Depth > 0 {
				w.st.Depth--
			}
		}
		w.pos++
	}
}

// States classifies every byte offset of src in one left-to-right pass.
// Each byte consumed by a multi-byte step is reported with the state that
// was in effect when the step began.
func States(src string) []State {
	states := make([]State, len(src))
	for w := NewWalker(src); !w.Done(); {
		st := w.st
		from := w.pos
		w.Next()
		for i := from; i < w.pos && i < len(src); i++ {
			states[i] = st
		}
	}
	return states
}
