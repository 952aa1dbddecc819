package scan

import "strings"

// Header describes the SELECT header of a statement: the SELECT keyword
// itself plus any DISTINCT and TOP n / TOP(n) qualifiers, and the offset of
// the first top-level FROM.
type Header struct {
	SelectStart int    // offset of the SELECT keyword
	SelectEnd   int    // offset just past the SELECT keyword
	Distinct    bool   // DISTINCT qualifier present
	HasTop      bool   // TOP qualifier present
	TopRaw      string // raw TOP argument text, "" when absent
	End         int    // offset just past the last header token
	From        int    // offset of the first top-level FROM, -1 when absent
	FromEnd     int    // offset just past the FROM keyword, -1 when absent
}

// ParseHeader decomposes the SELECT header of text. It fails closed: ok is
// false unless the first non-whitespace content is a top-level SELECT
// keyword.
func ParseHeader(text string) (Header, bool) {
	var h Header
	i := 0
	for i < len(text) && isSpaceByte(text[i]) {
		i++
	}
	end, ok := matchWordAt(text, i, "SELECT")
	if !ok {
		return h, false
	}
	h.SelectStart = i
	h.SelectEnd = end
	h.End = end

	i = skipSpace(text, end)
	if dEnd, ok := matchWordAt(text, i, "DISTINCT"); ok {
		h.Distinct = true
		h.End = dEnd
		i = skipSpace(text, dEnd)
	}
	if tEnd, ok := matchWordAt(text, i, "TOP"); ok {
		h.HasTop = true
		h.End = tEnd
		i = skipSpace(text, tEnd)
		if i < len(text) && text[i] == '(' {
			if body, close, ok := ParenBody(text, i); ok {
				h.TopRaw = strings.TrimSpace(body)
				h.End = close + 1
			}
		} else {
			start := i
			for i < len(text) && !isSpaceByte(text[i]) {
				i++
			}
			if i > start {
				h.TopRaw = text[start:i]
				h.End = i
			}
		}
	}

	h.From, h.FromEnd = Find(text, "FROM")
	return h, true
}

// skipSpace returns the offset of the first non-whitespace byte at or after
// i.
func skipSpace(text string, i int) int {
	for i < len(text) && isSpaceByte(text[i]) {
		i++
	}
	return i
}

// ParenBody returns the text between the opening parenthesis at open and
// its matching close, along with the offset of the closing parenthesis.
// Quotes, brackets, and comments inside the body are respected; ok is false
// when the parenthesis never closes.
func ParenBody(text string, open int) (string, int, bool) {
	if open >= len(text) || text[open] != '(' {
		return "", 0, false
	}
	for w := NewWalker(text[open:]); !w.Done(); w.Next() {
		if w.Pos() == 0 || !w.State().Plain() {
			continue
		}
		if text[open+w.Pos()] == ')' && w.State().Depth == 1 {
			close := open + w.Pos()
			return text[open+1 : close], close, true
		}
	}
	return "", 0, false
}
