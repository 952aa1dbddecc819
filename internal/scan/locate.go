package scan

import "strings"

// IsWordByte reports whether c can appear in an unquoted identifier or
// keyword.
func IsWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '@' || c == '#' || c == '$'
}

// isSpaceByte reports whether c is horizontal or vertical whitespace.
func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// lower folds an ASCII letter to lower case.
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// matchWordAt reports whether the single word appears at offset i with a
// word boundary on each side. Case-insensitive. Returns the offset just
// past the word.
func matchWordAt(text string, i int, word string) (int, bool) {
	if i > 0 && IsWordByte(text[i-1]) {
		return 0, false
	}
	if i+len(word) > len(text) {
		return 0, false
	}
	for j := 0; j < len(word); j++ {
		if lower(text[i+j]) != lower(word[j]) {
			return 0, false
		}
	}
	end := i + len(word)
	if end < len(text) && IsWordByte(text[end]) {
		return 0, false
	}
	return end, true
}

// matchKeywordAt matches a possibly multi-word keyword at offset i. The
// words must appear in order, separated by one or more whitespace bytes,
// each on its own word boundary. Returns the offset just past the last
// word.
func matchKeywordAt(text string, i int, words []string) (int, bool) {
	pos := i
	for n, word := range words {
		if n > 0 {
			start := pos
			for pos < len(text) && isSpaceByte(text[pos]) {
				pos++
			}
			if pos == start {
				return 0, false
			}
		}
		end, ok := matchWordAt(text, pos, word)
		if !ok {
			return 0, false
		}
		pos = end
	}
	return pos, true
}

// matchSeparatorAt matches a non-word separator such as ";" at offset i.
func matchSeparatorAt(text string, i int, sep string) (int, bool) {
	if !strings.HasPrefix(text[i:], sep) {
		return 0, false
	}
	return i + len(sep), true
}

// MatchKeywordAt matches a possibly multi-word keyword at offset i, with
// collapsible internal whitespace and word boundaries on both ends. It
// does not consult scanner state; callers are expected to test offsets
// they already know to be plain. Returns the offset just past the match.
func MatchKeywordAt(text string, i int, keyword string) (int, bool) {
	return matchKeywordAt(text, i, strings.Fields(keyword))
}

// FindFrom returns the start and end offsets of the first match of keyword
// at or after offset from, considering only plain, depth-0 positions.
// Multi-word keywords ("GROUP BY", "IS NOT") match with collapsible
// internal whitespace; a keyword with no word bytes (";") matches as a
// literal separator. Returns (-1, -1) when there is no match.
func FindFrom(text string, from int, keyword string) (int, int) {
	words := strings.Fields(keyword)
	literal := len(words) == 1 && !IsWordByte(words[0][0])
	for w := NewWalker(text); !w.Done(); w.Next() {
		i := w.Pos()
		if i < from || !w.State().TopLevel() {
			continue
		}
		if literal {
			if end, ok := matchSeparatorAt(text, i, words[0]); ok {
				return i, end
			}
			continue
		}
		if end, ok := matchKeywordAt(text, i, words); ok {
			return i, end
		}
	}
	return -1, -1
}

// Find returns the start and end offsets of the first top-level match of
// keyword, or (-1, -1).
func Find(text, keyword string) (int, int) {
	return FindFrom(text, 0, keyword)
}

// Locate returns the offset of the first top-level match of keyword, or -1.
func Locate(text, keyword string) int {
	start, _ := Find(text, keyword)
	return start
}

// ClauseEnd returns the offset at which the clause starting at from ends:
// the earliest top-level match of any ender at or after from, or the end of
// text when none follows.
func ClauseEnd(text string, from int, enders ...string) int {
	end := len(text)
	for _, kw := range enders {
		if start, _ := FindFrom(text, from, kw); start >= 0 && start < end {
			end = start
		}
	}
	return end
}

// FirstWord returns the first bare word of text, upper-cased, skipping
// leading whitespace and comments. Returns "" when the text opens with
// anything other than a word.
func FirstWord(text string) string {
	i := 0
	for i < len(text) {
		switch {
		case isSpaceByte(text[i]):
			i++
		case strings.HasPrefix(text[i:], "--"):
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case strings.HasPrefix(text[i:], "/*"):
			if end := strings.Index(text[i+2:], "*/"); end >= 0 {
				i += 2 + end + 2
			} else {
				return ""
			}
		default:
			start := i
			for i < len(text) && IsWordByte(text[i]) {
				i++
			}
			return strings.ToUpper(text[start:i])
		}
	}
	return ""
}
