package strsplit

import "strings"

// Match is the result of a prefix or suffix test.
type Match int8

// Results of StartsWith and EndsWith. Invalid is returned for absent arguments,
// where the empty string counts as absent.
const (
	Invalid Match = iota - 1
	Matched
	NotMatched
)

func (m Match) String() string {
	switch m {
	case Matched:
		return "match"
	case NotMatched:
		return "no match"
	}
	return "invalid"
}

// asciiSpace is the set of whitespace bytes Trim and StripWhitespace remove.
const asciiSpace = " \t\n\r"

// IsSpace reports whether b is one of ' ', '\t', '\n' or '\r'.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// StartsWith tests if text starts with prefix.
func StartsWith(text, prefix string) Match {
	if text == "" || prefix == "" {
		return Invalid
	}
	if matchAt(text, 0, prefix) {
		return Matched
	}
	return NotMatched
}

// EndsWith tests if text ends with suffix. It returns Invalid if suffix is
// longer than text.
func EndsWith(text, suffix string) Match {
	if text == "" || suffix == "" || len(suffix) > len(text) {
		return Invalid
	}
	if matchAt(text, len(text)-len(suffix), suffix) {
		return Matched
	}
	return NotMatched
}

// Trim removes leading and trailing ASCII whitespace from text. For input
// consisting of whitespace only, the empty string is returned.
func Trim(text string) string {
	return strings.Trim(text, asciiSpace)
}

// StripWhitespace removes all ASCII whitespace from text, keeping the order of
// the remaining bytes.
func StripWhitespace(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if !IsSpace(text[i]) {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// matchAt reports whether text contains pat at byte position pos. It never
// reads outside of text.
func matchAt(text string, pos int, pat string) bool {
	if pos < 0 || pos+len(pat) > len(text) {
		return false
	}
	return text[pos:pos+len(pat)] == pat
}
