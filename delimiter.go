package strsplit

import "strings"

// delimiter locates occurrences of a non-empty delimiter text. Single-byte
// delimiters take a fast path, otherwise matching is by substring equality.
//
// Occurrences never overlap: a scan resumes right behind the most recent match
// (forward) or right in front of it (reverse).
type delimiter string

// next returns the position of the first occurrence of d in s at or after from,
// or -1.
func (d delimiter) next(s string, from int) int {
	if from+len(d) > len(s) {
		return -1
	}
	var i int
	if len(d) == 1 {
		i = strings.IndexByte(s[from:], d[0])
	} else {
		i = strings.Index(s[from:], string(d))
	}
	if i < 0 {
		return -1
	}
	return from + i
}

// prev returns the position of the last occurrence of d in s which ends at or
// before end, or -1.
func (d delimiter) prev(s string, end int) int {
	if end < len(d) {
		return -1
	}
	if len(d) == 1 {
		return strings.LastIndexByte(s[:end], d[0])
	}
	return strings.LastIndex(s[:end], string(d))
}

