package metrics

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/strsplit"
)

// Summary aggregates text metrics of a fragment.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// Summarize returns the summary of a text. Invalid UTF-8 bytes count as one
// character each.
func Summarize(text string) Summary {
	return Summary{
		Bytes: uint64(len(text)),
		Chars: uint64(utf8.RuneCountInString(text)),
		Lines: uint64(strings.Count(text, "\n")),
	}
}

// Fragments returns a summary for every fragment of l, in order.
func Fragments(l *strsplit.List) []Summary {
	sums := make([]Summary, 0, l.Len())
	for _, text := range l.All() {
		sums = append(sums, Summarize(text))
	}
	return sums
}

// Total returns the sum of the summaries of all fragments of l.
func Total(l *strsplit.List) Summary {
	var total Summary
	for _, s := range Fragments(l) {
		total = total.Add(s)
	}
	return total
}

// EmptyCount returns the number of empty fragments in l.
func EmptyCount(l *strsplit.List) int {
	cnt := 0
	for _, text := range l.All() {
		if text == "" {
			cnt++
		}
	}
	return cnt
}
