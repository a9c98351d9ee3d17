package metrics

import (
	"github.com/npillmayer/strsplit"
)

// Span is a byte-range descriptor inside an input text.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// End returns the byte offset right behind the span.
func (s Span) End() uint64 {
	return s.Pos + s.Len
}

// Spans splits input by delim and returns the location of every fragment
// within input. maxSplits is interpreted as for strsplit.SplitN.
//
// Delimiters are located between consecutive spans: for spans a and b,
// input[a.End():b.Pos] equals delim.
func Spans(input, delim string, maxSplits int) ([]Span, error) {
	l, err := strsplit.Fragments(input, delim, maxSplits)
	if err != nil {
		tracer().Debugf("spans: %v", err)
		return nil, err
	}
	return SpansOf(l, len(delim)), nil
}

// SpansOf locates the fragments of l, which have to result from a split with
// a delimiter of length delimLen, within the input of the split. Reversed lists
// yield meaningless spans.
func SpansOf(l *strsplit.List, delimLen int) []Span {
	spans := make([]Span, 0, l.Len())
	var pos uint64
	for _, text := range l.All() {
		spans = append(spans, Span{Pos: pos, Len: uint64(len(text))})
		pos += uint64(len(text) + delimLen)
	}
	return spans
}
