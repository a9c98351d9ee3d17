package strsplit

import (
	"math"
	"slices"
)

// Direction is the direction from which delimiter occurrences are consumed.
type Direction int8

// Scan directions. The direction does not change the order of fragments in a
// result list.
const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Result describes a successful split.
type Result struct {
	Splits    int       // number of delimiter occurrences honored
	Direction Direction // scan direction, derived from the sign of the limit
}

// Splitter splits input texts into fragments.
//
// The zero value is a valid splitter without limits on fragment size. A
// splitter is immutable and may be shared between goroutines, as long as every
// call receives its own list.
type Splitter struct {
	capacity int // maximum fragment length in bytes; 0 for unbounded
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithCapacity bounds the length of fragments to n bytes. A split producing a
// longer fragment fails with ErrBufferExceeded. A value of n <= 0 lifts the
// bound.
func WithCapacity(n int) Option {
	return func(s *Splitter) {
		if n < 0 {
			n = 0
		}
		s.capacity = n
	}
}

// NewSplitter creates a splitter, configured by options.
func NewSplitter(opts ...Option) *Splitter {
	s := &Splitter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Capacity returns the maximum fragment length of s, or 0 if unbounded.
func (s *Splitter) Capacity() int {
	if s == nil {
		return 0
	}
	return s.capacity
}

// Run splits input at occurrences of delim and appends the fragments to l.
//
// A non-negative maxSplits scans from the start of input and honors at most
// maxSplits delimiter occurrences, the rest of input becoming the final fragment.
// A negative maxSplits scans from the end of input, honoring at most |maxSplits|
// occurrences, the remaining prefix of input becoming the first fragment.
// Fragments are appended in their order within input in both cases.
//
// Run fails with ErrTooShort for an empty input or delimiter. If a split fails,
// l is left unchanged.
func (s *Splitter) Run(l *List, input, delim string, maxSplits int) (Result, error) {
	if l == nil {
		return Result{}, ErrIllegalArguments
	}
	if len(input) < 1 || len(delim) < 1 {
		tracer().Debugf("split: input length=%d, delimiter length=%d", len(input), len(delim))
		return Result{}, ErrTooShort
	}
	var segs []string
	res := Result{}
	if maxSplits >= 0 {
		segs = scanForward(input, delimiter(delim), maxSplits)
	} else {
		limit := -maxSplits
		if limit < 0 { // math.MinInt
			limit = math.MaxInt
		}
		segs = scanReverse(input, delimiter(delim), limit)
		res.Direction = Reverse
	}
	if c := s.Capacity(); c > 0 {
		for i, seg := range segs {
			if len(seg) > c {
				tracer().Errorf("split: fragment #%d has length %d, capacity is %d", i, len(seg), c)
				return Result{}, ErrBufferExceeded
			}
		}
	}
	for _, seg := range segs {
		_, _ = l.Append(seg) // l is not nil
	}
	res.Splits = len(segs) - 1
	tracer().Debugf("split: %s scan, %d splits performed", res.Direction, res.Splits)
	return res, nil
}

// SplitN splits input at occurrences of delim, honoring at most maxSplits of
// them. See Run for the interpretation of maxSplits.
func (s *Splitter) SplitN(l *List, input, delim string, maxSplits int) error {
	_, err := s.Run(l, input, delim, maxSplits)
	return err
}

// Split splits input at every occurrence of delim.
func (s *Splitter) Split(l *List, input, delim string) error {
	return s.SplitN(l, input, delim, len(input))
}

// SplitReversed splits input at every occurrence of delim and reverses the
// resulting list, i.e. the last fragment of input will be the head of l.
func (s *Splitter) SplitReversed(l *List, input, delim string) error {
	if err := s.Split(l, input, delim); err != nil {
		return err
	}
	return l.Reverse()
}

// Fragments splits input into a new list. See Run for the interpretation of
// maxSplits.
func (s *Splitter) Fragments(input, delim string, maxSplits int) (*List, error) {
	l := NewList()
	if _, err := s.Run(l, input, delim, maxSplits); err != nil {
		return nil, err
	}
	return l, nil
}

// scanForward returns the segments of input for at most limit splits, scanning
// from the start.
func scanForward(input string, d delimiter, limit int) []string {
	segs := make([]string, 0, 8)
	start := 0
	for splits := 0; splits < limit; splits++ {
		pos := d.next(input, start)
		if pos < 0 {
			break
		}
		segs = append(segs, input[start:pos])
		start = pos + len(d)
	}
	return append(segs, input[start:])
}

// scanReverse returns the segments of input for at most limit splits, scanning
// from the end. Segments are returned in their order within input.
func scanReverse(input string, d delimiter, limit int) []string {
	segs := make([]string, 0, 8)
	end := len(input)
	for splits := 0; splits < limit; splits++ {
		pos := d.prev(input, end)
		if pos < 0 {
			break
		}
		segs = append(segs, input[pos+len(d):end])
		end = pos
	}
	segs = append(segs, input[:end])
	slices.Reverse(segs)
	return segs
}

// --- Package level functions -----------------------------------------------

var unbounded = &Splitter{}

// Split splits input at every occurrence of delim and appends the fragments
// to l. It is equivalent to SplitN(l, input, delim, len(input)).
func Split(l *List, input, delim string) error {
	return unbounded.Split(l, input, delim)
}

// SplitN splits input at occurrences of delim and appends the fragments to l.
// A non-negative maxSplits honors at most maxSplits occurrences from the start of
// input, a negative one at most |maxSplits| occurrences from the end of input.
func SplitN(l *List, input, delim string, maxSplits int) error {
	return unbounded.SplitN(l, input, delim, maxSplits)
}

// SplitReversed splits input at every occurrence of delim and reverses the
// order of fragments in l afterwards.
func SplitReversed(l *List, input, delim string) error {
	return unbounded.SplitReversed(l, input, delim)
}

// Fragments splits input at occurrences of delim into a new list.
func Fragments(input, delim string, maxSplits int) (*List, error) {
	return unbounded.Fragments(input, delim, maxSplits)
}
