package strsplit

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitOnEveryOccurrence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	l := NewList()
	if err := Split(l, "Hello Cool World!", " "); err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	want := []string{"Hello", "Cool", "World!"}
	if got := l.Strings(); !slices.Equal(got, want) {
		t.Fatalf("fragments mismatch: got=%q want=%q", got, want)
	}
}

func TestSplitLimitedForward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	l := NewList()
	if err := SplitN(l, "Hello Cool World!", " ", 1); err != nil {
		t.Fatalf("SplitN failed: %v", err)
	}
	want := []string{"Hello", "Cool World!"}
	if got := l.Strings(); !slices.Equal(got, want) {
		t.Fatalf("fragments mismatch: got=%q want=%q", got, want)
	}
}

func TestSplitLimitedReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	l := NewList()
	res, err := NewSplitter().Run(l, "Hello Cool World!", " ", -1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{"Hello Cool", "World!"}
	if got := l.Strings(); !slices.Equal(got, want) {
		t.Fatalf("fragments mismatch: got=%q want=%q", got, want)
	}
	if res.Direction != Reverse || res.Splits != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSplitMultiByteDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	l := NewList()
	if err := Split(l, "HelloCoolWoorld!", "oo"); err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	want := []string{"HelloC", "lW", "rld!"}
	if got := l.Strings(); !slices.Equal(got, want) {
		t.Fatalf("fragments mismatch: got=%q want=%q", got, want)
	}
}

func TestSplitEdgeCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	for _, tc := range []struct {
		name  string
		input string
		delim string
		n     int
		want  []string
	}{
		{"no delimiter", "abc", ",", 10, []string{"abc"}},
		{"no delimiter reverse", "abc", ",", -10, []string{"abc"}},
		{"leading", ",abc", ",", 10, []string{"", "abc"}},
		{"trailing", "abc,", ",", 10, []string{"abc", ""}},
		{"consecutive", "a,,b", ",", 10, []string{"a", "", "b"}},
		{"delimiter only", ",", ",", 10, []string{"", ""}},
		{"zero limit", "a,b,c", ",", 0, []string{"a,b,c"}},
		{"limit two", "a,b,c,d", ",", 2, []string{"a", "b", "c,d"}},
		{"reverse limit two", "a,b,c,d", ",", -2, []string{"a,b", "c", "d"}},
		{"reverse leading", ",abc", ",", -5, []string{"", "abc"}},
		{"reverse trailing", "abc,", ",", -1, []string{"abc", ""}},
		{"reverse all", "a,b,c", ",", -100, []string{"a", "b", "c"}},
		{"delimiter longer than input", "ab", "abc", 5, []string{"ab"}},
		{"delimiter longer than input reverse", "ab", "abc", -5, []string{"ab"}},
		{"delimiter equals input", "abc", "abc", 5, []string{"", ""}},
		{"overlapping candidates", "aaaa", "aa", 10, []string{"", "", ""}},
		{"overlapping candidates odd", "aaa", "aa", 10, []string{"", "a"}},
		{"overlapping candidates odd reverse", "aaa", "aa", -10, []string{"a", ""}},
		{"multi-byte at boundaries", "--a--b--", "--", 10, []string{"", "a", "b", ""}},
		{"utf-8", "ä→ö→ü", "→", 10, []string{"ä", "ö", "ü"}},
	} {
		l := NewList()
		res, err := NewSplitter().Run(l, tc.input, tc.delim, tc.n)
		if err != nil {
			t.Fatalf("%s: Run failed: %v", tc.name, err)
		}
		if got := l.Strings(); !slices.Equal(got, tc.want) {
			t.Errorf("%s: fragments mismatch: got=%q want=%q", tc.name, got, tc.want)
		}
		if l.Len() != res.Splits+1 {
			t.Errorf("%s: count=%d, splits=%d", tc.name, l.Len(), res.Splits)
		}
		if err := l.checkInvariants(); err != nil {
			t.Errorf("%s: %v", tc.name, err)
		}
	}
}

func TestSplitTooShort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	l := NewList()
	if err := Split(l, "", ","); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort for empty input, got %v", err)
	}
	if err := SplitN(l, "abc", "", -1); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort for empty delimiter, got %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("failed split should leave list empty, has %d fragments", l.Len())
	}
}

func TestSplitNilList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	if err := Split(nil, "a,b", ","); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if KindOf(SplitReversed(nil, "a,b", ",")) != InvalidArgument {
		t.Fatalf("expected outcome kind INVALID_ARGUMENT")
	}
}

func TestSplitReversedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	l := NewList()
	if err := SplitReversed(l, "Hello Cool World!", " "); err != nil {
		t.Fatalf("SplitReversed failed: %v", err)
	}
	want := []string{"World!", "Cool", "Hello"}
	if got := l.Strings(); !slices.Equal(got, want) {
		t.Fatalf("fragments mismatch: got=%q want=%q", got, want)
	}
	if err := l.checkInvariants(); err != nil {
		t.Fatal(err)
	}
}

func TestSplitCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	s := NewSplitter(WithCapacity(4))
	l := NewList()
	if err := s.Split(l, "abcd efg", " "); err != nil {
		t.Fatalf("split within capacity failed: %v", err)
	}
	l2 := NewList()
	err := s.Split(l2, "abcd efghi jk", " ")
	if !errors.Is(err, ErrBufferExceeded) {
		t.Fatalf("expected ErrBufferExceeded, got %v", err)
	}
	if KindOf(err) != BufferExceeded {
		t.Fatalf("expected outcome kind BUFF_EXCEEDED, got %s", KindOf(err))
	}
	if l2.Len() != 0 {
		t.Fatalf("failed split should leave list untouched, has %d fragments", l2.Len())
	}
	// a limited split keeps long remainders together
	if err := s.SplitN(NewList(), "ab cd ef", " ", 1); !errors.Is(err, ErrBufferExceeded) {
		t.Fatalf("expected ErrBufferExceeded for remainder 'cd ef', got %v", err)
	}
	if NewSplitter(WithCapacity(-3)).Capacity() != 0 {
		t.Fatalf("negative capacity should be unbounded")
	}
}

func TestSplitRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	inputs := []string{"a", "a b c", "  ", "x--y----z--", "--", "Londonderry"}
	delims := []string{" ", "--", "o", "x", "Londonderry!"}
	for _, in := range inputs {
		for _, d := range delims {
			l, err := Fragments(in, d, len(in))
			if err != nil {
				t.Fatalf("Fragments(%q,%q) failed: %v", in, d, err)
			}
			if got := l.Join(d); got != in {
				t.Errorf("round trip of %q by %q: got=%q", in, d, got)
			}
			r, err := Fragments(in, d, -len(in)-1)
			if err != nil {
				t.Fatalf("reverse Fragments(%q,%q) failed: %v", in, d, err)
			}
			if got := r.Join(d); got != in {
				t.Errorf("reverse round trip of %q by %q: got=%q", in, d, got)
			}
			if r.Len() != l.Len() {
				t.Errorf("forward and reverse counts differ for %q by %q: %d vs %d",
					in, d, l.Len(), r.Len())
			}
		}
	}
}

func TestSplitMinIntLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	l := NewList()
	if err := SplitN(l, "a b c", " ", math.MinInt); err != nil {
		t.Fatalf("SplitN failed: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("expected 3 fragments, got %d", l.Len())
	}
}

func TestSplitCopiesInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strsplit")
	defer teardown()

	b := []byte("ab,cd")
	l := NewList()
	if err := Split(l, string(b), ","); err != nil {
		t.Fatal(err)
	}
	b[0] = 'X'
	if s, _ := l.At(0); s != "ab" {
		t.Fatalf("fragment should not alias input, got %q", s)
	}
}

func FuzzSplitRoundTrip(f *testing.F) {
	f.Add("Hello Cool World!", " ", 3)
	f.Add("HelloCoolWoorld!", "oo", -2)
	f.Add(",,", ",", 0)
	f.Fuzz(func(t *testing.T, input, delim string, n int) {
		l := NewList()
		res, err := NewSplitter().Run(l, input, delim, n)
		if input == "" || delim == "" {
			if !errors.Is(err, ErrTooShort) {
				t.Fatalf("expected ErrTooShort, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if l.Join(delim) != input {
			t.Fatalf("join mismatch for %q by %q", input, delim)
		}
		if l.Len() != res.Splits+1 {
			t.Fatalf("count=%d, splits=%d", l.Len(), res.Splits)
		}
		if n >= 0 && res.Splits > n {
			t.Fatalf("%d splits exceed limit %d", res.Splits, n)
		}
		if n < 0 && n != -n && res.Splits > -n {
			t.Fatalf("%d splits exceed limit %d", res.Splits, -n)
		}
		if res.Splits < strings.Count(input, delim) && (n >= 0 && res.Splits < n) {
			t.Fatalf("forward split stopped early: %d splits, limit %d", res.Splits, n)
		}
	})
}
