package strsplit

import (
	"testing"
)

func TestTrim(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"\n\n Hello how are you doing?\t\n\n", "Hello how are you doing?"},
		{"Hello", "Hello"},
		{" \t\r\n", ""},
		{"", ""},
		{"  a b  ", "a b"},
		{"\va\v", "\va\v"}, // vertical tab is not in the whitespace class
	} {
		if got := Trim(tc.in); got != tc.want {
			t.Errorf("Trim(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestStripWhitespace(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"Hello how are you doing?\n\n", "Hellohowareyoudoing?"},
		{" a\tb\rc\nd ", "abcd"},
		{"   ", ""},
		{"", ""},
		{"äö ü", "äöü"},
	} {
		if got := StripWhitespace(tc.in); got != tc.want {
			t.Errorf("StripWhitespace(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestStartsWith(t *testing.T) {
	for _, tc := range []struct {
		text, prefix string
		want         Match
	}{
		{"Hello how are you doing?", "Hello", Matched},
		{"Hello", "Hello", Matched},
		{"Hello", "Hello!", NotMatched},
		{"Hello", "hello", NotMatched},
		{"# comment", "#", Matched},
		{"", "x", Invalid},
		{"x", "", Invalid},
	} {
		if got := StartsWith(tc.text, tc.prefix); got != tc.want {
			t.Errorf("StartsWith(%q,%q): got=%s want=%s", tc.text, tc.prefix, got, tc.want)
		}
	}
}

func TestEndsWith(t *testing.T) {
	s := "Hello how are you doing?\n\n"
	if got := EndsWith(s, "doing?"); got != NotMatched {
		t.Errorf("expected no match because of trailing newlines, got %s", got)
	}
	if got := EndsWith(Trim(s), "doing?"); got != Matched {
		t.Errorf("expected match on trimmed text, got %s", got)
	}
	if got := EndsWith("abc", "abcd"); got != Invalid {
		t.Errorf("suffix longer than text should be invalid, got %s", got)
	}
	if got := EndsWith("abc", "abc"); got != Matched {
		t.Errorf("text should end with itself, got %s", got)
	}
	if got := EndsWith("", ""); got != Invalid {
		t.Errorf("absent arguments should be invalid, got %s", got)
	}
}

func TestKindOf(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want Kind
	}{
		{nil, Success},
		{ErrTooShort, TooShort},
		{ErrNotFound, NotFound},
		{ErrUnimplemented, Unimplemented},
		{ErrBufferExceeded, BufferExceeded},
		{ErrIllegalArguments, InvalidArgument},
	} {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v): got=%s want=%s", tc.err, got, tc.want)
		}
	}
	if BufferExceeded.String() != "BUFF_EXCEEDED" {
		t.Errorf("unexpected kind name %q", BufferExceeded.String())
	}
}
