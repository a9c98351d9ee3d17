package strsplit

import (
	"fmt"
	"io"
)

// Fprint writes a diagnostic dump of l to w: the number of fragments, followed
// by one line per fragment with its index and quoted text.
func (l *List) Fprint(w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	if _, err := fmt.Fprintf(w, "%d fragment(s)\n", l.Len()); err != nil {
		return err
	}
	return l.Each(func(i int, text string) error {
		_, err := fmt.Fprintf(w, "[%d] %q\n", i, text)
		return err
	})
}
