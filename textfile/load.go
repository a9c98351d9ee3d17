package textfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/guiguan/caster"
	"github.com/npillmayer/strsplit"
)

// maxLineLength is the longest line a Scanner accepts.
const maxLineLength = 1024 * 1024

// Options control how lines are turned into records.
type Options struct {
	Delimiter     string             // delimiter between fields; must not be empty
	MaxSplits     int                // as for strsplit.SplitN, but 0 splits on every occurrence
	Trim          bool               // trim ASCII whitespace from lines before splitting
	SkipComments  bool               // drop lines starting with CommentPrefix
	CommentPrefix string             // defaults to "#"
	Splitter      *strsplit.Splitter // optional; defaults to an unbounded splitter
}

func (opts Options) commentPrefix() string {
	if opts.CommentPrefix == "" {
		return "#"
	}
	return opts.CommentPrefix
}

// Record is a line of text, split into fields.
//
// Records are broadcast to every subscriber of a Scanner, so their fields are
// immutable. Receivers wanting a list to work with call List, which creates a
// list owned by the caller.
type Record struct {
	Line   int      // line number, starting at 1
	fields []string // shared between subscribers, never modified
}

// Len returns the number of fields of rec.
func (rec Record) Len() int {
	return len(rec.fields)
}

// Field returns the field at index i, with negative indices counting from the
// end. Missing fields are returned as the empty string.
func (rec Record) Field(i int) string {
	if i < 0 {
		i += len(rec.fields)
	}
	if i < 0 || i >= len(rec.fields) {
		return ""
	}
	return rec.fields[i]
}

// Fields returns a copy of the fields of rec.
func (rec Record) Fields() []string {
	return slices.Clone(rec.fields)
}

// List returns the fields of rec as a new list, owned by the caller.
func (rec Record) List() *strsplit.List {
	l := strsplit.NewList()
	for _, f := range rec.fields {
		_, _ = l.Append(f) // l is not nil
	}
	return l
}

// EndOfRecords is published after the last record of a scan.
type EndOfRecords struct {
	Count int   // number of records published
	Err   error // error which ended the scan, if any
}

// Scanner splits lines of text and broadcasts them as records to subscribers.
//
// Blank lines are never published. Subscribers receive values of type Record,
// followed by a single EndOfRecords for every call to Scan.
//
// Publishing blocks until every subscriber channel has room for a record. Every
// subscriber therefore has to drain its channel up to and including
// EndOfRecords, otherwise Scan will not return. Close may be called only after
// that, or before Scan starts.
type Scanner struct {
	opts     Options
	splitter *strsplit.Splitter
	cast     *caster.Caster // broadcaster for records
}

// NewScanner creates a scanner for records as described by opts.
func NewScanner(opts Options) *Scanner {
	s := &Scanner{
		opts:     opts,
		splitter: opts.Splitter,
		cast:     caster.New(context.Background()), // we will broadcast records when lines are split
	}
	if s.splitter == nil {
		s.splitter = strsplit.NewSplitter()
	}
	return s
}

// Subscribe returns a channel for receiving records. capacity is the buffer
// size of the channel.
func (s *Scanner) Subscribe(capacity uint) (<-chan interface{}, error) {
	ch, ok := s.cast.Sub(context.Background(), capacity)
	if !ok {
		return nil, ErrScannerClosed
	}
	return ch, nil
}

// Close closes the scanner and all subscriber channels. It must not be called
// while a Scan is still publishing to subscribers.
func (s *Scanner) Close() {
	s.cast.Close()
}

// Scan reads lines from r until EOF, splits them and publishes them as records.
// It returns the number of records published. Scanning stops at the first line
// which cannot be split. Scan returns once the final EndOfRecords has been
// published.
func (s *Scanner) Scan(r io.Reader) (int, error) {
	cnt, err := s.scan(r)
	if err != nil {
		tracer().Errorf("textfile: %v", err)
	}
	s.cast.Pub(EndOfRecords{Count: cnt, Err: err})
	return cnt, err
}

func (s *Scanner) scan(r io.Reader) (int, error) {
	if r == nil {
		return 0, strsplit.ErrIllegalArguments
	}
	if s.opts.Delimiter == "" {
		return 0, fmt.Errorf("textfile: empty delimiter: %w", strsplit.ErrTooShort)
	}
	limit := s.opts.MaxSplits
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 4096), maxLineLength)
	cnt, lineno := 0, 0
	for lines.Scan() {
		lineno++
		line := lines.Text()
		if s.opts.Trim {
			line = strsplit.Trim(line)
		}
		if line == "" {
			continue
		}
		if s.opts.SkipComments && strsplit.StartsWith(line, s.opts.commentPrefix()) == strsplit.Matched {
			tracer().Debugf("textfile: skipping comment in line %d", lineno)
			continue
		}
		n := limit
		if n == 0 {
			n = len(line)
		}
		fields, err := s.splitter.Fragments(line, s.opts.Delimiter, n)
		if err != nil {
			return cnt, fmt.Errorf("line %d: %w", lineno, err)
		}
		if !s.cast.Pub(Record{Line: lineno, fields: fields.Strings()}) {
			return cnt, ErrScannerClosed
		}
		cnt++
	}
	if err := lines.Err(); err != nil {
		return cnt, fmt.Errorf("error reading text: %w", err)
	}
	return cnt, nil
}

// ReadRecords splits all lines of r and returns the resulting records.
func ReadRecords(r io.Reader, opts Options) ([]Record, error) {
	s := NewScanner(opts)
	defer s.Close()
	ch, err := s.Subscribe(16)
	if err != nil {
		return nil, err
	}
	go func() {
		_, _ = s.Scan(r) // errors are delivered with EndOfRecords
	}()
	var records []Record
	for msg := range ch {
		switch m := msg.(type) {
		case Record:
			records = append(records, m)
		case EndOfRecords:
			return records, m.Err
		}
	}
	return records, ErrScannerClosed
}

// LoadFile reads a file, which must be a text file, and splits its lines into
// records.
func LoadFile(name string, opts Options) ([]Record, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadRecords(file, opts)
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", name, ErrNotRegular)
	}
	return os.Open(name) // just open for read access
}
