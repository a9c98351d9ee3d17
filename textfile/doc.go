/*
Package textfile provides API helpers to split the lines of text files.

Every line of a file (or reader) is split into a list of fields, which is
published as a Record to all subscribers of a Scanner. Helpers for the common
cases, delimited records and KEY=VALUE configuration files, collect the
records synchronously.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strsplit'
func tracer() tracing.Trace {
	return tracing.Select("strsplit")
}

var (
	// ErrNotRegular signals that a path does not denote a regular file.
	ErrNotRegular = errors.New("textfile: not a regular file")
	// ErrMalformedLine signals a configuration line without key/value separator.
	ErrMalformedLine = errors.New("textfile: malformed line")
	// ErrScannerClosed signals that a scanner has already been closed.
	ErrScannerClosed = errors.New("textfile: scanner closed")
)
