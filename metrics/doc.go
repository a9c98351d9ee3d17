/*
Package metrics provides some measurements on the results of splits.

For every fragment of a list, a Summary holds the number of bytes, UTF-8
characters and newlines. Spans locate the fragments of a split within the
original input text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strsplit'
func tracer() tracing.Trace {
	return tracing.Select("strsplit")
}
