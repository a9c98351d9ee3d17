/*
Package formatter outputs lists of fragments for humans.

Fragments are printed as a table of index, display width and text. Display
widths are measured in fixed-width positions (“en”s) according to UAX#11, so
East Asian wide characters count twice. Fragments which do not fit on a line are
wrapped at line break opportunities as defined by UAX#14.

When writing to a terminal, the output is colored and the line width is taken
from the terminal's size.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strsplit'
func tracer() tracing.Trace {
	return tracing.Select("strsplit")
}
