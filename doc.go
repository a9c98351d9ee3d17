/*
Package strsplit splits text into fragments.

Fragments

A split takes an input text and a delimiter and produces an ordered list of
fragments, i.e. the pieces of text between delimiter occurrences. The delimiter
itself is never part of a fragment. Delimiters at the start or at the end of the
input, as well as consecutive delimiters, produce empty fragments:

	l := strsplit.NewList()
	err := strsplit.Split(l, ",a,,b,", ",")   // => "", "a", "", "b", ""

The number of splits may be limited. A non-negative limit n scans from the start
of the input and honors at most n delimiter occurrences; the rest of the input
becomes the last fragment verbatim. A negative limit -n scans from the end of the
input and honors at most n occurrences from the right; the remaining prefix
becomes the first fragment. In both cases the resulting list holds the fragments
in their left-to-right order within the input:

	strsplit.SplitN(l, "Hello Cool World!", " ", 1)    // => "Hello", "Cool World!"
	strsplit.SplitN(l, "Hello Cool World!", " ", -1)   // => "Hello Cool", "World!"

Lists

Results are collected in a List, which owns its fragments. Lists may be walked
in both directions, either by index (negative indices count from the end) or by
following fragment links:

	for f := l.Head(); !f.IsVoid(); f = f.Next() {
	    fmt.Println(f.Text())
	}

Reversing a list reverses the order of its fragments. This is different from
scanning in reverse direction, which never changes the order of fragments.

String helpers

Package strsplit also offers a handful of helpers for ASCII whitespace handling
and prefix/suffix tests, which are frequently needed when preparing input for a
split, e.g. for reading lines of a configuration file.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package strsplit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strsplit'
func tracer() tracing.Trace {
	return tracing.Select("strsplit")
}
