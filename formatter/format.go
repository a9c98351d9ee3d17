package formatter

/*
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

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/strsplit"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // line width in ‘en’s; values < minLineWidth are raised
	Color     bool           // use colors from Palette
	Palette   *Palette       // may be nil for the default palette
	Context   *uax11.Context // may be nil for uax11.LatinContext
}

// minLineWidth is the smallest line width we format for.
const minLineWidth = 20

// prefixWidth is the width of the index and width columns, including spacing.
const prefixWidth = 14

var setupGraphemes sync.Once

// Output formats a list of fragments.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output(l *strsplit.List, out io.Writer, config *Config) error {
	//
	if l == nil || out == nil || config == nil {
		return strsplit.ErrIllegalArguments
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	textwidth := max(config.LineWidth, minLineWidth) - prefixWidth
	tracer().Debugf("formatter: text width is %d en", textwidth)
	if _, err := fmt.Fprintf(out, "%d fragment(s)\n", l.Len()); err != nil {
		return err
	}
	return l.Each(func(i int, text string) error {
		index := fmt.Sprintf("%4d", i)
		if config.Color {
			index = palette.Index.Sprint(index)
		}
		if text == "" {
			empty := "∅"
			if config.Color {
				empty = palette.Empty.Sprint(empty)
			}
			_, err := fmt.Fprintf(out, "%s %6d   %s\n", index, 0, empty)
			return err
		}
		display := visible(text)
		width := Width(display, context)
		for j, line := range Wrap(display, textwidth, context) {
			if config.Color {
				line = palette.Text.Sprint(line)
			}
			var err error
			if j == 0 {
				_, err = fmt.Fprintf(out, "%s %6d   %s\n", index, width, line)
			} else {
				_, err = fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", prefixWidth), line)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Print outputs a list of fragments to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(l *strsplit.List, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(l, os.Stdout, config)
}

// Width returns the display width of text in fixed-width positions.
func Width(text string, context *uax11.Context) int {
	if text == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(text), context)
}

// Wrap breaks text into lines of at most linewidth positions, breaking at
// line break opportunities only. Segments longer than a line are not broken
// further. Concatenating the lines results in text.
//
// Wrap uses a first-fit algorithm (from Wikipedia):
//
//	1. |  SpaceLeft := LineWidth
//	2. |  for each Word in Text
//	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
//	4. |           insert line break before Word in Text
//	5. |           SpaceLeft := LineWidth - Width(Word)
//	6. |      else
//	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
func Wrap(text string, linewidth int, context *uax11.Context) []string {
	if context == nil {
		context = uax11.LatinContext
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(strings.NewReader(text))
	lines := make([]string, 0, 4)
	var line strings.Builder
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := Width(frag, context)
		if fraglen > spaceleft && line.Len() > 0 { // fragment overshoots line
			lines = append(lines, line.String())
			line.Reset()
			spaceleft = linewidth
		}
		line.WriteString(frag)
		spaceleft -= fraglen
	}
	if line.Len() > 0 || len(lines) == 0 { // we have a partial line to consume
		lines = append(lines, line.String())
	}
	return lines
}

var controls = strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)

// visible makes control characters of text visible.
func visible(text string) string {
	return controls.Replace(text)
}
