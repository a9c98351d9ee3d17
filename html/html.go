/*
Package html splits the textual content of HTML documents.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strsplit"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'strsplit'
func tracer() tracing.Trace {
	return tracing.Select("strsplit")
}

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Content of script and style
// elements is ignored.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", strsplit.ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	} else if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML extracts the textual content of an HTML fragment.
// It does not interpret layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("html: %v", err)
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}

// SplitText splits the textual content of an HTML fragment at occurrences of
// delim. maxSplits is interpreted as for strsplit.SplitN.
func SplitText(input io.Reader, delim string, maxSplits int) (*strsplit.List, error) {
	text, err := TextFromHTML(input)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("html: inner text has %d bytes", len(text))
	return strsplit.Fragments(text, delim, maxSplits)
}
