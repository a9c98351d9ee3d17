package strsplit

import (
	"fmt"
	"io"
	"strings"
)

// List2Dot outputs the internal structure of a List in Graphviz DOT format
// (for debugging purposes). Fragments are drawn as boxes labeled with their
// index and text, with edges for both link directions.
func List2Dot(l *List, w io.Writer) error {
	if l == nil || w == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	nodelist.WriteString("strict digraph {\n")
	nodelist.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodelist.WriteString("\trankdir=LR;\n")
	i := 0
	for f := l.Head(); !f.IsVoid(); f = f.Next() {
		label := fmt.Sprintf("#%d\\n“%s”", i, dotEscape(strstart(f.Text())))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", f.r, label, fragmentDotStyles(f.Len() == 0))
		if next := f.Next(); !next.IsVoid() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=next];\n", f.r, next.r)
		}
		if prev := f.Prev(); !prev.IsVoid() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=prev,style=dashed];\n", f.r, prev.r)
		}
		i++
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		tracer().Errorf("list DOT: %s", err.Error())
		return err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func fragmentDotStyles(empty bool) string {
	s := ",style=filled,shape=box"
	if empty {
		s += ",fillcolor=\"#FFDDCC\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

// strstart returns the start of a fragment's text, shortened for labels.
func strstart(s string) string {
	const maxRunes = 12
	if len([]rune(s)) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes]) + "…"
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`, "\r", `\r`)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
