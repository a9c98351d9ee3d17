package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/strsplit"
	"github.com/npillmayer/strsplit/formatter"
	strhtml "github.com/npillmayer/strsplit/html"
	"github.com/npillmayer/strsplit/metrics"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type splitFlags struct {
	delim   string
	limit   int
	reverse bool
	format  string
	trim    bool
	html    bool
	stats   bool
	spans   bool
}

func newSplitCommand(opts *options) *cobra.Command {
	flags := &splitFlags{}
	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split a text at occurrences of a delimiter",
		Long: `Split a text at occurrences of a delimiter and print the fragments.

Without a text argument, or with "-", the text is read from stdin. A limit of 0
splits at every occurrence. With --reverse, occurrences are counted from the
end of the text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.config
			flags.merge(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			if flags.html {
				if text, err = strhtml.TextFromHTML(strings.NewReader(text)); err != nil {
					return err
				}
			}
			if cfg.Split.Trim {
				text = strsplit.Trim(text)
			}
			l, res, err := split(&cfg.Split, text, flags.reverse)
			if err != nil {
				return fmt.Errorf("split: %s: %w", strsplit.KindOf(err), err)
			}
			out := cmd.OutOrStdout()
			if err := writeList(out, l, res, &cfg.Output); err != nil {
				return err
			}
			if flags.spans {
				if err := writeSpans(out, text, &cfg.Split, flags.reverse); err != nil {
					return err
				}
			}
			if flags.stats {
				writeStats(out, l)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.delim, "delim", "d", ",", "delimiter")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", 0, "maximum number of splits, 0 for no limit")
	cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "count delimiters from the end of the text")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, yaml, dot or table")
	cmd.Flags().BoolVar(&flags.trim, "trim", false, "trim whitespace from the text before splitting")
	cmd.Flags().BoolVar(&flags.html, "html", false, "treat the text as HTML and split its textual content")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print statistics about the fragments")
	cmd.Flags().BoolVar(&flags.spans, "spans", false, "print byte positions of the fragments")
	return cmd
}

// merge overrides configuration values with flags set on the command line.
func (flags *splitFlags) merge(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("delim") {
		cfg.Split.Delimiter = flags.delim
	}
	if cmd.Flags().Changed("limit") {
		cfg.Split.Limit = flags.limit
	}
	if cmd.Flags().Changed("trim") {
		cfg.Split.Trim = flags.trim
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flags.format
	}
}

// maxSplits converts a limit of the configuration into an argument for the
// split engine.
func maxSplits(limit int, text string, reverse bool) int {
	if limit == 0 {
		limit = len(text)
	}
	if reverse {
		return -limit
	}
	return limit
}

func split(sc *SplitConfig, text string, reverse bool) (*strsplit.List, strsplit.Result, error) {
	splitter := strsplit.NewSplitter(strsplit.WithCapacity(sc.Capacity))
	l := strsplit.NewList()
	res, err := splitter.Run(l, text, sc.Delimiter, maxSplits(sc.Limit, text, reverse))
	if err != nil {
		tracer().Errorf("split failed: %v", err)
		return nil, res, err
	}
	return l, res, nil
}

// yamlList is the YAML representation of a split.
type yamlList struct {
	Direction string   `yaml:"direction"`
	Splits    int      `yaml:"splits"`
	Fragments []string `yaml:"fragments"`
}

func writeList(w io.Writer, l *strsplit.List, res strsplit.Result, oc *OutputConfig) error {
	switch oc.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(yamlList{
			Direction: res.Direction.String(),
			Splits:    res.Splits,
			Fragments: l.Strings(),
		}); err != nil {
			return err
		}
		return enc.Close()
	case "dot":
		return strsplit.List2Dot(l, w)
	case "table":
		config := &formatter.Config{
			LineWidth: oc.Width,
			Color:     oc.Color,
			Context:   uax11.ContextFromEnvironment(),
		}
		if oc.Width == 0 {
			config.LineWidth = formatter.ConfigFromTerminal().LineWidth
		}
		return formatter.Output(l, w, config)
	}
	return l.Fprint(w)
}

func writeSpans(w io.Writer, text string, sc *SplitConfig, reverse bool) error {
	spans, err := metrics.Spans(text, sc.Delimiter, maxSplits(sc.Limit, text, reverse))
	if err != nil {
		return err
	}
	for i, span := range spans {
		fmt.Fprintf(w, "span %d: [%d,%d)\n", i, span.Pos, span.End())
	}
	return nil
}

func writeStats(w io.Writer, l *strsplit.List) {
	total := metrics.Total(l)
	fmt.Fprintf(w, "fragments=%d empty=%d bytes=%d chars=%d lines=%d\n",
		l.Len(), metrics.EmptyCount(l), total.Bytes, total.Chars, total.Lines)
}
