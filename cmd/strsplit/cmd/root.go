package cmd

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'strsplit'
func tracer() tracing.Trace {
	return tracing.Select("strsplit")
}

// options collects the global flags and the configuration derived from them.
type options struct {
	cfgFile string
	trace   string
	config  *Config
}

// Execute runs the strsplit command line tool.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand creates the root command with all its sub-commands attached.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "strsplit",
		Short: "strsplit - split texts at delimiters",
		Long: `strsplit splits texts at occurrences of a delimiter and prints the
resulting fragments.

Fragments are separated by a delimiter of one or more bytes. The number of
splits may be limited, counting occurrences either from the start or from the
end of a text. Settings may be read from a TOML file:

  [split]
  delimiter = ","
  limit     = 0
  capacity  = 0
  trim      = false

  [output]
  format = "text"   # text, yaml, dot or table
  color  = false
  width  = 0

  [trace]
  level = "error"   # error, info or debug`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("trace") {
				cfg.Trace.Level = opts.trace
			}
			if err := setupTracing(cfg.Trace.Level); err != nil {
				return err
			}
			opts.config = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "configuration file (TOML)")
	root.PersistentFlags().StringVar(&opts.trace, "trace", "error", "trace level: error, info or debug")
	root.AddCommand(
		newSplitCommand(opts),
		newTrimCommand(),
		newStripCommand(),
		newStartsWithCommand(),
		newEndsWithCommand(),
		newFileCommand(opts),
		newConfCommand(),
		newVersionCommand(),
	)
	return root
}

// inputText returns the text given as the single argument, or the content of
// stdin if the argument is missing or "-".
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
