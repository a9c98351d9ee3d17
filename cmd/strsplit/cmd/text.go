package cmd

import (
	"fmt"

	"github.com/npillmayer/strsplit"
	"github.com/spf13/cobra"
)

func newTrimCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trim [text]",
		Short: "Remove leading and trailing whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", strsplit.Trim(text))
			return nil
		},
	}
}

func newStripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text]",
		Short: "Remove all whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", strsplit.StripWhitespace(text))
			return nil
		},
	}
}

func newStartsWithCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "startswith <text> <prefix>",
		Short: "Test if a text starts with a prefix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMatch(cmd, strsplit.StartsWith(args[0], args[1]))
		},
	}
}

func newEndsWithCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "endswith <text> <suffix>",
		Short: "Test if a text ends with a suffix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMatch(cmd, strsplit.EndsWith(args[0], args[1]))
		},
	}
}

// printMatch prints the outcome of a test. Invalid arguments are reported as
// an error.
func printMatch(cmd *cobra.Command, m strsplit.Match) error {
	if m == strsplit.Invalid {
		return fmt.Errorf("%s: %w", m, strsplit.ErrIllegalArguments)
	}
	fmt.Fprintln(cmd.OutOrStdout(), m)
	return nil
}
