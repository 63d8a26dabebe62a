package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/costbasis"
	"github.com/google/subcommands"
)

type formatCmd struct {
	output string
}

func (*formatCmd) Name() string { return "fmt" }
func (*formatCmd) Synopsis() string {
	return "validates and formats the trade log into a canonical form"
}
func (*formatCmd) Usage() string {
	return `cbs fmt [-o <file>]

  Validates and formats the trade log. This command reads all trades, checks
  that every sell is covered, and writes them back in a canonical JSONL form.
  The order of the trades is never changed.
  By default, the trade log is formatted in place.

Usage Examples:
# Writes the canonical form to stdout.
$ cbs fmt -o -

`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for stdout. Defaults to the trade log itself.")
}

func (c *formatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		trades, err := a.decodeTrades()
		if err != nil {
			return err
		}
		if _, err := costbasis.Realize(a.cfg.Method, trades); err != nil {
			return fmt.Errorf("invalid trade log: %w", err)
		}

		output := c.output
		if output == "" {
			output = a.cfg.LedgerFile
		}

		var w io.Writer = stdout
		if output != "-" {
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("cannot open %q for writing: %w", output, err)
			}
			defer file.Close()
			w = file
		}

		if err := costbasis.EncodeTrades(w, trades); err != nil {
			return fmt.Errorf("cannot write %q: %w", output, err)
		}
		if output != "-" {
			fmt.Fprintf(os.Stderr, "Trade log '%s' has been formatted.\n", output)
		}
		return nil
	})
}
