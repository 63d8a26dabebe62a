package cmd

import (
	"context"
	"flag"

	"github.com/etnz/costbasis/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `cbs topic [<topic>...|*]

  Show documentation for the given topics, or all of them with '*'.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(c.Name(), func(a *app) error {
		topics := f.Args()
		if len(topics) == 0 {
			topics = []string{"readme"}
		}

		doc, err := docs.Topics(topics...)
		if err != nil {
			return usagef("error reading doc: %w", err)
		}
		return a.printMarkdown(doc)
	})
}
