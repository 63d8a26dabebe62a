package cmd

import (
	"flag"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands registered on c for shell completion.
//
// Run 'COMP_INSTALL=1 cbs' to install it in the shell.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if cmd.Name() == "topic" {
			sub.Args = topicPredictor()
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flagPredictors guesses a predictor for each flag of fs from its name.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "method":
			var names predict.Set
			for _, m := range costbasis.Methods() {
				names = append(names, m.String())
			}
			flags[f.Name] = names
		case "ledger-file":
			flags[f.Name] = predict.Files("*.jsonl")
		case "config":
			flags[f.Name] = predict.Files("*.yaml")
		case "f", "o":
			flags[f.Name] = predict.Files("*")
		default:
			if isBool(f) {
				flags[f.Name] = predict.Nothing
			} else {
				flags[f.Name] = predict.Something
			}
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// topicPredictor predicts the documentation topic names.
func topicPredictor() complete.Predictor {
	topics, err := docs.All()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(topics)
}
