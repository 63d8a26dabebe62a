// Package cmd implements the CLI application to compute realized gains of a trade log.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/config"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "trades")
	c.Register(&sellCmd{}, "trades")
	c.Register(&importCmd{}, "trades")
	c.Register(&formatCmd{}, "trades")
	c.Register(&txCmd{}, "trades")

	c.Register(&realizedCmd{}, "reports")
	c.Register(&compareCmd{}, "reports")
	c.Register(&demoCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", ".cbs.yaml", "Path to the configuration file (YAML format)")
var ledgerFile = flag.String("ledger-file", "", "Path to the trade log (JSONL format). Overrides the configuration.")
var currency = flag.String("currency", "", "Currency code used to display amounts (e.g. USD). Overrides the configuration.")
var rawOutput = flag.Bool("raw", false, "Print reports as raw markdown instead of rendering them for the terminal")

// stdout receives the command outputs.
var stdout io.Writer = os.Stdout

// app is the environment a command runs in.
type app struct {
	cfg config.Config
	log *zap.Logger
}

// newApp loads the configuration, applies the global flags and builds the logger.
func newApp() (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	logger, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: logger}, nil
}

// usageError flags errors caused by invalid command line arguments.
type usageError struct{ error }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// execute runs a command body within a fresh app and turns its error into an exit status.
func execute(name string, run func(a *app) error) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.log.Sync()

	a.log.Debug("running command", zap.String("command", name), zap.String("ledger", a.cfg.LedgerFile))
	if err := run(a); err != nil {
		a.log.Error("command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.As(err, new(usageError)) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// decodeTrades reads the trade log. A missing trade log is an empty one.
func (a *app) decodeTrades() ([]costbasis.Trade, error) {
	f, err := os.Open(a.cfg.LedgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Warn("trade log does not exist, using an empty one instead", zap.String("ledger", a.cfg.LedgerFile))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open trade log %q: %w", a.cfg.LedgerFile, err)
	}
	defer f.Close()

	trades, err := costbasis.DecodeTrades(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode trade log %q: %w", a.cfg.LedgerFile, err)
	}
	a.log.Debug("trade log decoded", zap.String("ledger", a.cfg.LedgerFile), zap.Int("trades", len(trades)))
	return trades, nil
}

// appendTrades appends trades at the end of the trade log, creating it if needed.
func (a *app) appendTrades(trades ...costbasis.Trade) error {
	f, err := os.OpenFile(a.cfg.LedgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open trade log %q: %w", a.cfg.LedgerFile, err)
	}
	defer f.Close()

	if err := costbasis.EncodeTrades(f, trades); err != nil {
		return fmt.Errorf("cannot write to trade log %q: %w", a.cfg.LedgerFile, err)
	}
	a.log.Info("trades appended", zap.String("ledger", a.cfg.LedgerFile), zap.Int("trades", len(trades)))
	return nil
}

// printMarkdown prints md, rendered for the terminal unless -raw is set.
func (a *app) printMarkdown(md string) error {
	if *rawOutput {
		_, err := fmt.Fprint(stdout, md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("cannot render markdown: %w", err)
	}
	_, err = fmt.Fprint(stdout, out)
	return err
}

// method returns the method named by the flag value, or the configured one if empty.
func (a *app) method(name string) (costbasis.CostBasisMethod, error) {
	if name == "" {
		return a.cfg.Method, nil
	}
	m, err := costbasis.ParseCostBasisMethod(name)
	if err != nil {
		return m, usageError{err}
	}
	return m, nil
}
