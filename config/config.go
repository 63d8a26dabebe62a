// Package config loads the settings of the cbs command from a YAML file, a
// .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/costbasis"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvLedgerFile = "CBS_LEDGER_FILE"
	EnvMethod     = "CBS_METHOD"
	EnvCurrency   = "CBS_CURRENCY"
	EnvLogLevel   = "CBS_LOG_LEVEL"
)

// Config holds the settings of the cbs command.
type Config struct {
	LedgerFile string                    `yaml:"ledger_file"`
	Method     costbasis.CostBasisMethod `yaml:"method"`
	Currency   string                    `yaml:"currency"`
	Log        struct {
		Level  string `yaml:"level"`  // debug, info, warn, error
		Format string `yaml:"format"` // json or console
	} `yaml:"log"`
	Import costbasis.ImportMapping `yaml:"import"`
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	var c Config
	c.LedgerFile = "trades.jsonl"
	c.Method = costbasis.AverageCost
	c.Log.Level = "warn"
	c.Log.Format = "console"
	c.Import = costbasis.DefaultImportMapping()
	return c
}

// Load reads the configuration file at path on top of the defaults, then
// applies the environment. A missing file is not an error.
//
// A .env file in the working directory, if any, is loaded into the
// environment first.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return c, fmt.Errorf("cannot read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("invalid config %q: %w", path, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, nil
}

// applyEnv overrides c with the non empty environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLedgerFile); v != "" {
		c.LedgerFile = v
	}
	if v := os.Getenv(EnvMethod); v != "" {
		if err := c.Method.Set(v); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMethod, err)
		}
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}
