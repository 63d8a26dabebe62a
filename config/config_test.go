package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/costbasis"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".cbs.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	want := Default()
	if got.LedgerFile != want.LedgerFile || got.Method != want.Method || got.Import != want.Import {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
ledger_file: my.jsonl
method: lifo
currency: EUR
log:
  level: debug
  format: json
import:
  trades: $.executions[*]
  quantity: $.qty
`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if got.LedgerFile != "my.jsonl" {
		t.Errorf("LedgerFile = %q, want %q", got.LedgerFile, "my.jsonl")
	}
	if got.Method != costbasis.LIFO {
		t.Errorf("Method = %v, want %v", got.Method, costbasis.LIFO)
	}
	if got.Currency != "EUR" {
		t.Errorf("Currency = %q, want %q", got.Currency, "EUR")
	}
	if got.Log.Level != "debug" || got.Log.Format != "json" {
		t.Errorf("Log = %+v, want debug/json", got.Log)
	}
	if got.Import.Trades != "$.executions[*]" || got.Import.Quantity != "$.qty" {
		t.Errorf("Import = %+v, want overridden trades and quantity", got.Import)
	}
	// keys absent from the file keep their default
	if got.Import.Symbol != "$.symbol" {
		t.Errorf("Import.Symbol = %q, want the default %q", got.Import.Symbol, "$.symbol")
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "method: lifo\ncurrency: EUR\n")
	t.Setenv(EnvMethod, "fifo")
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvLedgerFile, "env.jsonl")
	t.Setenv(EnvLogLevel, "error")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if got.Method != costbasis.FIFO || got.Currency != "USD" || got.LedgerFile != "env.jsonl" || got.Log.Level != "error" {
		t.Errorf("Load() = %+v, want the environment values", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(writeConfig(t, "method: hifo\n")); err == nil {
		t.Error("Load() expected an error for an unknown method, got nil")
	}
	if _, err := Load(writeConfig(t, "log: [\n")); err == nil {
		t.Error("Load() expected an error for invalid yaml, got nil")
	}

	t.Setenv(EnvMethod, "hifo")
	if _, err := Load(writeConfig(t, "")); err == nil {
		t.Error("Load() expected an error for an unknown method in the environment, got nil")
	}
}
