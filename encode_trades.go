package costbasis

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file persists trades as a trade log: a JSONL stream, one trade per line.
// Unlike a dated ledger, a trade log is never sorted, the line order is the
// trade order.

// DecodeTrades decodes a trade log from r, keeping the order of the lines.
// Empty lines are skipped.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var trades []Trade
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var t Trade
		if err := json.Unmarshal(lineBytes, &t); err != nil {
			return nil, fmt.Errorf("parse error on line %d %q: %w", line, string(lineBytes), err)
		}
		trades = append(trades, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return trades, nil
}

// EncodeTrade marshals a single trade to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeTrade(w io.Writer, t Trade) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal trade: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write trade: %w", err)
	}
	return nil
}

// EncodeTrades writes all trades to w in JSONL format, in order.
func EncodeTrades(w io.Writer, trades []Trade) error {
	for _, t := range trades {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}
