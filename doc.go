// Package costbasis computes realized gains of a sequence of trades under
// three cost basis methods.
//
// The methods are:
//   - AverageCost: each security keeps a single position and a weighted
//     average cost, recomputed on every buy.
//   - FIFO: every buy opens a lot, sells consume the oldest open lots first.
//   - LIFO: every buy opens a lot, sells consume the most recent open lots first.
//
// RealizedAverageCost, RealizedFIFO and RealizedLIFO process a whole list of
// trades and return the realized gain of every security that has been sold.
// They are pure functions: each call starts from an empty state, and the first
// sell that exceeds what is held aborts the computation with no partial result.
//
// A Book exposes the same engines one trade at a time, with the detail of each
// match and the remaining holdings. NewReport and NewComparison build on it.
//
// Amounts are exact decimals, there is no rounding inside the engines.
//
// This package serves as the foundational logic for the `cbs` command-line
// tool, which reads trades from a JSONL trade log (see DecodeTrades).
package costbasis
