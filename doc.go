// Package coinwatch values manually recorded cryptocurrency purchases
// against live market prices. It is designed to be local-first: the only
// state is a small YAML file listing the coins you track and the purchases
// you made, everything else is computed on the fly from the public ticker.
//
// The core functionalities include:
//   - Trade Book: an ordered collection of tracked coins and their recorded
//     purchases, loaded from the configuration file and never mutated.
//   - Valuation: a stateless join of the trade book against the current
//     price list, producing per-purchase win/loss and percentage figures
//     and a grand total.
//   - Exact Arithmetic: amounts and prices are decimals end to end, so the
//     reported figures are the figures, not float approximations.
//
// This package serves as the foundational logic for the `cw` command-line
// tool, which fetches quotes, renders the report and records new purchases.
package coinwatch
