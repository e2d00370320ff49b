// Package ratesource reads exchange-rate lists for the converter.
//
// Three formats are understood, all carrying (from, to, rate) triples:
//
//	CSV   from,to,rate            optional header row, '#' comments
//	JSON  {"rates":[{"from":"USD","to":"EUR","rate":2}]}
//	YAML  rates: [{from: USD, to: EUR, rate: 2}]
//
// Rate text is parsed as an exact decimal before it becomes a float64, so
// "0.1" and "1e-3" are read the way they are written; values must be
// strictly positive. Currency names are trimmed but otherwise taken as is.
//
// Sample exposes the built-in markets used by the CLI and examples.
package ratesource
