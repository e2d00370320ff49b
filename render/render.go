// Package render prints converter results for people.
//
// Nothing here computes; every function formats a value it is given.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/fxroute/converter"
	"github.com/katalvlaran/fxroute/core"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Arrow separates currencies in a rendered path.
const Arrow = " -> "

// Unreachable fills table cells with no conversion path.
const Unreachable = "-"

// Path joins currencies as "USD -> CAD -> JAP".
func Path(path []core.Currency) string {
	return strings.Join(lo.Map(path, func(c core.Currency, _ int) string { return string(c) }), Arrow)
}

// Rate formats a rate with the shortest text that reads back exactly.
func Rate(r float64) string { return decimal.NewFromFloat(r).String() }

// Result writes the best path and its rate:
//
//	Path with the highest exchange rate from USD to JAP:
//	USD -> CAD -> JAP
//	Maximized conversion rate from USD to JAP: 16
func Result(w io.Writer, r converter.Result) error {
	_, err := fmt.Fprintf(w,
		"Path with the highest exchange rate from %s to %s:\n%s\nMaximized conversion rate from %s to %s: %s\n",
		r.From, r.To, Path(r.Path), r.From, r.To, Rate(r.Rate))

	return err
}

// Hops writes one line per conversion step.
func Hops(w io.Writer, r converter.Result) error {
	for i, h := range r.Hops {
		if _, err := fmt.Fprintf(w, "  %d. %s%s%s at %s\n", i+1, h.From, Arrow, h.To, Rate(h.Rate)); err != nil {
			return err
		}
	}

	return nil
}

// Conversion writes "100 USD = 1600 JAP".
func Conversion(w io.Writer, r converter.Result, amount float64) error {
	_, err := fmt.Fprintf(w, "%s %s = %s %s\n", Rate(amount), r.From, Rate(r.Convert(amount)), r.To)

	return err
}

// Table writes the best rate for every ordered pair, rows by source
// currency and columns by target, in first-appearance order.
func Table(w io.Writer, t *converter.RateTable) error {
	names := t.Currencies()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := append([]string{"FROM/TO"}, lo.Map(names, func(c core.Currency, _ int) string { return string(c) })...)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, from := range names {
		cells := make([]string, 0, len(names)+1)
		cells = append(cells, string(from))
		for _, to := range names {
			res, err := t.Best(from, to)
			if err != nil {
				cells = append(cells, Unreachable)
				continue
			}
			cells = append(cells, strconv.FormatFloat(res.Rate, 'g', 6, 64))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}
