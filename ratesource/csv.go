package ratesource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/fxroute/core"
)

// ReadCSV reads "from,to,rate" rows. Lines starting with '#' are skipped.
// The first row is a header only when its rate cell is a column name
// (letters, spaces, '_' or '-') and neither of its first two cells is a
// three-letter currency code; "USD,EUR,x2" is a bad rate, not a header.
func ReadCSV(r io.Reader) ([]core.ExchangeRate, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var (
		out   []core.ExchangeRate
		first = true
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)

		rate, err := ParseRate(rec[2])
		if first {
			first = false
			if errors.Is(err, ErrBadRate) && isHeader(rec) {
				continue
			}
		}
		if err != nil {
			return nil, fmt.Errorf("ratesource: line %d: %w", line, err)
		}

		x, err := tuple(rec[0], rec[1], rate)
		if err != nil {
			return nil, fmt.Errorf("ratesource: line %d: %w", line, err)
		}
		out = append(out, x)
	}

	return out, nil
}

func isHeader(rec []string) bool {
	return isColumnName(rec[2]) && !isCurrencyCode(rec[0]) && !isCurrencyCode(rec[1])
}

func isColumnName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' && r != '_' && r != '-' {
			return false
		}
	}

	return true
}

// isCurrencyCode matches the ISO 4217 shape: three upper-case ASCII letters.
func isCurrencyCode(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}

func tuple(from, to string, rate float64) (core.ExchangeRate, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return core.ExchangeRate{}, fmt.Errorf("%w: empty currency", ErrMalformed)
	}

	return core.ExchangeRate{From: core.Currency(from), To: core.Currency(to), Rate: rate}, nil
}
