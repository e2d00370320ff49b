package ratesource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/fxroute/core"
)

type jsonDocument struct {
	Rates []jsonRecord `json:"rates"`
}

type jsonRecord struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate json.RawMessage `json:"rate"` // number or decimal string
}

// ReadJSON reads a {"rates":[...]} document.
func ReadJSON(r io.Reader) ([]core.ExchangeRate, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	out := make([]core.ExchangeRate, 0, len(doc.Rates))
	for i, rec := range doc.Rates {
		text, err := rawRate(rec.Rate)
		if err != nil {
			return nil, fmt.Errorf("ratesource: record %d: %w", i, err)
		}
		rate, err := ParseRate(text)
		if err != nil {
			return nil, fmt.Errorf("ratesource: record %d: %w", i, err)
		}
		x, err := tuple(rec.From, rec.To, rate)
		if err != nil {
			return nil, fmt.Errorf("ratesource: record %d: %w", i, err)
		}
		out = append(out, x)
	}

	return out, nil
}

// rawRate returns the literal text of a JSON number, or the content of a JSON string.
func rawRate(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] != '"' {
		return string(raw), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadRate, err)
	}

	return s, nil
}
