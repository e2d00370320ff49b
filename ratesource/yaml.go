package ratesource

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/fxroute/core"
	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Rates []yamlRecord `yaml:"rates"`
}

type yamlRecord struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Rate string `yaml:"rate"` // scalar text as written
}

// ReadYAML reads a document with a top-level "rates" list.
// An empty document yields no rates.
func ReadYAML(r io.Reader) ([]core.ExchangeRate, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	out := make([]core.ExchangeRate, 0, len(doc.Rates))
	for i, rec := range doc.Rates {
		rate, err := ParseRate(rec.Rate)
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
