package ratesource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/fxroute/core"
	"github.com/samber/lo"
)

var readers = map[string]func(io.Reader) ([]core.ExchangeRate, error){
	".csv":  ReadCSV,
	".json": ReadJSON,
	".yaml": ReadYAML,
	".yml":  ReadYAML,
}

// Load reads the rate file at path, choosing the reader by extension.
func Load(path string) ([]core.ExchangeRate, error) {
	ext := strings.ToLower(filepath.Ext(path))
	read, ok := readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ratesource: %w", err)
	}
	defer f.Close()

	rates, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return rates, nil
}

// Currencies lists the currencies named by rates in first-appearance order,
// From before To, matching core's vertex numbering.
func Currencies(rates []core.ExchangeRate) []core.Currency {
	return lo.Uniq(lo.FlatMap(rates, func(r core.ExchangeRate, _ int) []core.Currency {
		return []core.Currency{r.From, r.To}
	}))
}
