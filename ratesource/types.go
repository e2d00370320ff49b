package ratesource

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors.
var (
	// ErrBadRate indicates rate text that is not a decimal or not strictly positive.
	ErrBadRate = errors.New("ratesource: bad rate")

	// ErrMalformed indicates a record with missing fields or a broken document.
	ErrMalformed = errors.New("ratesource: malformed record")

	// ErrUnsupportedFormat indicates a file extension with no reader.
	ErrUnsupportedFormat = errors.New("ratesource: unsupported format")

	// ErrUnknownSample indicates a sample name that is not built in.
	ErrUnknownSample = errors.New("ratesource: unknown sample")
)

// ParseRate converts decimal rate text into a float64.
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: missing rate", ErrMalformed)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal", ErrBadRate, s)
	}
	if d.Sign() <= 0 {
		return 0, fmt.Errorf("%w: %s is not positive", ErrBadRate, s)
	}

	f, _ := d.Float64()
	if f == 0 || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s is out of float64 range", ErrBadRate, s)
	}

	return f, nil
}
