package ratesource

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/fxroute/core"
	"github.com/samber/lo"
)

var samples = map[string][]core.ExchangeRate{
	// Best USD→JAP is 16 via CAD.
	"classic": {
		{From: "USD", To: "EUR", Rate: 2},
		{From: "EUR", To: "USD", Rate: 0.5},
		{From: "USD", To: "CAD", Rate: 4},
		{From: "CAD", To: "USD", Rate: 0.25},
		{From: "USD", To: "JAP", Rate: 10},
		{From: "EUR", To: "JAP", Rate: 3},
		{From: "CAD", To: "JAP", Rate: 4},
	},
	// Best USD→JAP is 2.5 via CAD, although USD→CAD alone loses half.
	"detour": {
		{From: "USD", To: "EUR", Rate: 1.5},
		{From: "USD", To: "CAD", Rate: 0.5},
		{From: "EUR", To: "JAP", Rate: 1},
		{From: "CAD", To: "JAP", Rate: 5},
		{From: "USD", To: "JAP", Rate: 1.5},
	},
}

// Sample returns a copy of a built-in market.
func Sample(name string) ([]core.ExchangeRate, error) {
	rates, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownSample, name, SampleNames())
	}

	return slices.Clone(rates), nil
}

// SampleNames returns the built-in market names, sorted.
func SampleNames() []string {
	names := lo.Keys(samples)
	slices.Sort(names)

	return names
}
