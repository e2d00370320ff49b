// SPDX-License-Identifier: MIT

package converter

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/fxroute/core"
)

// Sentinel errors. Engine and graph errors are wrapped under these.
var (
	// ErrInvalidRate indicates a tuple with a non-positive, NaN or infinite
	// rate, or an empty currency name. Checked before any traversal.
	ErrInvalidRate = errors.New("converter: invalid rate")

	// ErrUnknownCurrency indicates a query currency absent from every tuple.
	ErrUnknownCurrency = errors.New("converter: unknown currency")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("converter: no conversion path")

	// ErrArbitrageDetected indicates a cycle whose rate product exceeds 1
	// within reach of the source; the best rate is unbounded.
	ErrArbitrageDetected = errors.New("converter: arbitrage detected")

	// ErrRateOutOfRange indicates a best path whose rate product overflows
	// or underflows float64, although every hop rate is finite and positive.
	ErrRateOutOfRange = errors.New("converter: rate out of float64 range")

	// ErrUnknownAlgorithm indicates an unsupported algorithm name or value.
	ErrUnknownAlgorithm = errors.New("converter: unknown algorithm")

	// ErrBadEpsilon indicates a negative or NaN epsilon.
	ErrBadEpsilon = errors.New("converter: epsilon must be non-negative")
)

// ArbitrageError carries the profitable cycle that stopped a search.
//
// Cycle starts and ends at the same currency. Gain is the rate product
// around it; both are empty when the engine could not close the cycle.
type ArbitrageError struct {
	Cycle []core.Currency
	Gain  float64
}

// Error implements error.
func (e *ArbitrageError) Error() string {
	if len(e.Cycle) == 0 {
		return ErrArbitrageDetected.Error()
	}
	names := make([]string, len(e.Cycle))
	for i, c := range e.Cycle {
		names[i] = string(c)
	}

	return fmt.Sprintf("%s: %s (gain %.6g)", ErrArbitrageDetected, strings.Join(names, " -> "), e.Gain)
}

// Unwrap makes errors.Is(err, ErrArbitrageDetected) hold.
func (e *ArbitrageError) Unwrap() error { return ErrArbitrageDetected }

// Result is the best conversion found from From to To.
type Result struct {
	From core.Currency
	To   core.Currency
	Rate float64 // product of hop rates along Path
	Cost float64 // accumulated modified cost, ≈ -ln(Rate)
	Path []core.Currency
	Hops []core.ExchangeRate
}

// checkRate rejects a path product that left the float64 range.
func checkRate(rate float64, from, to core.Currency) error {
	if rate == 0 || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: %s -> %s gives %v", ErrRateOutOfRange, from, to, rate)
	}

	return nil
}

// Convert returns amount expressed in To.
func (r Result) Convert(amount float64) float64 { return amount * r.Rate }

// Algorithm selects the single-source engine.
type Algorithm int

const (
	// AlgorithmBellmanFord detects arbitrage by a final relaxation pass.
	AlgorithmBellmanFord Algorithm = iota
	// AlgorithmDijkstra assumes arbitrage-free input, guarded by a hop bound.
	AlgorithmDijkstra
)

var algorithmNames = map[Algorithm]string{
	AlgorithmBellmanFord: "bellman-ford",
	AlgorithmDijkstra:    "dijkstra",
}

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "bellman-ford" (or "bellmanford") and "dijkstra"
// to an Algorithm, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bellman-ford", "bellmanford":
		return AlgorithmBellmanFord, nil
	case "dijkstra":
		return AlgorithmDijkstra, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// DefaultEpsilon is the default log-space relaxation tolerance.
const DefaultEpsilon = 1e-12

// Options configures a solve.
type Options struct {
	Algorithm Algorithm // single-source engine; Table ignores it
	Epsilon   float64   // minimum log-space improvement that counts
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// WithAlgorithm selects the engine. Unknown values panic.
func WithAlgorithm(a Algorithm) Option {
	if _, ok := algorithmNames[a]; !ok {
		panic(fmt.Sprintf("%s: %d", ErrUnknownAlgorithm, int(a)))
	}

	return func(o *Options) { o.Algorithm = a }
}

// WithEpsilon sets the relaxation tolerance. Negative or NaN values panic.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(ErrBadEpsilon.Error())
	}

	return func(o *Options) { o.Epsilon = eps }
}

// DefaultOptions returns Bellman-Ford with DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Algorithm: AlgorithmBellmanFord, Epsilon: DefaultEpsilon}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
