package converter

import "github.com/katalvlaran/fxroute/core"

// Solver answers best-rate queries with a fixed configuration.
type Solver interface {
	Solve(rates []core.ExchangeRate, from, to core.Currency) (Result, error)
}

type solver struct {
	opts []Option
}

// New returns a Solver that applies opts to every call.
func New(opts ...Option) Solver {
	return &solver{opts: append([]Option(nil), opts...)}
}

// Solve implements Solver.
func (s *solver) Solve(rates []core.ExchangeRate, from, to core.Currency) (Result, error) {
	return Solve(rates, from, to, s.opts...)
}
