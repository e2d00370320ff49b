package converter

import (
	"time"

	"github.com/go-kit/log"

	"github.com/katalvlaran/fxroute/core"
)

// loggingSolver decorates a Solver with logging
type loggingSolver struct {
	logger log.Logger
	next   Solver
}

// NewLoggingSolver returns a Solver that logs one record per call.
func NewLoggingSolver(logger log.Logger, next Solver) Solver {
	return &loggingSolver{
		logger: logger,
		next:   next,
	}
}

func (s *loggingSolver) Solve(rates []core.ExchangeRate, from, to core.Currency) (res Result, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "solve",
			"rates", len(rates),
			"from", from,
			"to", to,
			"rate", res.Rate,
			"hops", len(res.Hops),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Solve(rates, from, to)
}
