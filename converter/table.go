package converter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fxroute/core"
	"github.com/katalvlaran/fxroute/floydwarshall"
)

// RateTable holds the best rate between every ordered pair of a market.
type RateTable struct {
	g  *core.Graph
	fw *floydwarshall.Result
}

// Table validates rates and computes all pairs at once.
// Any arbitrage cycle in the market fails the whole table; the Algorithm
// option is ignored.
func Table(rates []core.ExchangeRate, opts ...Option) (*RateTable, error) {
	cfg := resolve(opts)

	g, err := build(rates)
	if err != nil {
		return nil, err
	}
	fw, err := floydwarshall.FloydWarshall(g, floydwarshall.WithEpsilon(cfg.Epsilon))
	if err != nil {
		var ce *floydwarshall.CycleError
		if errors.As(err, &ce) {
			return nil, arbitrage(g, ce.Edges)
		}

		return nil, fmt.Errorf("converter: table: %w", err)
	}

	return &RateTable{g: g, fw: fw}, nil
}

// Currencies returns the market's currencies in first-appearance order.
func (t *RateTable) Currencies() []core.Currency { return t.g.Currencies() }

// Best returns the best conversion between two currencies of the table.
func (t *RateTable) Best(from, to core.Currency) (Result, error) {
	i, err := lookup(t.g, from)
	if err != nil {
		return Result{}, err
	}
	j, err := lookup(t.g, to)
	if err != nil {
		return Result{}, err
	}
	if i == j {
		return identity(from), nil
	}

	ids, err := t.fw.Path(i, j)
	if errors.Is(err, floydwarshall.ErrUnreachable) {
		return Result{}, fmt.Errorf("%w: %s -> %s", ErrNoPath, from, to)
	}
	if err != nil {
		return Result{}, fmt.Errorf("converter: %s -> %s: %w", from, to, err)
	}

	rate := t.g.Product(ids)
	if err = checkRate(rate, from, to); err != nil {
		return Result{}, err
	}

	return Result{
		From: from,
		To:   to,
		Rate: rate,
		Cost: t.fw.Dist[i][j],
		Path: t.g.Vertices(i, ids),
		Hops: t.g.Rates(ids),
	}, nil
}
