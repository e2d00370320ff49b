package converter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fxroute/bellmanford"
	"github.com/katalvlaran/fxroute/core"
	"github.com/katalvlaran/fxroute/dijkstra"
)

// Solve returns the maximum-product conversion from one currency to another.
//
// Stages:
//  1. Validate every tuple and build the graph (ErrInvalidRate).
//  2. Resolve both endpoints (ErrUnknownCurrency).
//  3. from == to short-circuits to Rate 1 with no search.
//  4. Run the configured engine from the source (ErrArbitrageDetected).
//  5. Recover the path (ErrNoPath if the target was never reached).
//  6. Multiply the hop rates (ErrRateOutOfRange on overflow or underflow).
func Solve(rates []core.ExchangeRate, from, to core.Currency, opts ...Option) (Result, error) {
	cfg := resolve(opts)

	g, err := build(rates)
	if err != nil {
		return Result{}, err
	}
	src, err := lookup(g, from)
	if err != nil {
		return Result{}, err
	}
	dst, err := lookup(g, to)
	if err != nil {
		return Result{}, err
	}
	if src == dst {
		return identity(from), nil
	}

	tree, err := search(g, src, cfg)
	if err != nil {
		return Result{}, err
	}

	return resultFor(g, tree, dst)
}

// SolveAll returns the best conversion from one currency to every currency
// it can reach, itself included, from a single search.
func SolveAll(rates []core.ExchangeRate, from core.Currency, opts ...Option) (map[core.Currency]Result, error) {
	cfg := resolve(opts)

	g, err := build(rates)
	if err != nil {
		return nil, err
	}
	src, err := lookup(g, from)
	if err != nil {
		return nil, err
	}
	tree, err := search(g, src, cfg)
	if err != nil {
		return nil, err
	}

	out := make(map[core.Currency]Result, g.Len())
	out[from] = identity(from)
	for v := 0; v < g.Len(); v++ {
		if v == src || !tree.Reached(v) {
			continue
		}
		res, err := resultFor(g, tree, v)
		if err != nil {
			return nil, err
		}
		out[res.To] = res
	}

	return out, nil
}

// build maps graph construction errors onto ErrInvalidRate.
func build(rates []core.ExchangeRate) (*core.Graph, error) {
	g, err := core.Build(rates)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRate, err)
	}

	return g, nil
}

func lookup(g *core.Graph, c core.Currency) (int, error) {
	v, ok := g.Index(c)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, c)
	}

	return v, nil
}

func identity(c core.Currency) Result {
	return Result{
		From: c,
		To:   c,
		Rate: 1,
		Path: []core.Currency{c},
		Hops: []core.ExchangeRate{},
	}
}

// search runs the selected engine and folds its cycle error into *ArbitrageError.
func search(g *core.Graph, src int, cfg Options) (*core.Tree, error) {
	var (
		tree *core.Tree
		err  error
	)
	switch cfg.Algorithm {
	case AlgorithmDijkstra:
		tree, err = dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithEpsilon(cfg.Epsilon))
	default:
		tree, err = bellmanford.BellmanFord(g, bellmanford.Source(src), bellmanford.WithEpsilon(cfg.Epsilon))
	}
	if err == nil {
		return tree, nil
	}

	var (
		dce *dijkstra.CycleError
		bce *bellmanford.CycleError
	)
	switch {
	case errors.As(err, &dce):
		return nil, arbitrage(g, dce.Edges)
	case errors.As(err, &bce):
		return nil, arbitrage(g, bce.Edges)
	}

	return nil, fmt.Errorf("converter: %s: %w", cfg.Algorithm, err)
}

func arbitrage(g *core.Graph, ids []int) *ArbitrageError {
	if len(ids) == 0 {
		return &ArbitrageError{}
	}
	first, _ := g.Edge(ids[0])

	return &ArbitrageError{
		Cycle: g.Vertices(first.From, ids),
		Gain:  g.Product(ids),
	}
}

func resultFor(g *core.Graph, tree *core.Tree, dst int) (Result, error) {
	from, to := g.Name(tree.Source), g.Name(dst)
	if !tree.Reached(dst) {
		return Result{}, fmt.Errorf("%w: %s -> %s", ErrNoPath, from, to)
	}
	ids, err := tree.PathTo(dst)
	if err != nil {
		return Result{}, fmt.Errorf("converter: %s -> %s: %w", from, to, err)
	}

	rate := g.Product(ids)
	if err = checkRate(rate, from, to); err != nil {
		return Result{}, err
	}

	return Result{
		From: from,
		To:   to,
		Rate: rate,
		Cost: tree.Dist[dst],
		Path: g.Vertices(tree.Source, ids),
		Hops: g.Rates(ids),
	}, nil
}
