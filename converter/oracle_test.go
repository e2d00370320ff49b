package converter_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fxroute/converter"
	"github.com/katalvlaran/fxroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// oracleMarket quotes distinct ordered pairs only; gonum's simple graph
// keeps one edge per pair and rejects self-loops.
func oracleMarket(r *rand.Rand, n, m int, spread func() float64) []core.ExchangeRate {
	values := make([]float64, n)
	for i := range values {
		values[i] = 0.05 + r.Float64()*20
	}
	seen := make(map[[2]int]bool, m)
	rates := make([]core.ExchangeRate, 0, m)
	for len(rates) < m && len(seen) < n*(n-1) {
		i, j := r.Intn(n), r.Intn(n)
		if i == j || seen[[2]int{i, j}] {
			continue
		}
		seen[[2]int{i, j}] = true
		rates = append(rates, core.ExchangeRate{
			From: core.Currency(fmt.Sprintf("K%02d", i)),
			To:   core.Currency(fmt.Sprintf("K%02d", j)),
			Rate: values[j] / values[i] * spread(),
		})
	}

	return rates
}

// oracle mirrors the market into a gonum weighted digraph keyed by core's indices.
func oracle(t *testing.T, rates []core.ExchangeRate) (*core.Graph, *simple.WeightedDirectedGraph) {
	t.Helper()
	g, err := core.Build(rates)
	require.NoError(t, err)

	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.Len(); v++ {
		wg.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}

	return g, wg
}

func TestSolve_MatchesGonumBellmanFord(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	spread := func() float64 { return 0.6 + 0.4*r.Float64() }

	for round := 0; round < 30; round++ {
		rates := oracleMarket(r, 9, 30, spread)
		g, wg := oracle(t, rates)

		for src := 0; src < g.Len(); src++ {
			want, ok := path.BellmanFordFrom(simple.Node(src), wg)
			require.True(t, ok, "round %d: oracle saw a negative cycle", round)

			for _, alg := range algorithms {
				all, err := converter.SolveAll(rates, g.Name(src), converter.WithAlgorithm(alg))
				require.NoError(t, err)

				for dst := 0; dst < g.Len(); dst++ {
					w := want.WeightTo(int64(dst))
					got, reached := all[g.Name(dst)]
					if math.IsInf(w, 1) {
						assert.False(t, reached, "round %d %s %d→%d", round, alg, src, dst)
						continue
					}
					require.True(t, reached, "round %d %s %d→%d", round, alg, src, dst)
					assert.True(t, scalar.EqualWithinRel(math.Exp(-w), got.Rate, 1e-9),
						"round %d %s %d→%d: oracle %g, got %g", round, alg, src, dst, math.Exp(-w), got.Rate)
				}
			}
		}
	}
}

func TestSolve_ArbitrageMatchesGonumVerdict(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	// Spreads up to 1.3 make profitable loops likely but not certain.
	spread := func() float64 { return 0.8 + 0.5*r.Float64() }

	var cycles, clean int
	for round := 0; round < 40; round++ {
		rates := oracleMarket(r, 6, 12, spread)
		g, wg := oracle(t, rates)
		src := g.Name(0)

		_, ok := path.BellmanFordFrom(simple.Node(0), wg)
		for _, alg := range algorithms {
			_, err := converter.SolveAll(rates, src, converter.WithAlgorithm(alg))
			if ok {
				assert.NoError(t, err, "round %d %s", round, alg)
				continue
			}
			require.ErrorIs(t, err, converter.ErrArbitrageDetected, "round %d %s", round, alg)

			var ae *converter.ArbitrageError
			require.True(t, errors.As(err, &ae))
			if len(ae.Cycle) > 0 {
				assert.Greater(t, ae.Gain, 1.0, "round %d %s", round, alg)
				assert.Equal(t, ae.Cycle[0], ae.Cycle[len(ae.Cycle)-1])
			}
		}
		if ok {
			clean++
		} else {
			cycles++
		}
	}
	t.Logf("markets with arbitrage: %d, without: %d", cycles, clean)
}
