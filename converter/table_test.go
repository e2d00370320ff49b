package converter_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fxroute/converter"
	"github.com/katalvlaran/fxroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTable_Classic(t *testing.T) {
	tbl, err := converter.Table(classicRates())
	require.NoError(t, err)
	assert.Equal(t, []core.Currency{"USD", "EUR", "CAD", "JAP"}, tbl.Currencies())

	res, err := tbl.Best("USD", "JAP")
	require.NoError(t, err)
	assert.Equal(t, 16.0, res.Rate)
	assert.Equal(t, []core.Currency{"USD", "CAD", "JAP"}, res.Path)
	assert.Len(t, res.Hops, 2)

	res, err = tbl.Best("CAD", "CAD")
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Rate)
	assert.Equal(t, []core.Currency{"CAD"}, res.Path)

	_, err = tbl.Best("JAP", "EUR")
	assert.ErrorIs(t, err, converter.ErrNoPath)
	_, err = tbl.Best("USD", "GBP")
	assert.ErrorIs(t, err, converter.ErrUnknownCurrency)
}

func TestTable_Errors(t *testing.T) {
	_, err := converter.Table([]core.ExchangeRate{{From: "A", To: "B", Rate: 0}})
	assert.ErrorIs(t, err, converter.ErrInvalidRate)

	// The table covers every pair, so arbitrage anywhere fails it.
	_, err = converter.Table(append(classicRates(),
		core.ExchangeRate{From: "XAU", To: "XAG", Rate: 80},
		core.ExchangeRate{From: "XAG", To: "XAU", Rate: 0.02},
	))
	require.ErrorIs(t, err, converter.ErrArbitrageDetected)
	var ae *converter.ArbitrageError
	require.True(t, errors.As(err, &ae))
	assert.InDelta(t, 1.6, ae.Gain, 1e-12)
}

func TestTable_RateOutOfRange(t *testing.T) {
	for _, r := range []float64{1e200, 1e-200} {
		tbl, err := converter.Table([]core.ExchangeRate{
			{From: "A", To: "B", Rate: r},
			{From: "B", To: "C", Rate: r},
		})
		require.NoError(t, err)

		res, err := tbl.Best("A", "B")
		require.NoError(t, err)
		assert.Equal(t, r, res.Rate)

		_, err = tbl.Best("A", "C")
		assert.ErrorIs(t, err, converter.ErrRateOutOfRange, "rate %g", r)
	}
}

func TestTable_AgreesWithSolve(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for round := 0; round < 15; round++ {
		rates := spreadMarket(r, 8, 26)
		tbl, err := converter.Table(rates)
		require.NoError(t, err)

		for _, from := range tbl.Currencies() {
			for _, to := range tbl.Currencies() {
				want, wantErr := converter.Solve(rates, from, to)
				got, gotErr := tbl.Best(from, to)
				if wantErr != nil {
					assert.ErrorIs(t, gotErr, converter.ErrNoPath, "round %d %s→%s", round, from, to)
					assert.ErrorIs(t, wantErr, converter.ErrNoPath, "round %d %s→%s", round, from, to)
					continue
				}
				require.NoError(t, gotErr, "round %d %s→%s", round, from, to)
				assert.True(t, scalar.EqualWithinRel(want.Rate, got.Rate, 1e-9), "round %d %s→%s", round, from, to)
				assert.Equal(t, got.Path[0], from)
				assert.Equal(t, got.Path[len(got.Path)-1], to)
			}
		}
	}
}
