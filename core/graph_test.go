package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/fxroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classicRates is the seven-tuple market used throughout the solver tests.
func classicRates() []core.ExchangeRate {
	return []core.ExchangeRate{
		{From: "USD", To: "EUR", Rate: 2},
		{From: "EUR", To: "USD", Rate: 0.5},
		{From: "USD", To: "CAD", Rate: 4},
		{From: "CAD", To: "USD", Rate: 0.25},
		{From: "USD", To: "JAP", Rate: 10},
		{From: "EUR", To: "JAP", Rate: 3},
		{From: "CAD", To: "JAP", Rate: 4},
	}
}

func TestBuild_IndexesInFirstSeenOrder(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	// USD and EUR come from tuple 0, CAD from tuple 2, JAP from tuple 4.
	assert.Equal(t, []core.Currency{"USD", "EUR", "CAD", "JAP"}, g.Currencies())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 7, g.EdgeCount())

	for i, c := range g.Currencies() {
		idx, ok := g.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Equal(t, c, g.Name(i))
	}
	assert.False(t, g.Has("GBP"))
}

func TestBuild_WeightsAreNegativeLog(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.InDelta(t, -math.Log(e.Rate), e.Weight, 1e-15, "edge %d", e.ID)
	}

	// Rate > 1 gives a negative weight, rate < 1 a positive one.
	e0, err := g.Edge(0)
	require.NoError(t, err)
	assert.Less(t, e0.Weight, 0.0)
	e1, err := g.Edge(1)
	require.NoError(t, err)
	assert.Greater(t, e1.Weight, 0.0)
}

func TestBuild_OutgoingEdgesKeepInputOrder(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	usd, _ := g.Index("USD")
	assert.Equal(t, []int{0, 2, 4}, g.Out(usd))

	jap, _ := g.Index("JAP")
	assert.Empty(t, g.Out(jap))
}

func TestBuild_ParallelEdgesAndLoopsAreKept(t *testing.T) {
	g, err := core.Build([]core.ExchangeRate{
		{From: "A", To: "B", Rate: 1.1},
		{From: "A", To: "B", Rate: 1.2},
		{From: "A", To: "A", Rate: 0.9},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	a, _ := g.Index("A")
	assert.Len(t, g.Out(a), 3)
}

func TestBuild_EmptyInput(t *testing.T) {
	g, err := core.Build(nil)
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_RejectsInvalidTuples(t *testing.T) {
	tests := []struct {
		name string
		r    core.ExchangeRate
		want error
	}{
		{"zero rate", core.ExchangeRate{From: "A", To: "B", Rate: 0}, core.ErrInvalidRate},
		{"negative rate", core.ExchangeRate{From: "A", To: "B", Rate: -2}, core.ErrInvalidRate},
		{"NaN rate", core.ExchangeRate{From: "A", To: "B", Rate: math.NaN()}, core.ErrInvalidRate},
		{"infinite rate", core.ExchangeRate{From: "A", To: "B", Rate: math.Inf(1)}, core.ErrInvalidRate},
		{"empty from", core.ExchangeRate{From: "", To: "B", Rate: 1}, core.ErrEmptyCurrency},
		{"empty to", core.ExchangeRate{From: "A", To: "", Rate: 1}, core.ErrEmptyCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The bad tuple sits after a valid one; nothing may be indexed.
			g, err := core.Build([]core.ExchangeRate{{From: "X", To: "Y", Rate: 1}, tt.r})
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), "tuple 1")
		})
	}
}

func TestGraph_EdgeOutOfRange(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	_, err = g.Edge(7)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.Edge(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestGraph_RatesAndProduct(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	// USD→CAD (edge 2), CAD→JAP (edge 6).
	path := []int{2, 6}
	assert.Equal(t, 16.0, g.Product(path))
	assert.Equal(t, 1.0, g.Product(nil))
	assert.Equal(t, []core.ExchangeRate{
		{From: "USD", To: "CAD", Rate: 4},
		{From: "CAD", To: "JAP", Rate: 4},
	}, g.Rates(path))

	usd, _ := g.Index("USD")
	assert.Equal(t, []core.Currency{"USD", "CAD", "JAP"}, g.Vertices(usd, path))
	assert.Equal(t, []core.Currency{"USD"}, g.Vertices(usd, nil))
}

func TestGraph_CurrenciesIsACopy(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	names := g.Currencies()
	names[0] = "XXX"
	assert.Equal(t, core.Currency("USD"), g.Name(0))
}
