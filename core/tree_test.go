package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fxroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree_Initialization(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	tr, err := core.NewTree(g, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, tr.Source)
	assert.Len(t, tr.Dist, g.Len())
	assert.Len(t, tr.PrevEdge, g.Len())
	for v := 0; v < g.Len(); v++ {
		assert.Equal(t, core.NoEdge, tr.PrevEdge[v])
		if v == 2 {
			assert.Zero(t, tr.Dist[v])
			assert.True(t, tr.Reached(v))
			continue
		}
		assert.True(t, math.IsInf(tr.Dist[v], 1))
		assert.False(t, tr.Reached(v))
	}
	assert.Same(t, g, tr.Graph())
}

func TestNewTree_SourceOutOfRange(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)

	_, err = core.NewTree(g, 4)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = core.NewTree(g, -1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestTree_PathTo(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)
	usd, _ := g.Index("USD")
	cad, _ := g.Index("CAD")
	jap, _ := g.Index("JAP")

	tr, err := core.NewTree(g, usd)
	require.NoError(t, err)
	// Hand-record USD→CAD (edge 2) and CAD→JAP (edge 6).
	tr.Dist[cad], tr.PrevEdge[cad] = -math.Log(4), 2
	tr.Dist[jap], tr.PrevEdge[jap] = -math.Log(16), 6

	ids, err := tr.PathTo(jap)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 6}, ids)

	ids, err = tr.PathTo(usd)
	require.NoError(t, err)
	assert.Empty(t, ids)

	eur, _ := g.Index("EUR")
	_, err = tr.PathTo(eur)
	assert.ErrorIs(t, err, core.ErrBrokenPath)

	_, err = tr.PathTo(99)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestTree_PathToDetectsLoops(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)
	usd, _ := g.Index("USD")
	eur, _ := g.Index("EUR")
	jap, _ := g.Index("JAP")

	// Root at JAP, then plant a USD⇄EUR loop that never leads back.
	tr, err := core.NewTree(g, jap)
	require.NoError(t, err)
	tr.Dist[usd], tr.PrevEdge[usd] = -1, 1
	tr.Dist[eur], tr.PrevEdge[eur] = -2, 0

	_, err = tr.PathTo(eur)
	assert.ErrorIs(t, err, core.ErrBrokenPath)
}

func TestTree_CycleFrom(t *testing.T) {
	g, err := core.Build(classicRates())
	require.NoError(t, err)
	usd, _ := g.Index("USD")
	eur, _ := g.Index("EUR")
	jap, _ := g.Index("JAP")

	tr, err := core.NewTree(g, jap)
	require.NoError(t, err)
	tr.Dist[usd], tr.PrevEdge[usd] = -1, 1 // EUR→USD
	tr.Dist[eur], tr.PrevEdge[eur] = -2, 0 // USD→EUR

	// Rotated to start at the edge leaving USD (index 0).
	cycle := tr.CycleFrom(eur)
	assert.Equal(t, []int{0, 1}, cycle)
	assert.Equal(t, 1.0, g.Product(cycle))

	// A chain that ends at the root has no cycle.
	tr2, err := core.NewTree(g, usd)
	require.NoError(t, err)
	tr2.Dist[eur], tr2.PrevEdge[eur] = -math.Log(2), 0
	assert.Nil(t, tr2.CycleFrom(eur))
	assert.Nil(t, tr2.CycleFrom(-1))
}
