package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/fxroute/core"
)

// BellmanFord computes minimum modified costs from Options.Source to every
// vertex of g and rejects inputs with a negative cycle reachable from it.
//
// Stages:
//  1. Validate graph and source.
//  2. Run up to |V|-1 passes over all edges in ID order, stopping early
//     after a pass that changed nothing.
//  3. Run one detection pass. Any edge that still relaxes by more than
//     Epsilon lies downstream of a negative cycle; the cycle is recovered
//     from the predecessor edges and returned in a *CycleError.
//
// Only edges leaving reached vertices are relaxed, so cycles the source
// cannot enter are ignored.
//
// Complexity: O(V·E) time, O(V) extra space.
func BellmanFord(g *core.Graph, opts ...Option) (*core.Tree, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.Len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, g.Len())
	}

	tree, err := core.NewTree(g, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("bellmanford: %w", err)
	}
	edges := g.Edges()

	// 2) |V|-1 relaxation passes.
	for pass := 1; pass < g.Len(); pass++ {
		if relaxAll(tree, edges, cfg.Epsilon) < 0 {
			break
		}
	}

	// 3) Detection pass: the last edge that still relaxes points into or
	//    behind the negative cycle.
	if last := relaxAll(tree, edges, cfg.Epsilon); last >= 0 {
		return nil, &CycleError{Edges: tree.CycleFrom(edges[last].To)}
	}

	return tree, nil
}

// relaxAll performs one pass over edges and returns the ID of the last edge
// that improved its target, or -1 when the pass changed nothing.
func relaxAll(t *core.Tree, edges []core.Edge, eps float64) int {
	last := -1
	var cand float64
	for _, e := range edges {
		if !t.Reached(e.From) {
			continue
		}
		cand = t.Dist[e.From] + e.Weight
		if cand < t.Dist[e.To]-eps {
			t.Dist[e.To] = cand
			t.PrevEdge[e.To] = e.ID
			last = e.ID
		}
	}

	return last
}
