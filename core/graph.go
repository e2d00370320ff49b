// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Pure construction of a Graph from rate tuples and read-only getters.
// Determinism:
//   - Vertex numbering follows first appearance; edge IDs follow input order.
// Concurrency:
//   - A built Graph is never mutated, so concurrent readers need no locks.

package core

import (
	"fmt"
	"math"
)

// Build validates rates and returns the indexed graph.
//
// Implementation:
//   - Stage 1: Validate every tuple before allocating anything.
//   - Stage 2: Assign vertex indices in first-seen order.
//   - Stage 3: Append one edge per tuple with Weight = -ln(Rate).
//
// Errors:
//   - ErrEmptyCurrency, ErrInvalidRate wrapped with the tuple position.
//
// Complexity: O(R) time and space for R tuples.
func Build(rates []ExchangeRate) (*Graph, error) {
	// Stage 1: nothing is indexed until the whole input is known to be valid.
	for i, r := range rates {
		if err := Validate(r); err != nil {
			return nil, fmt.Errorf("%w (tuple %d: %s→%s)", err, i, r.From, r.To)
		}
	}

	g := &Graph{
		index: make(map[Currency]int, len(rates)),
		names: make([]Currency, 0, len(rates)),
		edges: make([]Edge, 0, len(rates)),
	}

	// Stage 2 + 3 in a single pass; the index map is local to this call.
	var from, to int
	for _, r := range rates {
		from = g.vertex(r.From)
		to = g.vertex(r.To)
		g.edges = append(g.edges, Edge{
			ID:     len(g.edges),
			From:   from,
			To:     to,
			Rate:   r.Rate,
			Weight: -math.Log(r.Rate),
		})
		g.out[from] = append(g.out[from], len(g.edges)-1)
	}

	return g, nil
}

// Validate reports whether a single tuple can enter a Graph.
func Validate(r ExchangeRate) error {
	if r.From == "" || r.To == "" {
		return ErrEmptyCurrency
	}
	if math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) || r.Rate <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, r.Rate)
	}

	return nil
}

// vertex returns the index of c, assigning the next free one on first sight.
func (g *Graph) vertex(c Currency) int {
	i, ok := g.index[c]
	if !ok {
		i = len(g.names)
		g.index[c] = i
		g.names = append(g.names, c)
		g.out = append(g.out, nil)
	}

	return i
}

// Len returns the number of distinct currencies.
func (g *Graph) Len() int { return len(g.names) }

// EdgeCount returns the number of edges (one per input tuple).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Index returns the vertex index of c and whether c is present.
func (g *Graph) Index(c Currency) (int, bool) {
	i, ok := g.index[c]

	return i, ok
}

// Has reports whether c appears in any tuple.
func (g *Graph) Has(c Currency) bool {
	_, ok := g.index[c]

	return ok
}

// Name returns the currency at vertex index i.
// It panics if i is out of range, like a slice access.
func (g *Graph) Name(i int) Currency { return g.names[i] }

// Currencies returns a copy of the vertex names in index order.
func (g *Graph) Currencies() []Currency {
	out := make([]Currency, len(g.names))
	copy(out, g.names)

	return out
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: edge %d", ErrIndexOutOfRange, id)
	}

	return g.edges[id], nil
}

// Edges returns a copy of all edges in ID order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Out returns the IDs of edges leaving vertex v, in input order.
// The returned slice must not be modified.
func (g *Graph) Out(v int) []int { return g.out[v] }

// Rates converts edge IDs back into rate tuples, e.g. to report the hops of a path.
func (g *Graph) Rates(ids []int) []ExchangeRate {
	out := make([]ExchangeRate, 0, len(ids))
	var e Edge
	for _, id := range ids {
		e = g.edges[id]
		out = append(out, ExchangeRate{From: g.names[e.From], To: g.names[e.To], Rate: e.Rate})
	}

	return out
}
