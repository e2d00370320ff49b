// Package dijkstra implements a Dijkstra-style best-rate search on core.Graph.
//
// Modified costs -ln(rate) are negative whenever a rate exceeds 1, which breaks
// the "settled vertices are final" premise of textbook Dijkstra. This variant
// therefore keeps no visited set: a vertex is re-queued every time its cost
// strictly improves, and the search runs until the heap is empty.
//
// Without negative cycles the result is exact. With one, costs would fall
// forever; each vertex carries the edge count of its current best path, and
// a count reaching MaxHops (default |V|) proves a negative cycle.
//
// Complexity:
//
//   - Time:  O((V + E) log V) on graphs with non-negative weights. Negative
//     weights re-queue a vertex on every improvement; the hop guard bounds
//     the length of a best path, not the number of re-queues, so adversarial
//     arbitrage-free inputs can take exponential time. Use bellmanford for
//     an O(V·E) bound.
//   - Space: O(V + E) for the tree, hop counters and lazy heap entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/fxroute/core"
)

// Dijkstra computes minimum modified costs from Options.Source to every
// vertex of g.
//
// Returns:
//
//   - tree: distances and predecessor edges sized to g.Len().
//   - err:  ErrNilGraph, ErrSourceOutOfRange, or a *CycleError wrapping
//     ErrNegativeCycle.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be a vertex index of g (ErrSourceOutOfRange).
func Dijkstra(g *core.Graph, opts ...Option) (*core.Tree, error) {
	// 1) Build options.
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.Len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, g.Len())
	}
	if cfg.MaxHops == 0 {
		cfg.MaxHops = g.Len()
	}

	// 3) Fresh per-call state.
	tree, err := core.NewTree(g, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	r := &runner{
		g:       g,
		options: cfg,
		tree:    tree,
		hops:    make([]int, g.Len()),
		pq:      make(nodePQ, 0, g.Len()),
	}

	// 4) Seed and run.
	r.init()
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // input graph; read-only
	options Options     // Source, Epsilon, MaxHops
	tree    *core.Tree  // Dist and PrevEdge under construction
	hops    []int       // edge count of the current best path per vertex
	pq      nodePQ      // lazy min-heap of (vertex, cost)
}

// init pushes the source with cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the cheapest frontier vertex until the heap is empty.
// There is no early exit at any target: a negative edge found later can
// still lower a cost that was already popped.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost entry.
		item = heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries superseded by a later improvement.
		if item.dist > r.tree.Dist[item.id] {
			continue
		}

		// 3) Relax outgoing edges.
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge leaving u and records strict improvements.
func (r *runner) relax(u int) error {
	var (
		e    core.Edge
		v    int
		cand float64
	)
	du := r.tree.Dist[u]
	for _, id := range r.g.Out(u) {
		e, _ = r.g.Edge(id) // id comes from the graph itself
		v = e.To

		// Candidate cost Source → … → u → v.
		cand = du + e.Weight

		// Only improvements larger than Epsilon count; this keeps product-1
		// cycles from cycling on rounding noise.
		if !(cand < r.tree.Dist[v]-r.options.Epsilon) {
			continue
		}

		r.tree.Dist[v] = cand
		r.tree.PrevEdge[v] = id
		r.hops[v] = r.hops[u] + 1

		// A best path with MaxHops edges repeats a vertex, and the repeat
		// only improved because the loop between them is negative.
		if r.hops[v] >= r.options.MaxHops {
			return &CycleError{Edges: r.tree.CycleFrom(v)}
		}

		heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and the cost it was pushed with.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // cost at push time
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay in
// the heap and are dropped when popped (lazy decrease-key).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by ascending cost, then by vertex index for determinism.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
