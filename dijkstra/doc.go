// Package dijkstra provides the heap-driven best-rate search used by fxroute
// when the caller opts into the "no arbitrage" assumption.
//
// Overview:
//
//   - Every edge carries a modified cost -ln(rate). Minimizing the summed cost
//     maximizes the product of rates.
//   - A min-heap always expands the currently cheapest frontier vertex.
//   - Because costs can be negative, vertices are not finalized when popped;
//     any strict improvement re-queues the target (lazy decrease-key).
//   - The search ends when the heap is empty, never at a target vertex.
//
// When to use:
//
//   - Markets known to be free of arbitrage cycles (every cycle's product ≤ 1).
//     On such inputs it matches Bellman–Ford and is usually faster.
//   - When the assumption is wrong the run still terminates: a best path whose
//     edge count reaches MaxHops (default |V|) can only exist because of a
//     negative cycle, and Dijkstra returns a *CycleError wrapping ErrNegativeCycle.
//
// Key options:
//
//   - Source(int):          starting vertex index (required unless 0).
//   - WithEpsilon(float64): improvements no larger than this are ignored; keeps
//     product-1 cycles (USD→EUR 2, EUR→USD 0.5) from looping on rounding noise.
//   - WithMaxHops(int):     hop bound for the cycle guard.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*core.Tree, error)
//
//	  - tree.Dist[v]:     minimal modified cost Source → v, +Inf if unreachable.
//	  - tree.PrevEdge[v]: ID of the last edge on that path, core.NoEdge otherwise.
//	  - tree.PathTo(v):   edge IDs of the path, in travel order.
//
// Thread safety:
//
//   - Each call allocates its own tree, hop counters and heap. The graph is
//     read-only, so concurrent calls on the same graph are safe.
//
// See also:
//
//   - bellmanford: the default engine, which detects arbitrage explicitly.
//   - converter:   the currency-level API built on both engines.
package dijkstra
