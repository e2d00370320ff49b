// Package bellmanford implements the Bellman–Ford shortest-path algorithm on
// core.Graph, used by fxroute as the default best-rate engine because it
// detects arbitrage instead of assuming it away.
//
// A market with an arbitrage cycle (rate product > 1) has a negative cycle in
// modified-cost space, and "the best rate" is unbounded along it. Bellman–Ford
// settles every shortest path within |V|-1 passes when no such cycle exists,
// so a further pass that still improves something proves the cycle.
//
// Complexity:
//
//   - Time:   O(V·E), often less thanks to the early exit on a quiet pass.
//   - Memory: O(V) for the tree; edges are read from the graph.
//
// Errors:
//
//   - ErrNilGraph, ErrSourceOutOfRange for invalid input.
//   - *CycleError (wrapping ErrNegativeCycle) carrying the cycle's edge IDs.
//
// Example:
//
//	tree, err := bellmanford.BellmanFord(g, bellmanford.Source(usd))
//	var ce *bellmanford.CycleError
//	if errors.As(err, &ce) {
//	    fmt.Println("arbitrage gain", g.Product(ce.Edges))
//	}
package bellmanford
