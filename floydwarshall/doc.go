// Package floydwarshall computes the all-pairs best-rate closure of a
// core.Graph in one dense O(V³) pass.
//
// fxroute uses it to build rate tables: every ordered currency pair gets its
// best achievable rate and the first hop of the path that achieves it.
// Unlike the single-source engines, any negative cycle anywhere in the graph
// makes the whole table meaningless, so FloydWarshall rejects it even when a
// given pair never touches the cycle.
//
// Complexity:
//
//   - Time:   O(V³ + E).
//   - Memory: O(V²) for Dist and Next.
//
// Example:
//
//	res, err := floydwarshall.FloydWarshall(g)
//	ids, err := res.Path(usd, jap)
//	rate := g.Product(ids)
package floydwarshall
