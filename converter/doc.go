// Package converter answers "what is the best rate from A to B" over a list
// of exchange-rate quotes.
//
// Every call builds its own immutable core.Graph, maps each rate r to the
// modified cost -ln(r) and runs a shortest-path engine on it: the path with
// the smallest total cost is the path with the largest rate product.
//
// Rates above 1 produce negative costs, so the engine matters:
//
//   - AlgorithmBellmanFord (default) relaxes |V|-1 passes and proves the
//     absence of arbitrage with one more pass.
//   - AlgorithmDijkstra is the heap-driven variant. It expects an
//     arbitrage-free market and stops with ErrArbitrageDetected when a
//     best path grows to |V| hops.
//
// Table runs the all-pairs closure once for repeated lookups.
//
// Errors are matched with errors.Is against ErrInvalidRate,
// ErrUnknownCurrency, ErrNoPath and ErrArbitrageDetected; arbitrage comes as
// *ArbitrageError carrying the profitable cycle.
//
// Example:
//
//	res, err := converter.Solve(rates, "USD", "JAP")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Path, res.Rate, res.Convert(100))
package converter
