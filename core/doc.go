// Package core provides the currency graph every solver in fxroute works on.
//
// A Graph G = (V,E) is built once from a list of exchange-rate tuples and is
// never mutated afterwards:
//
//   - V: every currency named in any tuple, numbered 0..n-1 in order of first
//     appearance (From before To within a tuple).
//   - E: one directed edge per tuple, carrying the original Rate and the
//     modified cost Weight = -ln(Rate). Parallel edges and self-loops are kept.
//
// Maximizing a product of rates along a path is the same as minimizing the
// sum of modified costs, so any shortest-path engine over Weight answers the
// best-rate question. Weights are negative whenever Rate > 1; a cycle whose
// rate product exceeds 1 becomes a negative cycle.
//
// Construction:
//
//	g, err := core.Build([]core.ExchangeRate{
//	    {From: "USD", To: "EUR", Rate: 2},
//	    {From: "EUR", To: "JAP", Rate: 3},
//	})
//
// Build rejects empty currency names (ErrEmptyCurrency) and rates that are
// zero, negative, NaN or infinite (ErrInvalidRate) before indexing anything.
//
// Search results:
//
//	Tree holds Dist and PrevEdge slices sized to g.Len(). PathTo rebuilds the
//	edge path to a vertex; CycleFrom extracts a predecessor cycle when an
//	engine reports a negative cycle.
//
// Concurrency:
//
//	A Graph is read-only after Build, so it may be shared by goroutines.
//	A Tree belongs to the call that produced it.
package core
