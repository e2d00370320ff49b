// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Currency, ExchangeRate, Edge and Graph declarations plus the sentinel error set.
// Policy:
//   - Graph has no exported mutators; Build is the only constructor.
//   - All indices are dense ints in [0, Len()).

package core

import "errors"

// Sentinel errors for graph construction and tree traversal.
var (
	// ErrEmptyCurrency indicates that a rate tuple names the empty currency.
	ErrEmptyCurrency = errors.New("core: currency name is empty")

	// ErrInvalidRate indicates a rate that is zero, negative, NaN or infinite.
	// -ln(rate) is undefined or meaningless for such values.
	ErrInvalidRate = errors.New("core: rate must be finite and positive")

	// ErrIndexOutOfRange indicates a vertex or edge index outside the graph.
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrBrokenPath indicates that a predecessor chain does not lead back
	// to the source within Len() steps.
	ErrBrokenPath = errors.New("core: predecessor chain does not reach source")
)

// NoEdge marks the absence of a predecessor edge in a Tree.
const NoEdge = -1

// Currency is the name of a currency, unique within one Graph.
type Currency string

// ExchangeRate says that one unit of From converts to Rate units of To.
// The reverse direction is never implied.
type ExchangeRate struct {
	From Currency
	To   Currency
	Rate float64
}

// Edge is a directed, indexed rate edge.
//
// Weight is the modified cost -ln(Rate); it is negative when Rate > 1.
type Edge struct {
	ID     int     // position in Graph.Edges()
	From   int     // source vertex index
	To     int     // target vertex index
	Rate   float64 // original multiplicative rate
	Weight float64 // -ln(Rate)
}

// Graph is an immutable, densely indexed directed multigraph of currencies.
//
// Vertices are numbered in order of first appearance across the rate list
// (From before To within a tuple). Parallel edges and self-loops are kept.
type Graph struct {
	index map[Currency]int // currency → vertex index
	names []Currency       // vertex index → currency
	edges []Edge           // flat edge list, Edge.ID == position
	out   [][]int          // vertex index → outgoing edge IDs, input order
}
