// Package dijkstra defines options and sentinel errors for the heap-driven
// best-rate search over a core.Graph.
//
// Options:
//
//	– Source:      index of the starting vertex (must be within the graph).
//	– Epsilon:     smallest improvement in modified cost that counts as a relaxation.
//	– MaxHops:     edge count at which a best path is proven to contain a negative
//	               cycle; 0 means "use Len()".
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrSourceOutOfRange  if Source is not a vertex index of the graph.
//	– ErrNegativeCycle     if relaxation keeps improving past MaxHops edges.
//	– ErrBadEpsilon        if Epsilon < 0 or NaN.
//	– ErrBadMaxHops        if MaxHops < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon absorbs rounding on rate cycles whose exact product is 1.
const DefaultEpsilon = 1e-12

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that Source does not name a vertex.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable from
	// the source, so the minimum cost is unbounded.
	ErrNegativeCycle = errors.New("dijkstra: negative cycle reachable from source")

	// ErrBadEpsilon indicates a negative or NaN Epsilon.
	ErrBadEpsilon = errors.New("dijkstra: Epsilon must be non-negative")

	// ErrBadMaxHops indicates a negative MaxHops.
	ErrBadMaxHops = errors.New("dijkstra: MaxHops must be non-negative")
)

// CycleError reports the negative cycle that stopped the search.
// Edges lists edge IDs in travel order; it may be empty when the
// predecessor graph did not close a cycle at the moment of detection.
type CycleError struct {
	Edges []int
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s (%d edges)", ErrNegativeCycle, len(e.Edges))
}

// Unwrap makes errors.Is(err, ErrNegativeCycle) hold.
func (e *CycleError) Unwrap() error { return ErrNegativeCycle }

// Options configures one Dijkstra run.
type Options struct {
	Source  int     // index of the starting vertex
	Epsilon float64 // minimum improvement treated as a relaxation
	MaxHops int     // hop bound for negative-cycle detection; 0 → graph size
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithEpsilon sets the relaxation tolerance.
// Negative or NaN values panic, signalling invalid configuration early.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithMaxHops overrides the hop bound. Values below Len() make the guard
// stricter than necessary; tests use it to force early detection.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxHops.Error())
		}
		o.MaxHops = n
	}
}

// DefaultOptions returns Options for the given source with the default
// tolerance and the hop bound derived from the graph size.
func DefaultOptions(source int) Options {
	return Options{
		Source:  source,
		Epsilon: DefaultEpsilon,
		MaxHops: 0,
	}
}
