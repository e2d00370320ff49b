package bellmanford

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon absorbs rounding on rate cycles whose exact product is 1.
const DefaultEpsilon = 1e-12

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceOutOfRange indicates that Source does not name a vertex.
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycle indicates an edge that still relaxes after |V|-1 passes.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrBadEpsilon indicates a negative or NaN Epsilon.
	ErrBadEpsilon = errors.New("bellmanford: Epsilon must be non-negative")
)

// CycleError reports the negative cycle found by the detection pass.
// Edges lists edge IDs in travel order.
type CycleError struct {
	Edges []int
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s (%d edges)", ErrNegativeCycle, len(e.Edges))
}

// Unwrap makes errors.Is(err, ErrNegativeCycle) hold.
func (e *CycleError) Unwrap() error { return ErrNegativeCycle }

// Options configures one BellmanFord run.
type Options struct {
	Source  int     // index of the starting vertex
	Epsilon float64 // minimum improvement treated as a relaxation
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithEpsilon sets the relaxation tolerance. Negative or NaN values panic.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns Options for source with DefaultEpsilon.
func DefaultOptions(source int) Options {
	return Options{Source: source, Epsilon: DefaultEpsilon}
}
