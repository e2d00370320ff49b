// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense all-pairs best-rate closure over a core.Graph with a next-hop
//     matrix for path recovery.
//   - Deterministic loop order (k → i → j); strict-improvement tie rule.
//
// Contract:
//   - +Inf means "no path"; the diagonal starts at 0.
//   - A diagonal entry below -Epsilon after any k-stage is a negative cycle.

package floydwarshall

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fxroute/core"
)

// DefaultEpsilon absorbs rounding on rate cycles whose exact product is 1.
const DefaultEpsilon = 1e-12

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNegativeCycle indicates that some vertex can reach itself at negative cost.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle in graph")

	// ErrUnreachable indicates that no path joins the requested pair.
	ErrUnreachable = errors.New("floydwarshall: target unreachable")

	// ErrBadEpsilon indicates a negative or NaN Epsilon.
	ErrBadEpsilon = errors.New("floydwarshall: Epsilon must be non-negative")
)

// CycleError reports the negative cycle through Vertex.
// Edges lists edge IDs in travel order, starting and ending at Vertex;
// it is empty when the next-hop chain could not be closed.
type CycleError struct {
	Vertex int
	Edges  []int
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s (through vertex %d, %d edges)", ErrNegativeCycle, e.Vertex, len(e.Edges))
}

// Unwrap makes errors.Is(err, ErrNegativeCycle) hold.
func (e *CycleError) Unwrap() error { return ErrNegativeCycle }

// Option configures FloydWarshall.
type Option func(*options)

type options struct {
	epsilon float64
}

// WithEpsilon sets the relaxation tolerance. Negative or NaN values panic.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps < 0 || math.IsNaN(eps) {
			panic(ErrBadEpsilon.Error())
		}
		o.epsilon = eps
	}
}

// Result is the all-pairs closure of a graph.
//
// Dist[i][j] is the minimal modified cost i → j (+Inf if unreachable).
// Next[i][j] is the ID of the first edge on that path, core.NoEdge if none.
type Result struct {
	Dist [][]float64
	Next [][]int

	g *core.Graph
}

// FloydWarshall computes all-pairs minimal modified costs on g.
//
// Stages:
//  1. Seed Dist/Next from the cheapest edge of every ordered pair.
//  2. Close over every intermediate vertex k in index order.
//  3. After each k, fail on any diagonal entry below -Epsilon.
//
// Complexity: Time O(V³ + E), Space O(V²).
func FloydWarshall(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := options{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// Stage 1: seed.
	n := g.Len()
	res := &Result{
		Dist: make([][]float64, n),
		Next: make([][]int, n),
		g:    g,
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		res.Dist[i] = make([]float64, n)
		res.Next[i] = make([]int, n)
		for j = 0; j < n; j++ {
			res.Dist[i][j] = math.Inf(1)
			res.Next[i][j] = core.NoEdge
		}
		res.Dist[i][i] = 0
	}
	for _, e := range g.Edges() {
		// Parallel edges: keep the cheapest. A profitable self-loop lands on the diagonal.
		if e.Weight < res.Dist[e.From][e.To] {
			res.Dist[e.From][e.To] = e.Weight
			res.Next[e.From][e.To] = e.ID
		}
	}
	if v := negativeDiagonal(res.Dist, cfg.epsilon); v >= 0 {
		return nil, &CycleError{Vertex: v, Edges: res.cycleThrough(v)}
	}

	// Stage 2: triple loop with fixed order.
	var (
		ik, kj, cand float64
		rowI, rowK   []float64
	)
	for k = 0; k < n; k++ { // intermediate vertex
		rowK = res.Dist[k]
		for i = 0; i < n; i++ { // source vertex
			rowI = res.Dist[i]
			ik = rowI[k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			for j = 0; j < n; j++ { // destination vertex
				kj = rowK[j]
				if math.IsInf(kj, 1) { // k cannot reach j
					continue
				}
				cand = ik + kj
				if cand < rowI[j]-cfg.epsilon {
					rowI[j] = cand
					res.Next[i][j] = res.Next[i][k]
				}
			}
		}

		// Stage 3: stop as soon as a cycle shows up; costs would only diverge.
		if v := negativeDiagonal(res.Dist, cfg.epsilon); v >= 0 {
			return nil, &CycleError{Vertex: v, Edges: res.cycleThrough(v)}
		}
	}

	return res, nil
}

// negativeDiagonal returns the first vertex with Dist[v][v] < -eps, or -1.
func negativeDiagonal(dist [][]float64, eps float64) int {
	for v := range dist {
		if dist[v][v] < -eps {
			return v
		}
	}

	return -1
}

// cycleThrough follows next hops from v back to v.
func (r *Result) cycleThrough(v int) []int {
	var ids []int
	cur := v
	for steps := 0; steps <= len(r.Dist); steps++ {
		id := r.Next[cur][v]
		if id == core.NoEdge {
			return nil
		}
		ids = append(ids, id)
		e, _ := r.g.Edge(id)
		cur = e.To
		if cur == v {
			return ids
		}
	}

	return nil
}

// Len returns the matrix order.
func (r *Result) Len() int { return len(r.Dist) }

// Path returns the edge IDs of the best path i → j in travel order.
// The path from a vertex to itself is empty.
func (r *Result) Path(i, j int) ([]int, error) {
	n := len(r.Dist)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("floydwarshall: %w: pair (%d,%d)", core.ErrIndexOutOfRange, i, j)
	}
	if math.IsInf(r.Dist[i][j], 1) {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, i, j)
	}

	var ids []int
	for cur := i; cur != j; {
		if len(ids) >= n {
			return nil, fmt.Errorf("floydwarshall: %w: %d→%d", core.ErrBrokenPath, i, j)
		}
		id := r.Next[cur][j]
		ids = append(ids, id)
		e, _ := r.g.Edge(id)
		cur = e.To
	}

	return ids, nil
}
