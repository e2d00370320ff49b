// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: Single-source search result shared by the shortest-path engines.
// Policy:
//   - Dist and PrevEdge are sized exactly to Graph.Len().
//   - Paths are recovered from predecessor edges, never from guessed arrays.

package core

import (
	"fmt"
	"math"
)

// Tree is the outcome of a single-source search over a Graph.
//
// Dist[v] is the minimum accumulated modified cost from Source to v
// (+Inf when v was never reached). PrevEdge[v] is the ID of the edge that
// last improved v, or NoEdge.
type Tree struct {
	Source   int
	Dist     []float64
	PrevEdge []int

	g *Graph
}

// NewTree returns a Tree for g rooted at source with every other vertex unreached.
func NewTree(g *Graph, source int) (*Tree, error) {
	if source < 0 || source >= g.Len() {
		return nil, fmt.Errorf("%w: source %d", ErrIndexOutOfRange, source)
	}

	n := g.Len()
	t := &Tree{
		Source:   source,
		Dist:     make([]float64, n),
		PrevEdge: make([]int, n),
		g:        g,
	}
	for v := 0; v < n; v++ {
		t.Dist[v] = math.Inf(1)
		t.PrevEdge[v] = NoEdge
	}
	t.Dist[source] = 0

	return t, nil
}

// Graph returns the graph the tree was computed on.
func (t *Tree) Graph() *Graph { return t.g }

// Reached reports whether v has a finite distance.
func (t *Tree) Reached(v int) bool { return !math.IsInf(t.Dist[v], 1) }

// PathTo returns the edge IDs of the recorded path Source → v, in travel order.
// The path to Source itself is empty.
//
// Errors:
//   - ErrIndexOutOfRange if v is not a vertex.
//   - ErrBrokenPath if v is unreached or the chain loops.
//
// Complexity: O(L) for a path of L edges, bounded by Len().
func (t *Tree) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(t.Dist) {
		return nil, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}
	if !t.Reached(v) {
		return nil, fmt.Errorf("%w: vertex %d unreached", ErrBrokenPath, v)
	}

	var ids []int
	cur := v
	for steps := 0; cur != t.Source; steps++ {
		// A simple path has at most Len()-1 edges.
		if steps >= len(t.Dist) || t.PrevEdge[cur] == NoEdge {
			return nil, fmt.Errorf("%w: stuck at vertex %d", ErrBrokenPath, cur)
		}
		ids = append(ids, t.PrevEdge[cur])
		cur = t.g.edges[t.PrevEdge[cur]].From
	}

	// Reverse into travel order.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids, nil
}

// CycleFrom looks for a cycle in the predecessor graph reachable backwards
// from v and returns its edge IDs in travel order, or nil if the chain
// ends at a vertex without predecessor.
//
// During relaxation every cycle in the predecessor graph has negative total
// weight, so a non-nil result is an arbitrage cycle.
func (t *Tree) CycleFrom(v int) []int {
	n := len(t.Dist)
	if v < 0 || v >= n {
		return nil
	}

	// 1) Walk back n steps; if we never fall off the chain we are on a cycle.
	cur := v
	for i := 0; i < n; i++ {
		if t.PrevEdge[cur] == NoEdge {
			return nil
		}
		cur = t.g.edges[t.PrevEdge[cur]].From
	}

	// 2) Collect the cycle starting and ending at cur.
	var ids []int
	start := cur
	for {
		id := t.PrevEdge[cur]
		ids = append(ids, id)
		cur = t.g.edges[id].From
		if cur == start || len(ids) > n {
			break
		}
	}

	// 3) Travel order, rotated to begin at the smallest vertex index for stable output.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return t.g.rotateCycle(ids)
}

// rotateCycle rotates a closed edge sequence so that it starts at the edge
// leaving the lowest-indexed vertex.
func (g *Graph) rotateCycle(ids []int) []int {
	if len(ids) == 0 {
		return ids
	}
	k := 0
	for i, id := range ids {
		if g.edges[id].From < g.edges[ids[k]].From {
			k = i
		}
	}

	return append(append(make([]int, 0, len(ids)), ids[k:]...), ids[:k]...)
}

// Product multiplies the rates of the given edges. An empty list yields 1.
func (g *Graph) Product(ids []int) float64 {
	p := 1.0
	for _, id := range ids {
		p *= g.edges[id].Rate
	}

	return p
}

// Vertices maps a travel-ordered edge path to the currencies it visits,
// starting at from. For an empty path the result is [from].
func (g *Graph) Vertices(from int, ids []int) []Currency {
	out := make([]Currency, 0, len(ids)+1)
	out = append(out, g.names[from])
	for _, id := range ids {
		out = append(out, g.names[g.edges[id].To])
	}

	return out
}
