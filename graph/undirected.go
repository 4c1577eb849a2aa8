// SPDX-License-Identifier: MIT
//
// File: undirected.go
// Role: Thread-safe, index-based undirected edge list implementing Graph.
// Concurrency:
//   - Mutations under mu write lock; reads under mu read lock.
//   - Edges() yields from a snapshot, so callers may mutate while iterating.

package graph

import (
	"fmt"
	"iter"
	"sync"
)

// Undirected is an undirected weighted multigraph over dense vertex indices.
//
// Parallel edges are kept as inserted; consumers that need a single weight
// per pair (the all-pairs engines, Weight) take the minimum.
type Undirected[W Weight] struct {
	mu sync.RWMutex // guards n and edges

	allowLoops bool

	n     int       // vertex count; valid indices are [0, n)
	edges []Edge[W] // insertion order
}

// NewUndirected creates a graph with n isolated vertices 0..n-1.
// Returns ErrBadVertexCount when n < 0.
// Complexity: O(1).
func NewUndirected[W Weight](n int, opts ...GraphOption) (*Undirected[W], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewUndirected(%d): %w", n, ErrBadVertexCount)
	}

	var cfg graphConfig
	var opt GraphOption
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Undirected[W]{allowLoops: cfg.allowLoops, n: n}, nil
}

// AddVertex appends a new isolated vertex and returns its index.
// Complexity: O(1).
func (g *Undirected[W]) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.n
	g.n++

	return id
}

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [0, VertexCount()).
//   - ErrLoopNotAllowed if u == v and the graph was built without WithLoops().
//
// Complexity: O(1) amortized.
func (g *Undirected[W]) AddEdge(u, v int, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d) with %d vertices: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.edges = append(g.edges, Edge[W]{From: u, To: v, Weight: w})

	return nil
}

// VertexCount returns the number of vertices.
func (g *Undirected[W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// EdgeCount returns the number of stored edges, parallel edges included.
func (g *Undirected[W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a sequence over a snapshot of the edges in insertion order.
// Complexity: O(E) to snapshot, then O(1) per yielded edge.
func (g *Undirected[W]) Edges() iter.Seq[Edge[W]] {
	g.mu.RLock()
	snapshot := make([]Edge[W], len(g.edges))
	copy(snapshot, g.edges)
	g.mu.RUnlock()

	return func(yield func(Edge[W]) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// Weight returns the lightest edge weight between u and v in either
// orientation, and false if no such edge exists.
// Complexity: O(E).
func (g *Undirected[W]) Weight(u, v int) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		best  W
		found bool
	)
	for _, e := range g.edges {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			if !found || e.Weight < best {
				best, found = e.Weight, true
			}
		}
	}

	return best, found
}
