// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense APSP with a deterministic k → i → j loop order over flat buffers.
//   - Records the improving intermediate vertex per pair for reconstruction.
//
// Contract:
//   - Infinity[W] means "no path"; the diagonal is 0 before relaxation starts.

package floydwarshall

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/apsp/graph"
)

// Compute runs Floyd–Warshall over g and returns the frozen result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g.VertexCount() must be ≥ 0 (ErrBadVertexCount).
//  3. Every edge endpoint must lie in [0, VertexCount()) (ErrVertexOutOfRange).
//
// Disconnected graphs are fine: unreachable pairs keep Infinity.
// Self-loops are ignored. Parallel edges contribute their minimum weight.
//
// Complexity: Time O(V³ + E), Space O(V²).
func Compute[W graph.Weight](g graph.Graph[W], opts ...Option) (*Matrix[W], error) {
	// 1) Build options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n < 0 {
		return nil, fmt.Errorf("Compute: %d vertices: %w", n, ErrBadVertexCount)
	}

	// 3) Allocate and seed both tables
	m := newMatrix[W](n)
	edges, err := m.seed(g)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("floydwarshall: compute start", "vertices", n, "edges", edges, "workers", cfg.Workers)

	// 4) Relax
	start := time.Now()
	if cfg.Workers > 1 && n > 1 {
		m.relaxParallel(cfg.Workers)
	} else {
		m.relax()
	}
	cfg.Logger.Debug("floydwarshall: compute done", "vertices", n, "reachable", m.reachablePairs(), "elapsed", time.Since(start))

	return m, nil
}

// newMatrix allocates n×n tables: distances Infinity with a zero diagonal,
// intermediates noVia everywhere.
// Complexity: O(n²).
func newMatrix[W graph.Weight](n int) *Matrix[W] {
	inf := graph.Infinity[W]()
	m := &Matrix[W]{
		n:    n,
		dist: make([]W, n*n),
		via:  make([]int, n*n),
	}

	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			m.via[base+j] = noVia
			if i != j {
				m.dist[base+j] = inf
			}
		}
	}

	return m
}

// seed writes direct edge weights into both (u,v) and (v,u), keeping the
// minimum across parallel edges. Returns the number of edges read.
// Complexity: O(E).
func (m *Matrix[W]) seed(g graph.Graph[W]) (int, error) {
	n := m.n
	count := 0
	for e := range g.Edges() {
		count++
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return count, fmt.Errorf("Compute: edge %d-%d with %d vertices: %w", e.From, e.To, n, ErrVertexOutOfRange)
		}
		if e.From == e.To { // diagonal stays 0
			continue
		}
		if e.Weight < m.dist[e.From*n+e.To] {
			m.dist[e.From*n+e.To] = e.Weight
			m.dist[e.To*n+e.From] = e.Weight
		}
	}

	return count, nil
}

// relax runs the full sequential k → i → j sweep in place.
// Time: O(n³); no allocations.
func (m *Matrix[W]) relax() {
	for k := 0; k < m.n; k++ {
		m.relaxRows(k, 0, m.n)
	}
}

// relaxParallel runs each k step over `workers` disjoint row bands and waits
// for all of them before advancing k.
//
// Step k never writes row k or column k (d[k][k] is 0, so no candidate is
// strictly smaller), so bands only share read-only cells.
func (m *Matrix[W]) relaxParallel(workers int) {
	n := m.n
	if workers > n {
		workers = n
	}
	band := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for k := 0; k < n; k++ {
		for lo := 0; lo < n; lo += band {
			wg.Add(1)
			go func(k, lo, hi int) {
				defer wg.Done()
				m.relaxRows(k, lo, hi)
			}(k, lo, min(lo+band, n))
		}
		wg.Wait() // barrier: step k+1 reads the finished step k
	}
}

// relaxRows relaxes rows [from, to) through intermediate vertex k.
func (m *Matrix[W]) relaxRows(k, from, to int) {
	n := m.n
	inf := graph.Infinity[W]()

	var (
		i, j         int
		baseK, baseI int
		ik, kj, cand W
	)

	// Local aliases to the flat row-major buffers.
	dist, via := m.dist, m.via
	baseK = k * n

	for i = from; i < to; i++ {
		baseI = i * n
		ik = dist[baseI+k] // current best i→k
		if ik == inf {     // i cannot reach k: nothing to gain
			continue
		}
		for j = 0; j < n; j++ {
			kj = dist[baseK+j] // current best k→j
			if kj == inf {
				continue
			}
			cand = graph.SaturatingAdd(ik, kj)
			if cand < dist[baseI+j] { // strict: ties keep the existing path
				dist[baseI+j] = cand
				via[baseI+j] = k
			}
		}
	}
}

// reachablePairs counts ordered pairs (i, j), i ≠ j, with a finite distance.
func (m *Matrix[W]) reachablePairs() int {
	inf := graph.Infinity[W]()
	count := 0
	for idx, d := range m.dist {
		if d != inf && idx/m.n != idx%m.n {
			count++
		}
	}

	return count
}
