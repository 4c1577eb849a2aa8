// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"iter"
)

// Sentinel errors for graph construction and import.
var (
	// ErrBadVertexCount indicates a negative initial vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrNilGraph indicates a nil source graph was passed to an importer.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrNonDenseIDs indicates the imported node IDs are not exactly 0..N-1.
	ErrNonDenseIDs = errors.New("graph: node IDs are not dense")

	// ErrBadWeight indicates an imported weight cannot be represented by the
	// target weight type (negative, NaN, fractional or >= Infinity).
	ErrBadWeight = errors.New("graph: weight not representable")
)

// Weight is the set of edge weight types accepted by the engines.
//
// Only unsigned integers qualify: they are summable, totally ordered, have a
// zero value and a maximum value, and cannot be negative.
type Weight interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Edge is one undirected weighted connection between two vertex indices.
type Edge[W Weight] struct {
	From   int // first endpoint
	To     int // second endpoint
	Weight W   // cost of traversing the edge in either direction
}

// Graph is the capability the all-pairs engines depend on.
//
// VertexCount fixes the index space [0, VertexCount()). Edges enumerates
// every undirected edge once; parallel edges may appear and self-loops are
// tolerated. Implementations must not change while an engine is reading them.
type Graph[W Weight] interface {
	VertexCount() int
	Edges() iter.Seq[Edge[W]]
}

// GraphOption configures an Undirected graph at construction.
type GraphOption func(*graphConfig)

type graphConfig struct {
	allowLoops bool
}

// WithLoops permits self-loops. They are stored but never shorten a path,
// since a vertex is always at distance zero from itself.
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}
