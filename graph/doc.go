// Package graph is the input side of apsp: a minimal, index-based view of an
// undirected weighted graph that the all-pairs engines consume.
//
// Vertices are dense integer indices 0..N-1 assigned once, at insertion time,
// and never renumbered. Edges are (From, To, Weight) triples; orientation is
// irrelevant because every edge is undirected.
//
// Weights are unsigned integers (see Weight). That rules out negative edges
// and negative cycles by construction instead of by a runtime scan. The
// largest representable value of the weight type is reserved as the
// "no path" sentinel (Infinity), and SaturatingAdd never wraps past it.
//
// Any type implementing Graph can be fed to the engines. Undirected is the
// bundled, thread-safe implementation; FromGonum imports an existing
// gonum.org/v1/gonum graph whose node IDs are already dense.
//
// Errors:
//
//	ErrBadVertexCount   - negative vertex count requested.
//	ErrVertexOutOfRange - edge endpoint outside [0, VertexCount()).
//	ErrLoopNotAllowed   - self-loop without WithLoops().
//	ErrNilGraph         - nil source graph passed to an importer.
//	ErrNonDenseIDs      - imported node IDs are not exactly 0..N-1.
//	ErrBadWeight        - imported weight is negative, fractional or too large.
package graph
