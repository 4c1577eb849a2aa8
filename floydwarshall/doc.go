// Package floydwarshall computes all-pairs shortest paths on undirected graphs
// with non-negative integer weights and returns an immutable, queryable
// distance matrix.
//
// Overview:
//
//   - Compute runs the classic Floyd–Warshall dynamic program over a dense
//     N×N distance table stored as one flat row-major slice (index i*N+j).
//   - Alongside the distances it keeps an intermediate-vertex table: for each
//     pair, the vertex k through which its best path was last improved.
//   - The returned *Matrix answers PathLen, PathExists and PathIter in O(1),
//     O(1) and O(path length) respectively.
//
// Determinism:
//
//   - The loop order is fixed with k outermost. By the end of step k every
//     cell is optimal over paths whose intermediates are all ≤ k.
//   - Only a strictly shorter candidate replaces a cell; ties keep the
//     existing value, so repeated runs on identical input pick identical
//     intermediate vertices and reconstruct identical paths.
//   - WithWorkers splits the rows of each k step across goroutines with a
//     barrier before k advances. Row k and column k are fixed points of step
//     k, so the parallel sweep produces exactly the sequential result.
//
// Infinity and overflow:
//
//   - graph.Infinity[W]() (the maximum value of W) means "no path".
//   - Candidate lengths use graph.SaturatingAdd: anything involving Infinity,
//     or any sum that would overflow W, becomes Infinity. A path whose true
//     length does not fit in W is therefore reported as unreachable; pick a
//     wider weight type if that matters.
//
// Path reconstruction and the ordering convention:
//
//   - PathIter(i, j) always reconstructs along (lo, hi) = (min(i,j), max(i,j)).
//     It yields the vertices after lo up to and including hi.
//   - For i < j that is source→destination order without the source.
//   - For i > j it is destination→source order without the destination; a
//     caller that wants source-first order reverses the sequence.
//   - Path(i, j) does that reversal for you and returns the full vertex list
//     with both endpoints.
//   - Reconstruction uses an explicit stack, never recursion, and the
//     sequence is lazy and restartable.
//
// Errors:
//
//   - ErrNilGraph, ErrBadVertexCount, ErrVertexOutOfRange are returned by
//     Compute for malformed input.
//   - Querying with an index outside [0, Len()) is caller misuse: the query
//     methods panic with an error wrapping ErrVertexOutOfRange.
//   - An unreachable pair is not an error: PathLen returns Infinity and
//     PathIter yields nothing.
//
// Complexity:
//
//   - Time:  O(V³) for Compute.
//   - Space: O(V²) for each of the two tables.
//
// Thread safety:
//
//   - A *Matrix is never mutated after Compute returns; any number of
//     goroutines may query it concurrently without locking.
package floydwarshall
