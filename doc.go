// Package apsp answers "how far, and which way?" for every pair of vertices
// in an undirected weighted graph.
//
// What is inside:
//
//	graph/         — the input adapter: Weight constraint, Infinity sentinel,
//	                 saturating addition, the Graph interface, a thread-safe
//	                 Undirected edge list, and FromGonum for gonum graphs.
//	floydwarshall/ — the engine: Compute runs Floyd–Warshall once and
//	                 returns an immutable Matrix answering PathLen,
//	                 PathExists, PathIter and Path.
//
// Why this shape?
//
//   - One O(V³) pass, then O(1) length lookups for the lifetime of the result.
//   - Unsigned weights make negative edges unrepresentable, so no runtime scan.
//   - Flat row-major tables (index i*N+j) keep the relaxation sweep cache-friendly.
//   - The result is never mutated, so concurrent readers need no locks.
//
// Quick ASCII example:
//
//	    0───1
//	     ╲  │      edges 0-1 (1), 1-2 (1), 0-2 (3)
//	      ╲ │      PathLen(0,2) == 2 via vertex 1
//	        2
//
//	g, _ := graph.NewUndirected[uint](3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(0, 2, 3)
//	m, _ := floydwarshall.Compute[uint](g)
//	m.Path(0, 2) // [0 1 2]
//
//	go get github.com/katalvlaran/apsp
package apsp
