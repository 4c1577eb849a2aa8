package floydwarshall_test

import (
	"iter"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/apsp/graph"
)

// triple is a compact edge literal for fixtures.
type triple struct {
	u, v int
	w    uint
}

// mustGraph builds an Undirected[uint] with n vertices and the given edges.
func mustGraph(t testing.TB, n int, edges ...triple) *graph.Undirected[uint] {
	t.Helper()

	g, err := graph.NewUndirected[uint](n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// randomGraph builds a seeded undirected graph: every unordered pair gets an
// edge with probability p and weight in [0, maxW).
func randomGraph(t testing.TB, seed int64, n int, p float64, maxW int) *graph.Undirected[uint] {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	g, err := graph.NewUndirected[uint](n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				require.NoError(t, g.AddEdge(u, v, uint(rng.Intn(maxW))))
			}
		}
	}

	return g
}

// toGonum mirrors g into a gonum graph, collapsing parallel edges to their minimum.
func toGonum(g *graph.Undirected[uint]) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.VertexCount(); i++ {
		out.AddNode(simple.Node(i))
	}
	for e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		w, _ := g.Weight(e.From, e.To)
		out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: float64(w)})
	}

	return out
}

// collect drains a sequence into a slice.
func collect(seq iter.Seq[int]) []int {
	var out []int
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// rawGraph is a Graph with arbitrary, unvalidated contents.
type rawGraph struct {
	n     int
	edges []graph.Edge[uint]
}

func (r rawGraph) VertexCount() int { return r.n }

func (r rawGraph) Edges() iter.Seq[graph.Edge[uint]] {
	return func(yield func(graph.Edge[uint]) bool) {
		for _, e := range r.edges {
			if !yield(e) {
				return
			}
		}
	}
}
