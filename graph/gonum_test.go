package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/apsp/graph"
)

func TestFromGonum_CopiesEachEdgeOnce(t *testing.T) {
	src := simple.NewWeightedUndirectedGraph(0, 0)
	for i := int64(0); i < 4; i++ {
		src.AddNode(simple.Node(i))
	}
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 2})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(1), W: 5})

	g, err := graph.FromGonum[uint16](src)
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount(), "isolated node 3 must be kept")
	require.Equal(t, 2, g.EdgeCount())

	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, uint16(5), w)
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := graph.FromGonum[uint](nil)
	require.ErrorIs(t, err, graph.ErrNilGraph)

	sparse := simple.NewWeightedUndirectedGraph(0, 0)
	sparse.AddNode(simple.Node(0))
	sparse.AddNode(simple.Node(5))
	_, err = graph.FromGonum[uint](sparse)
	require.ErrorIs(t, err, graph.ErrNonDenseIDs)

	weights := []float64{-1, 1.5, 256}
	for _, w := range weights {
		bad := simple.NewWeightedUndirectedGraph(0, 0)
		bad.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: w})
		_, err = graph.FromGonum[uint8](bad)
		require.ErrorIs(t, err, graph.ErrBadWeight, "weight %v", w)
	}
}
