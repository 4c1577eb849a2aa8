package graph

import (
	"fmt"
	"math"

	gonum "gonum.org/v1/gonum/graph"
)

// FromGonum copies a gonum undirected weighted graph into an Undirected[W].
//
// Node IDs must be exactly 0..N-1 (any order); gonum IDs are kept as vertex
// indices, so results can be mapped back without a lookup table. Each
// adjacent pair is copied once with the weight reported by g.Weight.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNonDenseIDs if some node ID falls outside [0, N).
//   - ErrBadWeight if a weight is negative, NaN, fractional or does not fit
//     below Infinity[W]().
//
// Complexity: O(V + E) gonum calls.
func FromGonum[W Weight](g gonum.WeightedUndirected) (*Undirected[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := gonum.NodesOf(g.Nodes())
	n := len(nodes)

	var id int64
	for _, node := range nodes {
		id = node.ID()
		if id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("FromGonum: node %d with %d nodes: %w", id, n, ErrNonDenseIDs)
		}
	}

	out, _ := NewUndirected[W](n) // n >= 0

	var (
		uid, vid int64
		raw      float64
		w        W
		ok       bool
		err      error
	)
	for _, u := range nodes {
		uid = u.ID()
		for _, v := range gonum.NodesOf(g.From(uid)) {
			vid = v.ID()
			if vid <= uid { // each undirected pair once; skip self-loops
				continue
			}
			if raw, ok = g.Weight(uid, vid); !ok {
				continue
			}
			if w, err = weightFromFloat[W](raw); err != nil {
				return nil, fmt.Errorf("FromGonum: edge %d-%d: %w", uid, vid, err)
			}
			if err = out.AddEdge(int(uid), int(vid), w); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// weightFromFloat converts an exact, non-negative integral float to W.
func weightFromFloat[W Weight](f float64) (W, error) {
	if math.IsNaN(f) || f < 0 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v: %w", f, ErrBadWeight)
	}
	if f >= float64(Infinity[W]()) {
		return 0, fmt.Errorf("%v exceeds %d: %w", f, Infinity[W](), ErrBadWeight)
	}

	return W(f), nil
}
