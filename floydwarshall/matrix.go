package floydwarshall

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/apsp/graph"
)

// Matrix is the frozen result of Compute: an n×n distance table and the
// matching intermediate-vertex table, both row-major.
//
// All methods are read-only and safe for concurrent use.
type Matrix[W graph.Weight] struct {
	n    int   // vertex count
	dist []W   // dist[i*n+j] = shortest i→j length, Infinity if none
	via  []int // via[i*n+j]  = last improving intermediate vertex, or noVia
}

// Len returns the number of vertices the matrix was built for.
func (m *Matrix[W]) Len() int {
	return m.n
}

// Infinity returns the sentinel PathLen reports for unreachable pairs.
func (m *Matrix[W]) Infinity() W {
	return graph.Infinity[W]()
}

// index returns the flat offset of (i, j) or panics on misuse.
func (m *Matrix[W]) index(op string, i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Errorf("floydwarshall: %s(%d,%d) with %d vertices: %w", op, i, j, m.n, ErrVertexOutOfRange))
	}

	return i*m.n + j
}

// PathLen returns the length of a shortest path from i to j: 0 when i == j,
// Infinity() when j is unreachable from i.
//
// Panics with an error wrapping ErrVertexOutOfRange if i or j is outside [0, Len()).
// Complexity: O(1).
func (m *Matrix[W]) PathLen(i, j int) W {
	return m.dist[m.index("PathLen", i, j)]
}

// PathExists reports whether j is reachable from i, i.e. PathLen(i, j) < Infinity().
//
// Panics with an error wrapping ErrVertexOutOfRange if i or j is outside [0, Len()).
// Complexity: O(1).
func (m *Matrix[W]) PathExists(i, j int) bool {
	return m.dist[m.index("PathExists", i, j)] < graph.Infinity[W]()
}

// segment is one pending (from, to) sub-path on the reconstruction stack.
type segment struct {
	from, to int
}

// PathIter returns a lazy sequence reconstructing one shortest path between
// i and j.
//
// The walk always runs from lo = min(i, j) to hi = max(i, j) and yields the
// vertices after lo, ending with hi. When i > j the sequence is therefore in
// destination→source order; reverse it for source-first order, or use Path.
// The sequence is empty when i == j or when no path exists.
//
// Each range over the returned sequence restarts the walk. Reconstruction
// uses an explicit stack bounded by the vertex count.
//
// Panics with an error wrapping ErrVertexOutOfRange if i or j is outside [0, Len()).
// Complexity: O(path length) per full iteration.
func (m *Matrix[W]) PathIter(i, j int) iter.Seq[int] {
	idx := m.index("PathIter", i, j)
	lo, hi := min(i, j), max(i, j)

	return func(yield func(int) bool) {
		if i == j || m.dist[idx] == graph.Infinity[W]() {
			return
		}

		stack := make([]segment, 1, 8)
		stack[0] = segment{from: lo, to: hi}

		var (
			s segment
			k int
		)
		for len(stack) > 0 {
			s = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			k = m.via[s.from*m.n+s.to]
			if k == noVia { // direct edge: emit the far end
				if !yield(s.to) {
					return
				}
				continue
			}
			// from→k must be emitted before k→to, so push it last.
			stack = append(stack, segment{from: k, to: s.to}, segment{from: s.from, to: k})
		}
	}
}

// Path returns the full vertex list of a shortest path from i to j, both
// endpoints included and in source→destination order.
//
// Returns []int{i} when i == j and nil when no path exists.
//
// Panics with an error wrapping ErrVertexOutOfRange if i or j is outside [0, Len()).
// Complexity: O(path length).
func (m *Matrix[W]) Path(i, j int) []int {
	if m.dist[m.index("Path", i, j)] == graph.Infinity[W]() {
		return nil
	}
	if i == j {
		return []int{i}
	}

	path := make([]int, 0, 8)
	path = append(path, min(i, j))
	for v := range m.PathIter(i, j) {
		path = append(path, v)
	}
	if i > j {
		slices.Reverse(path)
	}

	return path
}

// String renders the distance table for debugging, with "∞" for
// unreachable pairs. The format is not stable.
func (m *Matrix[W]) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', tabwriter.AlignRight)

	inf := graph.Infinity[W]()
	var i, j int

	fmt.Fprint(tw, "\t")
	for j = 0; j < m.n; j++ {
		fmt.Fprintf(tw, "%d\t", j)
	}
	fmt.Fprintln(tw)

	for i = 0; i < m.n; i++ {
		fmt.Fprintf(tw, "%d\t", i)
		for j = 0; j < m.n; j++ {
			if d := m.dist[i*m.n+j]; d == inf {
				fmt.Fprint(tw, "∞\t")
			} else {
				fmt.Fprint(tw, strconv.FormatUint(uint64(d), 10)+"\t")
			}
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()

	return sb.String()
}
