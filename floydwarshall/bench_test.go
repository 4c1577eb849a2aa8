package floydwarshall_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// BenchmarkCompute measures the O(V³) sweep on random graphs of growing size,
// sequential and with one worker per CPU.
func BenchmarkCompute(b *testing.B) {
	for _, n := range []int{64, 128, 256} {
		g := randomGraph(b, int64(n), n, 0.1, 1000)

		b.Run(fmt.Sprintf("V=%d/seq", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = floydwarshall.Compute[uint](g)
			}
		})

		b.Run(fmt.Sprintf("V=%d/par", n), func(b *testing.B) {
			workers := floydwarshall.WithWorkers(runtime.GOMAXPROCS(0))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = floydwarshall.Compute[uint](g, workers)
			}
		})
	}
}

// BenchmarkPath measures reconstruction across a long chain.
func BenchmarkPath(b *testing.B) {
	const n = 512
	g := randomGraph(b, 7, n, 0, 1)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(v-1, v, 1)
	}
	m, _ := floydwarshall.Compute[uint](g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Path(n-1, 0)
	}
}
