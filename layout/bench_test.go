package layout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// BenchmarkCombinations measures subset enumeration at the largest degree
// the local-l guard still permits.
func BenchmarkCombinations(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := combinations(40, 3); err != nil {
			b.Fatal(err)
		}
	}
}

// buildRandomGraph constructs an undirected graph on n vertices with
// roughly p probability of an edge between any unordered pair, mirroring
// the teacher's bench fixtures (deterministic seed for reproducibility).
func buildRandomGraph(b *testing.B, n int, p float64, seed int64) *glayout.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	builder, err := glayout.NewBuilder(n)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				if _, err := builder.AddEdge(u, v); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	g, err := builder.Build()
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkEncodeStack measures clause-emission cost for the STACK flavor
// across increasing vertex counts.
func BenchmarkEncodeStack(b *testing.B) {
	for _, n := range []int{8, 16, 32} {
		n := n
		g := buildRandomGraph(b, n, 0.3, 42)
		p := glayout.NewParams(glayout.Stack, glayout.WithStacks(2))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := satmodel.NewModel()
				if err := encodeStack(m, g, p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
