package satmodel_test

import (
	"io"
	"testing"

	"github.com/spupyrev/bob/satmodel"
)

// BenchmarkWriteDIMACS measures DIMACS rendering cost for a model with a
// realistic number of order variables and unit clauses.
func BenchmarkWriteDIMACS(b *testing.B) {
	const n = 64
	m := satmodel.NewModel()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := m.AddRel(i, j); err != nil {
				b.Fatal(err)
			}
			lit, err := m.Rel(i, j, true)
			if err != nil {
				b.Fatal(err)
			}
			m.AddClause(satmodel.NewClause(lit))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.WriteDIMACS(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
