package satmodel_test

import (
	"fmt"
	"strings"

	"github.com/spupyrev/bob/satmodel"
)

// ExampleModel demonstrates allocating a handful of variables, asserting
// a unit clause, and rendering the model as DIMACS CNF.
func ExampleModel() {
	m := satmodel.NewModel()
	if err := m.AddRel(0, 1); err != nil {
		panic(err)
	}
	rel, err := m.Rel(0, 1, true)
	if err != nil {
		panic(err)
	}
	m.AddClause(satmodel.NewClause(rel))

	var sb strings.Builder
	if err := m.WriteDIMACS(&sb); err != nil {
		panic(err)
	}

	fmt.Println(strings.TrimSpace(sb.String()))
	// Output:
	// p cnf 1 1
	// 1 0
}
