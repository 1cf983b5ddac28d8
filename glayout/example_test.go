package glayout_test

import (
	"fmt"

	"github.com/spupyrev/bob/glayout"
)

// ExampleBuilder builds a 4-cycle and reports its basic shape.
func ExampleBuilder() {
	b, err := glayout.NewBuilder(4)
	if err != nil {
		panic(err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if _, err := b.AddEdge(e[0], e[1]); err != nil {
			panic(err)
		}
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(g.N(), g.EdgeCount())
	// Output: 4 4
}

// ExampleParams_Validate shows a STACK layout being rejected for lacking
// a positive page budget.
func ExampleParams_Validate() {
	p := glayout.NewParams(glayout.Stack)
	err := p.Validate()
	fmt.Println(err != nil)
	// Output: true
}
