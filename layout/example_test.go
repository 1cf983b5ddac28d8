package layout_test

import (
	"fmt"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/layout"
)

// ExampleRun builds a 4-cycle, asks for a single-stack layout, and runs
// only the lower-bound and encoding phases (no solver available in this
// example), so the outcome is Indeterminate rather than Sat or Unsat.
func ExampleRun() {
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

	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(1), glayout.WithSkipSolve())
	out, err := layout.Run(g, p)
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Status)
	// Output: INDETERMINATE
}
