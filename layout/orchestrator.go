package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// Status is the three-valued outcome of a run.
type Status int

const (
	// Sat means a satisfying assignment was read back and decoded.
	Sat Status = iota
	// Unsat means the lower bound ruled the budget out, or the solver
	// reported UNSATISFIABLE.
	Unsat
	// Indeterminate means the run stopped before a solver result was
	// available (emit-only mode): not an error.
	Indeterminate
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	case Indeterminate:
		return "INDETERMINATE"
	default:
		return "UNKNOWN"
	}
}

// Outcome is Run's result: a status and, only when Status is Sat, the
// decoded Layout.
type Outcome struct {
	Status Status
	Layout *Layout
}

// Run executes the full pipeline: lower-bound check, structural +
// feature encoding, symmetry breaking, custom constraints, DIMACS
// emit, and — unless the caller asked to stop early — DIMACS consume
// and decode.
func Run(g *glayout.Graph, p *glayout.Params) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, wrapf(KindParameter, "run: %w", err)
	}

	lb := lowerBound(g, p)
	ub := upperBoundPages(p)
	if lb > ub {
		return Outcome{Status: Unsat}, nil
	}

	if p.SkipSAT {
		return Outcome{Status: Indeterminate}, nil
	}

	m := satmodel.NewModel()
	if err := encodeFlavor(m, g, p); err != nil {
		return Outcome{}, err
	}
	if err := encodeFeatures(m, g, p); err != nil {
		return Outcome{}, err
	}
	if err := encodeSymmetryBreaker(m, g, p); err != nil {
		return Outcome{}, err
	}
	if err := encodeConstraints(m, g, p); err != nil {
		return Outcome{}, err
	}

	if p.ModelFile != "" {
		if err := m.WriteDIMACSFile(p.ModelFile); err != nil {
			return Outcome{}, wrapf(KindIO, "run: write model: %w", err)
		}
	}

	if p.SkipSolve || p.ResultFile == "" {
		return Outcome{Status: Indeterminate}, nil
	}

	result, err := satmodel.ReadDIMACSResultFile(p.ResultFile, m.VarCount())
	if err != nil {
		return Outcome{}, wrapf(KindIO, "run: read result: %w", err)
	}
	if !result.Satisfiable() {
		return Outcome{Status: Unsat}, nil
	}

	layout, err := decode(m, result, g, p)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Status: Sat, Layout: layout}, nil
}

// encodeFeatures dispatches the optional feature encoders: trees, then
// dispersible, adjacency, directed, and local-l, each gated on its own
// parameter.
func encodeFeatures(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	pageCount := p.PageBudget()

	if p.Trees {
		if err := encodeTrees(m, g, pageCount); err != nil {
			return err
		}
	}
	if p.Dispersible {
		if err := encodeDispersible(m, g); err != nil {
			return err
		}
	}
	if p.Adjacent {
		if err := encodeAdjacency(m, g.N()); err != nil {
			return err
		}
	}
	if p.Directed {
		if err := encodeDirected(m, g); err != nil {
			return err
		}
	}
	if p.Local > 0 {
		if err := encodeLocal(m, g, pageCount, p.Local); err != nil {
			return err
		}
	}

	return nil
}
