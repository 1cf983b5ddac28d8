package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// adjacent reports whether edges (a1,a2) and (b1,b2) share an endpoint;
// adjacent edge pairs can never cross or nest, so they are exempt from
// the forbidden-pattern clauses below.
func adjacent(a1, a2, b1, b2 int) bool {
	return a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2
}

// crossClause builds sp(e1,e2,-) v rel(a,b,-) v rel(b,c,-) v rel(c,d,-):
// it forbids the spine pattern a<b<c<d whenever e1 and e2 share a page.
func crossClause(m *satmodel.Model, e1, e2, a, b, c, d int) (satmodel.Clause, error) {
	sp, err := m.SamePage(e1, e2, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	rab, err := m.Rel(a, b, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	rbc, err := m.Rel(b, c, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	rcd, err := m.Rel(c, d, false)
	if err != nil {
		return satmodel.Clause{}, err
	}

	return satmodel.NewClause(sp, rab, rbc, rcd), nil
}

// xClause builds sp(e1,e2,-) v st(x,v,-) v st(y,u,-) v rel(x,v,-) v
// rel(u,y,-): it forbids an X-cross between two track-spanning edges
// whenever they share a page.
func xClause(m *satmodel.Model, e1, e2, x, y, u, v int) (satmodel.Clause, error) {
	sp, err := m.SamePage(e1, e2, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	sxv, err := m.SameTrack(x, v, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	syu, err := m.SameTrack(y, u, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	rxv, err := m.Rel(x, v, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	ruy, err := m.Rel(u, y, false)
	if err != nil {
		return satmodel.Clause{}, err
	}

	return satmodel.NewClause(sp, sxv, syu, rxv, ruy), nil
}

// encodeFlavor dispatches structural encoding to the flavor-specific
// encoder for the requested layout type.
func encodeFlavor(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	switch p.Flavor {
	case glayout.Stack:
		return encodeStack(m, g, p)
	case glayout.Queue:
		return encodeQueue(m, g, p)
	case glayout.Track:
		return encodeTrack(m, g, p)
	case glayout.Mixed:
		return encodeMixed(m, g, p)
	case glayout.MixedPages:
		return encodeMixedPages(m, g, p)
	default:
		return wrapf(KindParameter, "flavor: unknown flavor %d", int(p.Flavor))
	}
}
