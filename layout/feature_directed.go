package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeDirected turns each edge's stored direction flag into a unit
// order clause: direction true means U must precede V in the spine
// order, direction false means V must precede U.
func encodeDirected(m *satmodel.Model, g *glayout.Graph) error {
	edges := g.Edges()
	for e, edge := range edges {
		dir, ok := g.Direction(e)
		if !ok {
			return wrapf(KindInput, "directed: edge %d has no direction", e)
		}

		u, v := edge.U, edge.V
		if !dir {
			u, v = v, u
		}
		lit, err := m.Rel(u, v, true)
		if err != nil {
			return wrapf(KindInternal, "directed: %w", err)
		}
		m.AddClause(satmodel.NewClause(lit))
	}

	return nil
}
