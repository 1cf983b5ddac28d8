package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeDispersible forbids any two edges sharing an endpoint from
// occupying the same page, so every page's edge set is a matching.
func encodeDispersible(m *satmodel.Model, g *glayout.Graph) error {
	edges := g.Edges()
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if !adjacent(edges[i].U, edges[i].V, edges[j].U, edges[j].V) {
				continue
			}
			sp, err := m.SamePage(i, j, false)
			if err != nil {
				return wrapf(KindInternal, "dispersible: %w", err)
			}
			m.AddClause(satmodel.NewClause(sp))
		}
	}

	return nil
}
