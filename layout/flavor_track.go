package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeTrack builds the order, page (a single stack-style page), and
// track variables, then forbids X-crosses between non-adjacent edges
// and asserts that every edge spans two distinct tracks.
func encodeTrack(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	if err := encodeOrder(m, g.N()); err != nil {
		return err
	}
	if err := encodePages(m, g, p.Stacks); err != nil {
		return err
	}
	if err := encodeTracks(m, g.N(), p.Tracks); err != nil {
		return err
	}

	edges := g.Edges()
	for index := range edges {
		if err := encodeTrackEdge(m, edges, index, p); err != nil {
			return err
		}
	}

	return nil
}

func encodeTrackEdge(m *satmodel.Model, edges []glayout.Edge, index int, p *glayout.Params) error {
	e1n1, e1n2 := edges[index].U, edges[index].V

	// every edge spans two tracks
	st, err := m.SameTrack(e1n1, e1n2, false)
	if err != nil {
		return wrapf(KindInternal, "track: %w", err)
	}
	m.AddClause(satmodel.NewClause(st))

	if p.Stacks == 1 {
		pg, err := m.Page(index, 0, true)
		if err != nil {
			return wrapf(KindInternal, "track: %w", err)
		}
		m.AddClause(satmodel.NewClause(pg))
	}

	if p.Span > 0 {
		if err := encodeTrackSpan(m, e1n1, e1n2, p.Tracks, p.Span); err != nil {
			return err
		}
	}

	for i := 0; i < index; i++ {
		e2n1, e2n2 := edges[i].U, edges[i].V
		if adjacent(e1n1, e1n2, e2n1, e2n2) {
			continue
		}

		tuples := [8][4]int{
			{e1n1, e1n2, e2n1, e2n2},
			{e1n1, e1n2, e2n2, e2n1},
			{e1n2, e1n1, e2n1, e2n2},
			{e1n2, e1n1, e2n2, e2n1},
			{e2n1, e2n2, e1n1, e1n2},
			{e2n1, e2n2, e1n2, e1n1},
			{e2n2, e2n1, e1n1, e1n2},
			{e2n2, e2n1, e1n2, e1n1},
		}
		for _, t := range tuples {
			c, err := xClause(m, i, index, t[0], t[1], t[2], t[3])
			if err != nil {
				return wrapf(KindInternal, "track: %w", err)
			}
			m.AddClause(c)
		}
	}

	return nil
}

// encodeTrackSpan forbids an edge's endpoints from landing on a track
// pair further apart than span, in both orientations.
func encodeTrackSpan(m *satmodel.Model, u, v, trackCount, span int) error {
	for i := 0; i < trackCount; i++ {
		for j := 0; j < trackCount; j++ {
			if abs(i-j) <= span {
				continue
			}
			tu, err := m.Track(u, i, false)
			if err != nil {
				return wrapf(KindInternal, "track span: %w", err)
			}
			tv, err := m.Track(v, j, false)
			if err != nil {
				return wrapf(KindInternal, "track span: %w", err)
			}
			m.AddClause(satmodel.NewClause(tu, tv))

			tu2, err := m.Track(v, i, false)
			if err != nil {
				return wrapf(KindInternal, "track span: %w", err)
			}
			tv2, err := m.Track(u, j, false)
			if err != nil {
				return wrapf(KindInternal, "track span: %w", err)
			}
			m.AddClause(satmodel.NewClause(tu2, tv2))
		}
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
