package layout

import "github.com/spupyrev/bob/satmodel"

// encodeTracks creates track[(v,t)] for every vertex and every track in
// [0, trackCount), at-least-one/at-most-one-track clauses, the derived
// st[(v1,v2)] "same track" family (forward implication only), and
// asserts that track i precedes track j for i<j: a vertex on an earlier
// track precedes, on the spine, a vertex on a later track.
func encodeTracks(m *satmodel.Model, n, trackCount int) error {
	for v := 0; v < n; v++ {
		for t := 0; t < trackCount; t++ {
			if err := m.AddTrack(v, t); err != nil {
				return wrapf(KindInternal, "tracks: addTrack(%d, %d): %w", v, t, err)
			}
		}
	}

	for v := 0; v < n; v++ {
		lits := make([]satmodel.Lit, 0, trackCount)
		for t := 0; t < trackCount; t++ {
			l, err := m.Track(v, t, true)
			if err != nil {
				return wrapf(KindInternal, "tracks: %w", err)
			}
			lits = append(lits, l)
		}
		m.AddClause(satmodel.NewClause(lits...))
	}

	for v := 0; v < n; v++ {
		for t1 := 0; t1 < trackCount; t1++ {
			for t2 := t1 + 1; t2 < trackCount; t2++ {
				l1, err := m.Track(v, t1, false)
				if err != nil {
					return wrapf(KindInternal, "tracks: %w", err)
				}
				l2, err := m.Track(v, t2, false)
				if err != nil {
					return wrapf(KindInternal, "tracks: %w", err)
				}
				m.AddClause(satmodel.NewClause(l1, l2))
			}
		}
	}

	for v1 := 0; v1 < n; v1++ {
		for v2 := v1 + 1; v2 < n; v2++ {
			if err := m.AddSameTrack(v1, v2); err != nil {
				return wrapf(KindInternal, "tracks: addSameTrack(%d, %d): %w", v1, v2, err)
			}
			for t := 0; t < trackCount; t++ {
				l1, err := m.Track(v1, t, false)
				if err != nil {
					return wrapf(KindInternal, "tracks: %w", err)
				}
				l2, err := m.Track(v2, t, false)
				if err != nil {
					return wrapf(KindInternal, "tracks: %w", err)
				}
				st, err := m.SameTrack(v1, v2, true)
				if err != nil {
					return wrapf(KindInternal, "tracks: %w", err)
				}
				m.AddClause(satmodel.NewClause(l1, l2, st))
			}
		}
	}

	for i := 0; i < trackCount; i++ {
		for j := i + 1; j < trackCount; j++ {
			for v := 0; v < n; v++ {
				for u := 0; u < n; u++ {
					if v == u {
						continue
					}
					tu, err := m.Track(u, i, false)
					if err != nil {
						return wrapf(KindInternal, "tracks: %w", err)
					}
					tv, err := m.Track(v, j, false)
					if err != nil {
						return wrapf(KindInternal, "tracks: %w", err)
					}
					rel, err := m.Rel(u, v, true)
					if err != nil {
						return wrapf(KindInternal, "tracks: %w", err)
					}
					m.AddClause(satmodel.NewClause(tu, tv, rel))
				}
			}
		}
	}

	return nil
}
