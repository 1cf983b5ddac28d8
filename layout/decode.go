package layout

import (
	"sort"
	"strconv"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// Layout is the decoded, solver-verified embedding.
type Layout struct {
	// Order[pos] is the vertex placed at spine position pos.
	Order []int
	// Pages[e] lists the pages edge e occupies, ascending.
	Pages [][]int
	// Tracks[v] is vertex v's track (TRACK flavor only, else nil).
	Tracks []int
}

// decode reconstructs a Layout from a satisfying assignment, translating
// solver literals back into spine positions, page assignments, and (for
// the TRACK flavor) per-vertex tracks.
func decode(m *satmodel.Model, result *satmodel.Result, g *glayout.Graph, p *glayout.Params) (*Layout, error) {
	order, err := decodeOrder(m, result, g.N())
	if err != nil {
		return nil, err
	}

	pages, err := decodePages(m, result, g, p)
	if err != nil {
		return nil, err
	}

	var tracks []int
	if p.Flavor == glayout.Track {
		tracks, err = decodeTracks(m, result, g, p.Tracks)
		if err != nil {
			return nil, err
		}
	}

	return &Layout{Order: order, Pages: pages, Tracks: tracks}, nil
}

func decodeOrder(m *satmodel.Model, result *satmodel.Result, n int) ([]int, error) {
	order := make([]int, n)
	filled := make([]bool, n)

	for i := 0; i < n; i++ {
		count := 0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			lit, err := m.Rel(i, j, true)
			if err != nil {
				return nil, wrapf(KindInternal, "decode order: %w", err)
			}
			v, err := result.Lit(lit)
			if err != nil {
				return nil, wrapf(KindIO, "decode order: %w", err)
			}
			if v {
				count++
			}
		}
		pos := n - 1 - count
		if pos < 0 || pos >= n || filled[pos] {
			return nil, wrapf(KindInternal, "decode order: position %d for vertex %d: %w", pos, i, ErrDecodeOrder)
		}
		filled[pos] = true
		order[pos] = i
	}

	return order, nil
}

func decodePages(m *satmodel.Model, result *satmodel.Result, g *glayout.Graph, p *glayout.Params) ([][]int, error) {
	pageCount := p.PageBudget()
	edges := g.Edges()
	pages := make([][]int, len(edges))

	for e := range edges {
		var occupied []int
		for page := 0; page < pageCount; page++ {
			lit, err := m.Page(e, page, true)
			if err != nil {
				return nil, wrapf(KindInternal, "decode pages: %w", err)
			}
			v, err := result.Lit(lit)
			if err != nil {
				return nil, wrapf(KindIO, "decode pages: %w", err)
			}
			if v {
				occupied = append(occupied, page)
			}
		}

		multi := g.Constraints().IsMultiPage(e)
		if !multi && len(occupied) != 1 {
			return nil, wrapf(KindInternal, "decode pages: edge %d has %d pages: %w", e, len(occupied), ErrDecodePage)
		}
		if multi && len(occupied) < 1 {
			return nil, wrapf(KindInternal, "decode pages: edge %d has no page: %w", e, ErrDecodePage)
		}
		pages[e] = occupied
	}

	return pages, nil
}

// decodeTracks reads each vertex's unique track assignment, then verifies
// that every edge spans two distinct tracks: a vertex must have exactly
// one track, and no edge may have both endpoints on the same track.
func decodeTracks(m *satmodel.Model, result *satmodel.Result, g *glayout.Graph, trackCount int) ([]int, error) {
	n := g.N()
	tracks := make([]int, n)

	for v := 0; v < n; v++ {
		found := -1
		for t := 0; t < trackCount; t++ {
			lit, err := m.Track(v, t, true)
			if err != nil {
				return nil, wrapf(KindInternal, "decode tracks: %w", err)
			}
			val, err := result.Lit(lit)
			if err != nil {
				return nil, wrapf(KindIO, "decode tracks: %w", err)
			}
			if val {
				if found != -1 {
					return nil, wrapf(KindInternal, "decode tracks: vertex %d: %w", v, ErrDecodeTrack)
				}
				found = t
			}
		}
		if found == -1 {
			return nil, wrapf(KindInternal, "decode tracks: vertex %d: %w", v, ErrDecodeTrack)
		}
		tracks[v] = found
	}

	for _, e := range g.Edges() {
		if tracks[e.U] == tracks[e.V] {
			return nil, wrapf(KindInternal, "decode tracks: edge (%d, %d) shares a track: %w", e.U, e.V, ErrDecodeTrack)
		}
	}

	return tracks, nil
}

// PagesAsLabels renders, for each page, the sorted labels of the edges
// it contains (falling back to "u-v" when no label is set).
func (l *Layout) PagesAsLabels(g *glayout.Graph, pageCount int) [][]string {
	out := make([][]string, pageCount)
	edges := g.Edges()
	for e, pageList := range l.Pages {
		label := edgeLabel(g, edges[e])
		for _, page := range pageList {
			out[page] = append(out[page], label)
		}
	}
	for page := range out {
		sort.Strings(out[page])
	}

	return out
}

func edgeLabel(g *glayout.Graph, e glayout.Edge) string {
	u, v := g.Label(e.U), g.Label(e.V)
	if u == "" {
		u = strconv.Itoa(e.U)
	}
	if v == "" {
		v = strconv.Itoa(e.V)
	}

	return u + "-" + v
}
