package layout

import "github.com/spupyrev/bob/glayout"

// lowerBound returns the cheap closed-form page/track lower bound for
// the flavor, folding in the dispersible bound when that feature is
// requested. MIXED_PAGES has no flavor-specific bound.
func lowerBound(g *glayout.Graph, p *glayout.Params) int {
	var lb int
	switch p.Flavor {
	case glayout.Stack:
		lb = stackLowerBound(g, p)
	case glayout.Queue:
		lb = queueLowerBound(g, p)
	case glayout.Track:
		lb = trackLowerBound(g, p)
	case glayout.Mixed:
		lb = mixedLowerBound(g, p)
	}

	if p.Dispersible {
		if d := dispersibleLowerBound(g); d > lb {
			lb = d
		}
	}

	return lb
}

// upperBoundPages returns the page (or track) budget the lower bound is
// checked against.
func upperBoundPages(p *glayout.Params) int {
	if p.Flavor == glayout.Track {
		return p.Tracks
	}

	return p.PageBudget()
}

func dispersibleLowerBound(g *glayout.Graph) int {
	degree := make([]int, g.N())
	lb := 0
	for _, e := range g.Edges() {
		degree[e.U]++
		degree[e.V]++
		if degree[e.U] > lb {
			lb = degree[e.U]
		}
		if degree[e.V] > lb {
			lb = degree[e.V]
		}
	}

	return lb
}

func stackLowerBound(g *glayout.Graph, _ *glayout.Params) int {
	n := g.N()
	m := g.EdgeCount()
	denom := n - 3
	if denom < 1 {
		denom = 1
	}
	lb := ceilDiv(m-4, denom)
	if lb < 1 {
		lb = 1
	}

	return lb
}

func queueLowerBound(g *glayout.Graph, p *glayout.Params) int {
	n := g.N()
	m := g.EdgeCount()
	lb := p.Queues + 1
	for k := 0; k <= p.Queues; k++ {
		maxEdges := 2*k*n - k*(2*k+1)
		if maxEdges >= m {
			lb = k
			break
		}
	}

	return lb
}

func trackLowerBound(g *glayout.Graph, p *glayout.Params) int {
	n := g.N()
	m := g.EdgeCount()
	for k := 1; k <= p.Tracks; k++ {
		maxEdges := (k-1)*n - k*(k-1)/2
		if maxEdges >= m {
			return k
		}
	}

	return p.Tracks + 1
}

func mixedLowerBound(g *glayout.Graph, p *glayout.Params) int {
	n := g.N()
	m := g.EdgeCount()
	capacity := (p.Stacks+1)*n - 3*p.Stacks + 2*p.Queues*n - p.Queues*(2*p.Queues+1)
	if capacity >= m {
		return 2
	}

	return p.Stacks + p.Queues + 1
}

// ceilDiv returns ceil(a/b) for a positive divisor b: the more
// conservative bound than plain truncating division when a > 0.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}

	return (a + b - 1) / b
}
