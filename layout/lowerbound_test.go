package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/stretchr/testify/assert"
)

func TestStackLowerBoundAtLeastOne(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}})
	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(1))
	assert.GreaterOrEqual(t, stackLowerBound(g, p), 1)
}

func TestQueueLowerBoundSingleEdgeNeedsOnePage(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}})
	p := glayout.NewParams(glayout.Queue, glayout.WithQueues(2))
	assert.Equal(t, 1, queueLowerBound(g, p))
}

func TestTrackLowerBoundGrowsWithEdges(t *testing.T) {
	g := buildGraph(t, 5, cycleEdges(5))
	p := glayout.NewParams(glayout.Track, glayout.WithStacks(1), glayout.WithTracks(5))
	assert.Greater(t, trackLowerBound(g, p), 0)
}

func TestMixedLowerBoundDefault(t *testing.T) {
	g := buildGraph(t, 4, cycleEdges(4))
	p := glayout.NewParams(glayout.Mixed, glayout.WithStacks(2), glayout.WithQueues(2))
	assert.Equal(t, 2, mixedLowerBound(g, p))
}

func TestDispersibleLowerBoundIsMaxDegree(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	assert.Equal(t, 3, dispersibleLowerBound(g))
}

func TestLowerBoundCombinesDispersible(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(1), glayout.WithDispersible())
	assert.GreaterOrEqual(t, lowerBound(g, p), 3)
}

func TestUpperBoundPagesTrack(t *testing.T) {
	p := glayout.NewParams(glayout.Track, glayout.WithStacks(1), glayout.WithTracks(4))
	assert.Equal(t, 4, upperBoundPages(p))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 3, ceilDiv(7, 3))
	assert.Equal(t, 2, ceilDiv(6, 3))
	assert.Equal(t, 0, ceilDiv(-1, 3))
}
