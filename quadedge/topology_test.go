package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/delaunay2d/quadedge"
)

// triangle builds a minimal 3-point, 6-half-edge topology by hand,
// without going through the delaunay package's base case, so these
// tests exercise only the quadedge primitives.
func triangle(t *testing.T) (*quadedge.Topology, [3]quadedge.HalfEdgeID) {
	t.Helper()

	topo := quadedge.NewTopology(3)
	p0 := topo.AllocPoint(0, 0, 0)
	p1 := topo.AllocPoint(1, 1, 0)
	p2 := topo.AllocPoint(2, 0, 1)

	d0 := topo.AllocHalfEdge()
	d1 := topo.AllocHalfEdge()
	d2 := topo.AllocHalfEdge()
	d0a := topo.AllocHalfEdge()
	d1a := topo.AllocHalfEdge()
	d2a := topo.AllocHalfEdge()

	topo.SetVertex(d0, p0)
	topo.SetVertex(d1, p1)
	topo.SetVertex(d2, p2)
	topo.SetVertex(d0a, p1)
	topo.SetVertex(d1a, p2)
	topo.SetVertex(d2a, p0)

	topo.SetAlpha(d0, d0a)
	topo.SetAlpha(d0a, d0)
	topo.SetAlpha(d1, d1a)
	topo.SetAlpha(d1a, d1)
	topo.SetAlpha(d2, d2a)
	topo.SetAlpha(d2a, d2)

	// sigma/amgis rings: every half-edge is put in a ring of its own, so
	// sigma and amgis both map each half-edge to itself.
	topo.SetSigma(d0, d0)
	topo.SetAmgis(d0, d0)
	topo.SetSigma(d1, d1)
	topo.SetAmgis(d1, d1)
	topo.SetSigma(d2, d2)
	topo.SetAmgis(d2, d2)
	topo.SetSigma(d0a, d0a)
	topo.SetAmgis(d0a, d0a)
	topo.SetSigma(d1a, d1a)
	topo.SetAmgis(d1a, d1a)
	topo.SetSigma(d2a, d2a)
	topo.SetAmgis(d2a, d2a)

	topo.SetPointHe(p0, d0)
	topo.SetPointHe(p1, d1)
	topo.SetPointHe(p2, d2)

	return topo, [3]quadedge.HalfEdgeID{d0, d1, d2}
}

func TestAlphaInvolution(t *testing.T) {
	topo, ds := triangle(t)
	for _, d := range ds {
		assert.Equal(t, d, topo.AlphaOf(topo.AlphaOf(d)), "alpha(alpha(h)) must equal h")
	}
}

func TestSigmaAmgisInverse(t *testing.T) {
	topo, ds := triangle(t)
	for _, d := range ds {
		assert.Equal(t, d, topo.AmgisOf(topo.SigmaOf(d)), "amgis(sigma(h)) must equal h")
		assert.Equal(t, d, topo.SigmaOf(topo.AmgisOf(d)), "sigma(amgis(h)) must equal h")
	}
}

func TestPointIdxPreserved(t *testing.T) {
	topo := quadedge.NewTopology(1)
	p := topo.AllocPoint(7, 3.5, -1.5)
	assert.Equal(t, 7, topo.PointIdx(p))
	assert.Equal(t, 3.5, topo.PointCoord(p).X)
}

func TestRemoveEdgeUnlinksBothHalfEdges(t *testing.T) {
	topo, ds := triangle(t)
	d0, d1, d2 := ds[0], ds[1], ds[2]

	// d1's sigma and d0's amgis are rewired below, but d2 and its twin
	// stay alone in their rings, so removing d2's edge empties the ring
	// that p2's outgoing half-edge belongs to.
	d1a := topo.AlphaOf(d1)
	topo.SetSigma(d1, d0)
	topo.SetAmgis(d0, d1)
	topo.SetSigma(d1a, d1a)
	topo.SetAmgis(d1a, d1a)

	topo.RemoveEdge(d2)

	// d2's vertex no longer points at the freed half-edge.
	assert.NotEqual(t, d2, topo.PointHe(topo.Vertex(d2)))
}

func TestSpliceAfterLinksBothRings(t *testing.T) {
	topo, ds := triangle(t)
	d0, d1 := ds[0], ds[1]

	newGd := topo.SpliceAfter(d0, d1)
	newDd := topo.AlphaOf(newGd)

	assert.Equal(t, topo.Vertex(d0), topo.Vertex(newGd))
	assert.Equal(t, topo.Vertex(d1), topo.Vertex(newDd))

	// newGd was spliced in right after d0 in d0's ring.
	assert.Equal(t, newGd, topo.SigmaOf(d0))
	assert.Equal(t, d0, topo.AmgisOf(newGd))

	// newDd was spliced in right before d1 in d1's ring.
	assert.Equal(t, d1, topo.SigmaOf(newDd))
	assert.Equal(t, newDd, topo.AmgisOf(d1))
}

func TestSpliceBeforeLinksBothRings(t *testing.T) {
	topo, ds := triangle(t)
	d0, d1 := ds[0], ds[1]

	newLeft := topo.SpliceBefore(d0, d1)
	newRight := topo.AlphaOf(newLeft)

	assert.Equal(t, topo.Vertex(d0), topo.Vertex(newLeft))
	assert.Equal(t, topo.Vertex(d1), topo.Vertex(newRight))

	// both new ends were spliced in right before d0/d1 in their rings.
	assert.Equal(t, d0, topo.SigmaOf(newLeft))
	assert.Equal(t, newLeft, topo.AmgisOf(d0))
	assert.Equal(t, d1, topo.SigmaOf(newRight))
	assert.Equal(t, newRight, topo.AmgisOf(d1))
}

func TestReleaseClearsRings(t *testing.T) {
	topo, _ := triangle(t)
	assert.NotPanics(t, func() { topo.Release() })
}
