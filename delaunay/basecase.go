package delaunay

import (
	"github.com/arl/delaunay2d/predicate"
	"github.com/arl/delaunay2d/quadedge"
)

// subTri is one sub-triangulation under construction: the span of sorted
// point positions it covers, and the two half-edges the merge step hinges
// the next join on.
type subTri struct {
	leftmostHe, rightmostHe quadedge.HalfEdgeID
	start, end              int
}

func classifyPts(topo *quadedge.Topology, s, e, p quadedge.PointID) predicate.Orientation {
	return predicate.Classify(topo.PointCoord(s), topo.PointCoord(e), topo.PointCoord(p))
}

func classifyHe(topo *quadedge.Topology, h quadedge.HalfEdgeID, p quadedge.PointID) predicate.Orientation {
	return classifyPts(topo, topo.Vertex(h), topo.Vertex(topo.AlphaOf(h)), p)
}

func inCirclePts(topo *quadedge.Topology, a, b, c, p quadedge.PointID) predicate.InCircleResult {
	return predicate.InCircle(topo.PointCoord(a), topo.PointCoord(b), topo.PointCoord(c), topo.PointCoord(p))
}

// baseCaseSeg builds the two-point sub-triangulation: a single undirected
// edge between the points at sorted positions start and start+1.
func baseCaseSeg(topo *quadedge.Topology, start int) subTri {
	pt0 := quadedge.PointID(start)
	pt1 := quadedge.PointID(start + 1)

	d0 := topo.AllocHalfEdge()
	d1 := topo.AllocHalfEdge()

	topo.SetVertex(d0, pt0)
	topo.SetVertex(d1, pt1)

	topo.SetSigma(d0, d0)
	topo.SetAmgis(d0, d0)
	topo.SetSigma(d1, d1)
	topo.SetAmgis(d1, d1)

	topo.SetAlpha(d0, d1)
	topo.SetAlpha(d1, d0)

	topo.SetPointHe(pt0, d0)
	topo.SetPointHe(pt1, d1)

	return subTri{leftmostHe: d0, rightmostHe: d1, start: start, end: start + 1}
}

// baseCaseTri builds the three-point sub-triangulation covering sorted
// positions start..start+2. The two vertex orderings below produce the
// same six-half-edge wheel; which one applies depends only on whether the
// middle point (by sort order) falls to the left or right of the segment
// joining the other two.
func baseCaseTri(topo *quadedge.Topology, start int) subTri {
	pt0 := quadedge.PointID(start)
	pt1 := quadedge.PointID(start + 1)
	pt2 := quadedge.PointID(start + 2)

	d0 := topo.AllocHalfEdge()
	d1 := topo.AllocHalfEdge()
	d2 := topo.AllocHalfEdge()
	d3 := topo.AllocHalfEdge()
	d4 := topo.AllocHalfEdge()
	d5 := topo.AllocHalfEdge()

	var rightmost quadedge.HalfEdgeID

	if classifyPts(topo, pt0, pt2, pt1) == predicate.Left {
		topo.SetVertex(d0, pt0)
		topo.SetVertex(d1, pt2)
		topo.SetVertex(d2, pt1)
		topo.SetVertex(d3, pt2)
		topo.SetVertex(d4, pt1)
		topo.SetVertex(d5, pt0)

		topo.SetPointHe(pt0, d0)
		topo.SetPointHe(pt1, d2)
		topo.SetPointHe(pt2, d1)

		rightmost = d1
	} else {
		topo.SetVertex(d0, pt0)
		topo.SetVertex(d1, pt1)
		topo.SetVertex(d2, pt2)
		topo.SetVertex(d3, pt1)
		topo.SetVertex(d4, pt2)
		topo.SetVertex(d5, pt0)

		topo.SetPointHe(pt0, d0)
		topo.SetPointHe(pt1, d1)
		topo.SetPointHe(pt2, d2)

		rightmost = d2
	}

	topo.SetSigma(d0, d5)
	topo.SetAmgis(d0, d5)
	topo.SetSigma(d1, d3)
	topo.SetAmgis(d1, d3)
	topo.SetSigma(d2, d4)
	topo.SetAmgis(d2, d4)
	topo.SetSigma(d3, d1)
	topo.SetAmgis(d3, d1)
	topo.SetSigma(d4, d2)
	topo.SetAmgis(d4, d2)
	topo.SetSigma(d5, d0)
	topo.SetAmgis(d5, d0)

	topo.SetAlpha(d0, d3)
	topo.SetAlpha(d3, d0)
	topo.SetAlpha(d1, d4)
	topo.SetAlpha(d4, d1)
	topo.SetAlpha(d2, d5)
	topo.SetAlpha(d5, d2)

	return subTri{leftmostHe: d0, rightmostHe: rightmost, start: start, end: start + 2}
}
