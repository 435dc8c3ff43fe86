package delaunay

import (
	"github.com/arl/delaunay2d/predicate"
	"github.com/arl/delaunay2d/quadedge"
)

// validLeft walks the candidates on the left side of base edge b,
// deleting any edge whose far endpoint falls strictly inside the
// circumcircle of the current candidate triangle, and returns the
// half-edge of the surviving candidate on that side.
//
// Three collinear points never trigger the deletion loop: the initial
// orientation test takes the "else" branch and the base edge itself is
// returned unchanged.
func validLeft(topo *quadedge.Topology, b quadedge.HalfEdgeID) quadedge.HalfEdgeID {
	g := topo.Vertex(b)
	dg := b

	d := topo.Vertex(topo.AlphaOf(b))
	b = topo.SigmaOf(b)

	u := topo.Vertex(topo.AlphaOf(b))
	du := topo.AlphaOf(b)

	v := topo.Vertex(topo.AlphaOf(topo.SigmaOf(b)))

	if classifyPts(topo, g, d, u) != predicate.Left {
		return dg
	}

	for v != d && inCirclePts(topo, g, d, u, v) == predicate.Inside {
		c := topo.SigmaOf(b)
		du = topo.AlphaOf(topo.SigmaOf(b))
		topo.RemoveEdge(b)
		b = c
		u = topo.Vertex(du)
		v = topo.Vertex(topo.AlphaOf(topo.SigmaOf(b)))
	}
	if v != d && inCirclePts(topo, g, d, u, v) == predicate.OnCircle {
		du = topo.AmgisOf(du)
		topo.RemoveEdge(b)
	}
	return du
}

// validRight is the mirror of validLeft, walking candidates on the right
// side of base edge b via amgis instead of sigma.
func validRight(topo *quadedge.Topology, b quadedge.HalfEdgeID) quadedge.HalfEdgeID {
	b = topo.AlphaOf(b)
	d := topo.Vertex(b)
	dd := b
	g := topo.Vertex(topo.AlphaOf(b))
	b = topo.AmgisOf(b)
	u := topo.Vertex(topo.AlphaOf(b))
	du := topo.AlphaOf(b)

	v := topo.Vertex(topo.AlphaOf(topo.AmgisOf(b)))

	if classifyPts(topo, g, d, u) != predicate.Left {
		return dd
	}

	for v != g && inCirclePts(topo, g, d, u, v) == predicate.Inside {
		c := topo.AmgisOf(b)
		du = topo.AlphaOf(c)
		topo.RemoveEdge(b)
		b = c
		u = topo.Vertex(du)
		v = topo.Vertex(topo.AlphaOf(topo.AmgisOf(b)))
	}
	if v != g && inCirclePts(topo, g, d, u, v) == predicate.OnCircle {
		du = topo.SigmaOf(du)
		topo.RemoveEdge(b)
	}
	return du
}

// validLink validates both sides of candidate base edge b, picks whichever
// of b, the left candidate, or the right candidate is Delaunay-legal, and
// splices a new rising edge between the two surviving endpoints.
func validLink(topo *quadedge.Topology, b quadedge.HalfEdgeID) quadedge.HalfEdgeID {
	g := topo.Vertex(b)
	gd := validLeft(topo, b)
	gP := topo.Vertex(gd)

	d := topo.Vertex(topo.AlphaOf(b))
	dd := validRight(topo, b)
	dP := topo.Vertex(dd)

	if g != gP && d != dP {
		switch inCirclePts(topo, g, d, gP, dP) {
		case predicate.Inside:
			gd = b
		case predicate.Outside:
			dd = topo.AlphaOf(b)
		}
	}

	return topo.SpliceAfter(gd, dd)
}
