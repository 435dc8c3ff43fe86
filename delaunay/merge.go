package delaunay

import (
	"github.com/arl/assertgo"

	"github.com/arl/delaunay2d/predicate"
	"github.com/arl/delaunay2d/quadedge"
)

// lowerTangent finds the lower common tangent between two
// sub-triangulations sorted left-to-right, walking the left
// triangulation's rightmost chain and the right triangulation's leftmost
// chain towards each other until neither chain's next candidate falls to
// the right of the tangent line.
func lowerTangent(topo *quadedge.Topology, left, right subTri) quadedge.HalfEdgeID {
	leftD := left.rightmostHe
	rightD := right.leftmostHe

	for {
		pl := topo.Vertex(topo.AlphaOf(topo.AmgisOf(leftD)))
		pr := topo.Vertex(topo.AlphaOf(rightD))

		sl := classifyPts(topo, topo.Vertex(leftD), topo.Vertex(rightD), pl)
		if sl == predicate.Right {
			leftD = topo.AlphaOf(topo.AmgisOf(leftD))
		}

		sr := classifyPts(topo, topo.Vertex(leftD), topo.Vertex(rightD), pr)
		if sr == predicate.Right {
			rightD = topo.SigmaOf(topo.AlphaOf(rightD))
		}

		if sl != predicate.Right && sr != predicate.Right {
			break
		}
	}

	return topo.SpliceBefore(leftD, rightD)
}

// merge joins two sub-triangulations along their shared tangent, rising
// edge by edge from the lower tangent until no candidate on either side
// still lies to the left of the current rising edge, then re-derives the
// combined hull's leftmost and rightmost half-edges.
func merge(topo *quadedge.Topology, left, right subTri) subTri {
	ml := topo.Vertex(left.leftmostHe)
	mr := topo.Vertex(right.rightmostHe)

	b := lowerTangent(topo, left, right)

	u := topo.Vertex(topo.AlphaOf(topo.SigmaOf(b)))
	v := topo.Vertex(topo.AlphaOf(topo.AmgisOf(topo.AlphaOf(b))))

	for classifyHe(topo, b, u) == predicate.Left || classifyHe(topo, b, v) == predicate.Left {
		b = validLink(topo, b)
		u = topo.Vertex(topo.AlphaOf(topo.SigmaOf(b)))
		v = topo.Vertex(topo.AlphaOf(topo.AmgisOf(topo.AlphaOf(b))))
	}

	rightmostHe := topo.PointHe(mr)
	leftmostHe := topo.PointHe(ml)

	for classifyHe(topo, rightmostHe, topo.Vertex(topo.AlphaOf(topo.AmgisOf(rightmostHe)))) == predicate.Right {
		rightmostHe = topo.AmgisOf(rightmostHe)
	}
	for classifyHe(topo, leftmostHe, topo.Vertex(topo.AlphaOf(topo.AmgisOf(leftmostHe)))) == predicate.Right {
		leftmostHe = topo.AmgisOf(leftmostHe)
	}

	assert.True(classifyHe(topo, rightmostHe, topo.Vertex(topo.AlphaOf(topo.AmgisOf(rightmostHe)))) != predicate.Right,
		"merge: rightmost hint did not converge to a hull edge")
	assert.True(classifyHe(topo, leftmostHe, topo.Vertex(topo.AlphaOf(topo.AmgisOf(leftmostHe)))) != predicate.Right,
		"merge: leftmost hint did not converge to a hull edge")

	return subTri{
		leftmostHe:  leftmostHe,
		rightmostHe: rightmostHe,
		start:       left.start,
		end:         right.end,
	}
}

// divideAndConquer builds the Delaunay triangulation of the points at
// sorted positions start..end, splitting the range in half (the larger
// half first when the count is odd) until a base case applies, then
// merging the two halves' sub-triangulations back together.
func divideAndConquer(topo *quadedge.Topology, start, end int) subTri {
	n := end - start + 1

	switch {
	case n > 3:
		i := n/2 + n%2
		left := divideAndConquer(topo, start, start+i-1)
		right := divideAndConquer(topo, start+i, end)
		return merge(topo, left, right)
	case n == 3:
		return baseCaseTri(topo, start)
	default:
		return baseCaseSeg(topo, start)
	}
}
