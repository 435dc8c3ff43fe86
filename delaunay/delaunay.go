// Package delaunay computes the 2D Delaunay triangulation of a planar
// point set by divide and conquer over a quad-edge topology (quadedge),
// following Guibas and Stolfi's merge step: split the sorted point set in
// half, triangulate each half, then rise from the lower common tangent
// deleting and adding edges until the join is locally Delaunay everywhere.
//
// The predicates (orientation, in-circle) are the loose double-precision
// kind, not adaptive or exact arithmetic: robustness against
// near-degenerate input is out of scope.
package delaunay

import (
	"sort"

	"github.com/arl/delaunay2d/quadedge"
)

// Point is an input vertex of the triangulation.
type Point struct {
	X, Y float64
}

// Result is the output of Triangulate: the face stream of the
// triangulation, plus the underlying topology kept alive until Release.
//
// Faces is a flat encoding of every face as [numVerts, vertexIdx...]
// repeated NumFaces times; vertexIdx refers to a point's position in the
// slice originally given to Triangulate. Face 0 is always the unbounded
// outer face, whose vertex list walks the convex hull.
type Result struct {
	topo *quadedge.Topology

	NumFaces int
	Faces    []int
}

// Release frees the topology backing this result. Using Faces or calling
// Release again afterwards is undefined.
func (r *Result) Release() {
	if r.topo == nil {
		return
	}
	r.topo.Release()
	r.topo = nil
}

// Triangulate computes the Delaunay triangulation of points. It requires
// at least two distinct points; fewer, or a duplicate coordinate pair,
// is reported as an *InvalidInputError rather than silently producing a
// degenerate topology.
//
// Unlike the divide-and-conquer reference this package is grounded on,
// Triangulate also accepts exactly two points, returning the single
// two-vertex face a segment's "triangulation" consists of.
func Triangulate(points []Point) (*Result, error) {
	if len(points) < 2 {
		return nil, &InvalidInputError{Reason: TooFewPoints, Index: -1}
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := points[order[i]], points[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	for i := 1; i < len(order); i++ {
		a, b := points[order[i-1]], points[order[i]]
		if a.X == b.X && a.Y == b.Y {
			return nil, &InvalidInputError{Reason: DuplicatePoint, Index: order[i]}
		}
	}

	topo := quadedge.NewTopology(len(points))
	for _, idx := range order {
		topo.AllocPoint(idx, points[idx].X, points[idx].Y)
	}

	tri := divideAndConquer(topo, 0, len(points)-1)
	extractFaces(topo, 0, len(points)-1, tri.rightmostHe)

	return &Result{
		topo:     topo,
		NumFaces: topo.NumFaces(),
		Faces:    flattenFaceStream(topo),
	}, nil
}

func flattenFaceStream(topo *quadedge.Topology) []int {
	out := make([]int, 0, topo.NumFaces()*4)
	for i := 0; i < topo.NumFaces(); i++ {
		f := quadedge.FaceID(i)
		out = append(out, topo.FaceNumVerts(f))

		start := topo.FaceHe(f)
		curr := start
		for {
			out = append(out, topo.PointIdx(topo.Vertex(curr)))
			curr = topo.AlphaOf(topo.AmgisOf(curr))
			if curr == start {
				break
			}
		}
	}
	return out
}
