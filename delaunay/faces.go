package delaunay

import "github.com/arl/delaunay2d/quadedge"

// buildFace labels every half-edge on d's rotational cycle with a newly
// allocated face, unless some earlier walk already reached d.
func buildFace(topo *quadedge.Topology, d quadedge.HalfEdgeID) {
	if topo.FaceOf(d) != quadedge.NilFace {
		return
	}

	f := topo.AllocFace()
	topo.SetFaceHe(f, d)

	n := 0
	curr := d
	for {
		topo.SetFaceOf(curr, f)
		n++
		curr = topo.AlphaOf(topo.AmgisOf(curr))
		if curr == d {
			break
		}
	}
	topo.SetFaceNumVerts(f, n)
}

// extractFaces walks every rotational cycle of the finished triangulation
// spanning sorted positions start..end and labels each with a face. The
// unbounded face bordering rightmostHe is built first, so it is always
// face 0. Its walk starts from the hull half-edge arriving at
// rightmostHe's origin, so a two-point input lists its leftmost point
// first.
func extractFaces(topo *quadedge.Topology, start, end int, rightmostHe quadedge.HalfEdgeID) {
	buildFace(topo, topo.AlphaOf(topo.AmgisOf(rightmostHe)))

	for i := start; i <= end; i++ {
		p := quadedge.PointID(i)
		first := topo.PointHe(p)
		curr := first
		for {
			buildFace(topo, curr)
			curr = topo.SigmaOf(curr)
			if curr == first {
				break
			}
		}
	}
}
