// Package quadedge implements the topology store that backs the Delaunay
// triangulator: points, half-edges, and faces, addressed through small
// integer handles into growable arenas rather than raw pointers.
//
// Handles are stable across arena growth (unlike *T taken into a slice that
// might later be reallocated by append), which is what makes it safe to
// hold on to a half-edge across the many insertions and deletions the
// merge step performs.
package quadedge

import (
	"github.com/arl/assertgo"

	"github.com/arl/delaunay2d/predicate"
)

// PointID is a handle to a Point owned by a Topology.
type PointID int32

// HalfEdgeID is a handle to a HalfEdge owned by a Topology.
type HalfEdgeID int32

// FaceID is a handle to a Face owned by a Topology.
type FaceID int32

// NilHalfEdge is the zero-value-safe "no half-edge" handle.
const NilHalfEdge HalfEdgeID = -1

// NilFace is the "no face assigned yet" handle.
const NilFace FaceID = -1

// Point is a vertex of the triangulation.
type Point struct {
	predicate.Point
	// Idx is the point's position in the caller's original, unsorted
	// input order. Every index emitted in a face stream refers to Idx,
	// never to a point's position in the internally sorted working
	// array.
	Idx int
	// He is one of the point's outgoing half-edges, or NilHalfEdge if
	// the point hasn't been wired into any topology yet.
	He HalfEdgeID
}

// HalfEdge is the fundamental topological primitive: a directed edge.
// Every undirected edge is represented by exactly two half-edges linked
// through Alpha.
type HalfEdge struct {
	Vertex PointID
	Alpha  HalfEdgeID
	Sigma  HalfEdgeID
	Amgis  HalfEdgeID
	Face   FaceID
}

// Face is a bounded or unbounded rotational cycle of half-edges, derived
// during face extraction.
type Face struct {
	He       HalfEdgeID
	NumVerts int
}

// Topology owns every point, half-edge, and face of one triangulation (or
// of one sub-triangulation during divide-and-conquer). Half-edges are
// reused from a free list on deletion so long-running merges don't leak
// arena slots.
type Topology struct {
	points []Point
	edges  []HalfEdge
	faces  []Face
	free   []HalfEdgeID
}

// NewTopology returns an empty topology with its point arena
// preallocated for n points.
func NewTopology(n int) *Topology {
	return &Topology{
		points: make([]Point, 0, n),
		edges:  make([]HalfEdge, 0, 3*n),
	}
}

// AllocPoint appends a new point to the arena and returns its handle. idx
// is the point's index in the caller's original input order.
func (t *Topology) AllocPoint(idx int, x, y float64) PointID {
	t.points = append(t.points, Point{
		Point: predicate.Point{X: x, Y: y},
		Idx:   idx,
		He:    NilHalfEdge,
	})
	return PointID(len(t.points) - 1)
}

// NumPoints returns the number of points owned by this topology.
func (t *Topology) NumPoints() int { return len(t.points) }

// PointCoord returns the coordinates of p.
func (t *Topology) PointCoord(p PointID) predicate.Point { return t.points[p].Point }

// PointIdx returns the original input index of p.
func (t *Topology) PointIdx(p PointID) int { return t.points[p].Idx }

// PointHe returns one of p's outgoing half-edges.
func (t *Topology) PointHe(p PointID) HalfEdgeID { return t.points[p].He }

// SetPointHe redirects p's outgoing half-edge.
func (t *Topology) SetPointHe(p PointID, h HalfEdgeID) { t.points[p].He = h }

// AllocHalfEdge returns a fresh, zero-valued half-edge handle, reusing a
// freed slot when one is available.
func (t *Topology) AllocHalfEdge() HalfEdgeID {
	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]
		t.edges[h] = HalfEdge{Alpha: NilHalfEdge, Sigma: NilHalfEdge, Amgis: NilHalfEdge, Face: NilFace}
		return h
	}
	t.edges = append(t.edges, HalfEdge{Alpha: NilHalfEdge, Sigma: NilHalfEdge, Amgis: NilHalfEdge, Face: NilFace})
	return HalfEdgeID(len(t.edges) - 1)
}

// Vertex returns the origin point of h.
func (t *Topology) Vertex(h HalfEdgeID) PointID { return t.edges[h].Vertex }

// SetVertex sets the origin point of h.
func (t *Topology) SetVertex(h HalfEdgeID, p PointID) { t.edges[h].Vertex = p }

// AlphaOf returns the twin of h.
func (t *Topology) AlphaOf(h HalfEdgeID) HalfEdgeID { return t.edges[h].Alpha }

// SetAlpha sets the twin of h.
func (t *Topology) SetAlpha(h, a HalfEdgeID) { t.edges[h].Alpha = a }

// SigmaOf returns the next half-edge counter-clockwise around h's origin.
func (t *Topology) SigmaOf(h HalfEdgeID) HalfEdgeID { return t.edges[h].Sigma }

// SetSigma sets the next half-edge counter-clockwise around h's origin.
func (t *Topology) SetSigma(h, s HalfEdgeID) { t.edges[h].Sigma = s }

// AmgisOf returns the next half-edge clockwise around h's origin (sigma's
// inverse).
func (t *Topology) AmgisOf(h HalfEdgeID) HalfEdgeID { return t.edges[h].Amgis }

// SetAmgis sets the next half-edge clockwise around h's origin.
func (t *Topology) SetAmgis(h, a HalfEdgeID) { t.edges[h].Amgis = a }

// FaceOf returns the face bordering h on its left, or NilFace if face
// extraction hasn't visited h yet.
func (t *Topology) FaceOf(h HalfEdgeID) FaceID { return t.edges[h].Face }

// SetFaceOf assigns the face bordering h on its left.
func (t *Topology) SetFaceOf(h HalfEdgeID, f FaceID) { t.edges[h].Face = f }

// AllocFace appends a new, empty face and returns its handle.
func (t *Topology) AllocFace() FaceID {
	t.faces = append(t.faces, Face{He: NilHalfEdge, NumVerts: 0})
	return FaceID(len(t.faces) - 1)
}

// NumFaces returns the number of faces extracted so far.
func (t *Topology) NumFaces() int { return len(t.faces) }

// FaceHe returns f's bordering half-edge.
func (t *Topology) FaceHe(f FaceID) HalfEdgeID { return t.faces[f].He }

// SetFaceHe sets f's bordering half-edge.
func (t *Topology) SetFaceHe(f FaceID, h HalfEdgeID) { t.faces[f].He = h }

// FaceNumVerts returns the number of vertices on f's boundary.
func (t *Topology) FaceNumVerts(f FaceID) int { return t.faces[f].NumVerts }

// SetFaceNumVerts sets the number of vertices on f's boundary.
func (t *Topology) SetFaceNumVerts(f FaceID, n int) { t.faces[f].NumVerts = n }

// RemoveSingleHalfEdge unlinks and frees exactly one half-edge: it patches
// the local sigma/amgis neighbors, redirects the origin's outgoing
// half-edge if it pointed at d (to NilHalfEdge when d was the last
// half-edge in its ring), and nulls the partner's Alpha so a
// subsequent removal of the partner can detect the already-gone state.
func (t *Topology) RemoveSingleHalfEdge(d HalfEdgeID) {
	sigma := t.SigmaOf(d)
	amgis := t.AmgisOf(d)
	assert.True(sigma != NilHalfEdge, "RemoveSingleHalfEdge: sigma is nil")
	assert.True(amgis != NilHalfEdge, "RemoveSingleHalfEdge: amgis is nil")

	t.SetAmgis(sigma, amgis)
	t.SetSigma(amgis, sigma)

	if alpha := t.AlphaOf(d); alpha != NilHalfEdge {
		t.SetAlpha(alpha, NilHalfEdge)
	}

	v := t.Vertex(d)
	if t.PointHe(v) == d {
		if sigma == d {
			t.SetPointHe(v, NilHalfEdge)
		} else {
			t.SetPointHe(v, sigma)
		}
	}

	t.free = append(t.free, d)
}

// RemoveEdge unlinks and frees the undirected edge that d belongs to: both
// d and its alpha are removed from their respective rings.
func (t *Topology) RemoveEdge(d HalfEdgeID) {
	a := t.AlphaOf(d)
	t.RemoveSingleHalfEdge(d)
	t.RemoveSingleHalfEdge(a)
}

// insertAfterSigma allocates a half-edge at h's vertex and inserts it into
// h's ring immediately after h in sigma order.
func (t *Topology) insertAfterSigma(h HalfEdgeID) HalfEdgeID {
	newH := t.AllocHalfEdge()
	t.SetVertex(newH, t.Vertex(h))
	hSigma := t.SigmaOf(h)
	t.SetSigma(newH, hSigma)
	t.SetAmgis(hSigma, newH)
	t.SetAmgis(newH, h)
	t.SetSigma(h, newH)
	return newH
}

// insertBeforeSigma allocates a half-edge at h's vertex and inserts it
// into h's ring immediately before h in sigma order.
func (t *Topology) insertBeforeSigma(h HalfEdgeID) HalfEdgeID {
	newH := t.AllocHalfEdge()
	t.SetVertex(newH, t.Vertex(h))
	hAmgis := t.AmgisOf(h)
	t.SetAmgis(newH, hAmgis)
	t.SetSigma(hAmgis, newH)
	t.SetSigma(newH, h)
	t.SetAmgis(h, newH)
	return newH
}

// SpliceAfter creates a new undirected edge by inserting one end into
// gd's ring immediately after gd, and the other end into dd's ring
// immediately before dd. It returns the new half-edge whose origin is
// gd's vertex.
//
// This is the pointer surgery a link validation step performs each time
// it admits a new candidate edge into both rotational rings at once.
func (t *Topology) SpliceAfter(gd, dd HalfEdgeID) HalfEdgeID {
	newGd := t.insertAfterSigma(gd)
	newDd := t.insertBeforeSigma(dd)
	t.SetAlpha(newGd, newDd)
	t.SetAlpha(newDd, newGd)
	return newGd
}

// SpliceBefore creates a new undirected edge by inserting one end into
// left's ring immediately before left, and the other end into right's
// ring immediately before right. It returns the new half-edge whose
// origin is left's vertex.
//
// This is the pointer surgery that forms the lower tangent between two
// sub-triangulations before the rising merge begins.
func (t *Topology) SpliceBefore(left, right HalfEdgeID) HalfEdgeID {
	newLeft := t.insertBeforeSigma(left)
	newRight := t.insertBeforeSigma(right)
	t.SetAlpha(newLeft, newRight)
	t.SetAlpha(newRight, newLeft)
	return newLeft
}

// Release reclaims every half-edge owned by this topology. It walks each
// point's rotational ring snapshotting the next half-edge before freeing
// the current one, so the walk survives freeing the very half-edge it is
// standing on.
//
// Releasing a topology twice, or using it afterwards, is undefined.
func (t *Topology) Release() {
	for i := range t.points {
		p := PointID(i)
		start := t.PointHe(p)
		if start == NilHalfEdge {
			continue
		}
		d := start
		for {
			next := t.SigmaOf(d)
			t.edges[d] = HalfEdge{Vertex: -1, Alpha: NilHalfEdge, Sigma: NilHalfEdge, Amgis: NilHalfEdge, Face: NilFace}
			if next == start {
				break
			}
			d = next
		}
		t.SetPointHe(p, NilHalfEdge)
	}
	t.points = nil
	t.edges = nil
	t.faces = nil
	t.free = nil
}
