// Package dbg holds debug-only helpers for visualizing a quadedge
// topology as text: ring walks around a vertex, and face walks around a
// bounded or unbounded face. It has no role in the triangulation itself;
// cmd/delaunay2d wires it in behind a --debug flag.
package dbg

import (
	"fmt"
	"io"

	"github.com/arl/delaunay2d/quadedge"
)

// DumpRings writes, for every point owned by topo, the sequence of
// destination vertex indices reached by walking its outgoing half-edges
// in sigma (counter-clockwise) order. A point with no incident half-edge
// is printed as "(no incident half-edge)".
func DumpRings(w io.Writer, topo *quadedge.Topology) {
	for i := 0; i < topo.NumPoints(); i++ {
		p := quadedge.PointID(i)
		fmt.Fprintf(w, "point %d:", topo.PointIdx(p))

		start := topo.PointHe(p)
		if start == quadedge.NilHalfEdge {
			fmt.Fprintln(w, " (no incident half-edge)")
			continue
		}

		curr := start
		for {
			dst := topo.Vertex(topo.AlphaOf(curr))
			fmt.Fprintf(w, " -> %d", topo.PointIdx(dst))
			curr = topo.SigmaOf(curr)
			if curr == start {
				break
			}
		}
		fmt.Fprintln(w)
	}
}

// DumpFace writes the vertex indices bordering the rotational cycle
// starting at d, in the order a face walk (alpha . amgis) visits them.
// d need not have been labeled by face extraction yet; this only reads
// the sigma/amgis/alpha links.
func DumpFace(w io.Writer, topo *quadedge.Topology, d quadedge.HalfEdgeID) {
	fmt.Fprintf(w, "face at he=%d:", d)
	curr := d
	for {
		fmt.Fprintf(w, " %d", topo.PointIdx(topo.Vertex(curr)))
		curr = topo.AlphaOf(topo.AmgisOf(curr))
		if curr == d {
			break
		}
	}
	fmt.Fprintln(w)
}

// DumpFaceStream writes a human-readable rendering of a delaunay face
// stream (as produced by delaunay.Result.Faces): one line per face,
// tagged "ext" for face 0 and "int" for every other face.
func DumpFaceStream(w io.Writer, numFaces int, faces []int) {
	i := 0
	for f := 0; f < numFaces; f++ {
		n := faces[i]
		i++
		verts := faces[i : i+n]
		i += n

		kind := "int"
		if f == 0 {
			kind = "ext"
		}
		fmt.Fprintf(w, "%s face %d (%d verts):", kind, f, n)
		for _, v := range verts {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintln(w)
	}
}
