package flatten_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/delaunay2d/flatten"
)

func TestTrianglesSkipsExternalFace(t *testing.T) {
	// external face (quad, skipped) followed by one bounded triangle.
	faces := []int{4, 0, 1, 2, 3, 3, 0, 1, 3}
	got := flatten.Triangles(2, faces)
	assert.Equal(t, []int{0, 1, 3}, got)
}

func TestTrianglesFansQuad(t *testing.T) {
	faces := []int{3, 9, 9, 9, 4, 0, 1, 2, 3}
	got := flatten.Triangles(2, faces)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 3}, got)
}

func TestTrianglesIdempotentOnTrianglesOnly(t *testing.T) {
	faces := []int{3, 9, 9, 9, 3, 0, 1, 2, 3, 1, 2, 3}
	got := flatten.Triangles(3, faces)
	again := flatten.Triangles(3, faces)
	assert.Equal(t, got, again)
	assert.Equal(t, []int{0, 1, 2, 1, 2, 3}, got)
}

func TestTrianglesNoFacesBeyondExternal(t *testing.T) {
	faces := []int{2, 0, 1}
	got := flatten.Triangles(1, faces)
	assert.Empty(t, got)
}
