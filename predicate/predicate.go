// Package predicate implements the geometric predicates the Delaunay
// triangulator is built on: the orientation of a point relative to a
// directed segment, and the in-circle test on four points.
//
// Both predicates are pure functions over double-precision coordinates,
// matching the loose (non-adaptive) predicate the reference
// implementation uses; see the package doc of delaunay for the tradeoff.
package predicate

// Point is a coordinate in the plane.
type Point struct {
	X, Y float64
}

// Orientation is the result of classifying a point relative to a directed
// segment.
type Orientation int

const (
	// Right means p lies to the right of the directed segment s->e.
	Right Orientation = -1
	// On means p is collinear with s and e.
	On Orientation = 0
	// Left means p lies to the left of the directed segment s->e.
	Left Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	default:
		return "ON_SEG"
	}
}

// Classify returns the orientation of p relative to the directed segment
// s->e: the sign of the 2D cross product (e-s) x (p-s).
func Classify(s, e, p Point) Orientation {
	sex := e.X - s.X
	sey := e.Y - s.Y
	spx := p.X - s.X
	spy := p.Y - s.Y

	res := sex*spy - sey*spx
	switch {
	case res < 0:
		return Right
	case res > 0:
		return Left
	default:
		return On
	}
}

// InCircleResult is the result of the in-circle test.
type InCircleResult int

const (
	// Outside means p lies outside the circumcircle of a, b, c.
	Outside InCircleResult = -1
	// OnCircle means p lies exactly on the circumcircle of a, b, c.
	OnCircle InCircleResult = 0
	// Inside means p lies strictly inside the circumcircle of a, b, c.
	Inside InCircleResult = 1
)

func (r InCircleResult) String() string {
	switch r {
	case Inside:
		return "INSIDE"
	case Outside:
		return "OUTSIDE"
	default:
		return "ON_CIRCLE"
	}
}

// det3 is the determinant of a 3x3 matrix given row-major.
func det3(m [3][3]float64) float64 {
	res := m[0][0] * (m[1][1]*m[2][2] - m[1][2]*m[2][1])
	res -= m[0][1] * (m[1][0]*m[2][2] - m[1][2]*m[2][0])
	res += m[0][2] * (m[1][0]*m[2][1] - m[1][1]*m[2][0])
	return res
}

// InCircle reports whether p lies inside, on, or outside the circumcircle
// of a, b, c. The triple a, b, c must be in counter-clockwise order for
// the result's sign to be meaningful; callers are responsible for that
// (the merge routine guarantees it).
func InCircle(a, b, c, p Point) InCircleResult {
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y

	ma := [3][3]float64{
		{a.X, a.Y, 1},
		{b.X, b.Y, 1},
		{c.X, c.Y, 1},
	}
	mbx := [3][3]float64{
		{aa, a.Y, 1},
		{bb, b.Y, 1},
		{cc, c.Y, 1},
	}
	mby := [3][3]float64{
		{aa, a.X, 1},
		{bb, b.X, 1},
		{cc, c.X, 1},
	}
	mc := [3][3]float64{
		{aa, a.X, a.Y},
		{bb, b.X, b.Y},
		{cc, c.X, c.Y},
	}

	da := det3(ma)
	bx := det3(mbx)
	by := -det3(mby)
	dc := -det3(mc)

	res := da*(p.X*p.X+p.Y*p.Y) - bx*p.X - by*p.Y + dc

	switch {
	case res < 0:
		return Inside
	case res > 0:
		return Outside
	default:
		return OnCircle
	}
}
