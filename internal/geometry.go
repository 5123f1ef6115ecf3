package internal

import "math"

const Tolerance = 1e-9

// Float comparison with a tolerance, for area checks on tiny triangles deep
// in the recursion.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Split the triangle into the three corner triangles of the Sierpinski
// pattern, leaving the inverted center triangle empty.
//
// The shared bottom vertex is (top.X, right.Y), not the midpoint of the left
// and right vertices. The two only agree for an isosceles triangle with a
// horizontal base. Changing it changes the shape of the fractal, so leave it.
func (t Triangle) Subdivide() (top, left, right Triangle) {
	leftMid := Midpoint(t.Top, t.Left)
	rightMid := Midpoint(t.Top, t.Right)
	bottomMid := Point{X: t.Top.X, Y: t.Right.Y}

	top = Triangle{t.Top, leftMid, rightMid}
	left = Triangle{leftMid, t.Left, bottomMid}
	right = Triangle{rightMid, bottomMid, t.Right}
	return
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.Top, t.Left, t.Right}
}

// Positive for counterclockwise winding in a y-up coordinate system. On a
// y-down canvas the sign flips, so most callers want Area.
func (t Triangle) SignedArea() float64 {
	a, b, c := t.Top, t.Left, t.Right
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Degenerate triangles are legal input. They render as zero-area paths.
func (t Triangle) IsDegenerate() bool {
	return Equal(t.SignedArea(), 0)
}

// The number of triangles drawn by a render of the given depth:
// 1 + 3 + 9 + ... + 3^depth.
func TriangleCount(depth uint) uint64 {
	var total, level uint64 = 0, 1
	for i := uint(0); i <= depth; i++ {
		total += level
		level *= 3
	}
	return total
}
