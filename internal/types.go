package internal

// Points and triangles are plain values. Nothing in the renderer mutates a
// triangle once it has been built; every level of the recursion constructs
// fresh children.
type Point struct {
	X float64
	Y float64
}

// The order of the vertices matters. Subdivide relies on it to decide which
// edge each child inherits.
type Triangle struct {
	Top, Left, Right Point
}

// An opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}
