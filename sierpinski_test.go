package sierpinski

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestRender(t *testing.T) {
	rec := NewRecorder()
	root := Triangle{Top: Point{X: 300, Y: 0}, Left: Point{X: 0, Y: 600}, Right: Point{X: 600, Y: 600}}

	err := Render(rec, root, 5, WithColor(Color{G: 255}), WithColorSource(NewRandomColors(1)))
	require.NoError(t, err)
	assert.Len(t, rec.Triangles(), 364)
	assert.Equal(t, uint64(364), TriangleCount(5))
}

func TestRender_Errors(t *testing.T) {
	root := Triangle{Top: Point{X: 0, Y: 0}, Left: Point{X: 0, Y: 10}, Right: Point{X: 10, Y: 20}}

	t.Run("nil surface", func(t *testing.T) {
		assert.EqualError(t, Render(nil, root, 1), "cannot render to a nil surface")
	})

	t.Run("too deep", func(t *testing.T) {
		rec := NewRecorder()
		err := Render(rec, root, 4, WithMaxDepth(3))
		assert.EqualError(t, err, "depth 4 exceeds the maximum of 3")
		assert.Empty(t, rec.Ops)
	})
}

// Surface whose Stroke fails, to check that bugs in a surface are not
// swallowed as render errors.
type panickingSurface struct {
	*Recorder
	stroke func()
}

func (s panickingSurface) Stroke() {
	s.stroke()
}

func TestRender_SurfacePanics(t *testing.T) {
	root := Triangle{Top: Point{X: 300, Y: 0}, Left: Point{X: 0, Y: 600}, Right: Point{X: 600, Y: 600}}

	t.Run("error value", func(t *testing.T) {
		surface := panickingSurface{NewRecorder(), func() { panic(errors.New("surface bug")) }}
		assert.PanicsWithError(t, "surface bug", func() {
			_ = Render(surface, root, 2)
		})
	})

	t.Run("nil dereference", func(t *testing.T) {
		var broken *Recorder
		surface := panickingSurface{NewRecorder(), func() { broken.Stroke() }}
		assert.Panics(t, func() {
			_ = Render(surface, root, 2)
		})
	})
}

func TestSubdivide(t *testing.T) {
	_, left, right := Subdivide(Triangle{Top: Point{X: 0, Y: 0}, Left: Point{X: 0, Y: 10}, Right: Point{X: 10, Y: 20}})
	assert.Equal(t, Point{X: 0, Y: 20}, left.Right)
	assert.Equal(t, Point{X: 0, Y: 20}, right.Left)
}
