package internal

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rec.DrawImage(img, 0, 0)
	rec.SetFillStyle("rgb(1,2,3)")
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(1, 0)
	rec.ClosePath()
	rec.Stroke()
	rec.Fill()

	assert.Equal(t, 1, rec.Count(OpDrawImage))
	assert.Equal(t, 1, rec.Count(OpLineTo))
	assert.Equal(t, 0, rec.Count(OpBeginPath+100))
	assert.Equal(t, []DrawnTriangle{
		{Points: []Point{{0, 0}, {1, 0}}, Style: "rgb(1,2,3)", Filled: true},
	}, rec.Triangles())

	// A new path starts from scratch.
	rec.BeginPath()
	rec.MoveTo(5, 5)
	rec.Stroke()
	assert.Equal(t, []Point{{5, 5}}, rec.Triangles()[1].Points)
	assert.False(t, rec.Triangles()[1].Filled)

	rec.Reset()
	assert.Empty(t, rec.Ops)
	assert.Empty(t, rec.Triangles())
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "BeginPath", OpBeginPath.String())
	assert.Equal(t, "DrawImage", OpDrawImage.String())
	assert.Equal(t, "OpKind(?)", OpKind(42).String())
}
