// Sierpinski triangle rendering for Go.
//
// This package recursively subdivides a triangle into the classic Sierpinski
// pattern and draws every triangle it visits onto a Surface, a stateful 2D
// drawing context with canvas-style path, stroke and fill calls. Triangles can
// be stroked only, filled with one color, or filled with a fresh color per
// level of the recursion.
//
// Surfaces for PNG and SVG output live in the canvas package.
package sierpinski

import "github.com/osuushi/sierpinski/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type Color = internal.Color
type Surface = internal.Surface
type Option = internal.Option
type ColorSource = internal.ColorSource
type Recorder = internal.Recorder
type OpKind = internal.OpKind

const (
	OpBeginPath    = internal.OpBeginPath
	OpMoveTo       = internal.OpMoveTo
	OpLineTo       = internal.OpLineTo
	OpClosePath    = internal.OpClosePath
	OpStroke       = internal.OpStroke
	OpFill         = internal.OpFill
	OpSetFillStyle = internal.OpSetFillStyle
	OpDrawImage    = internal.OpDrawImage
)

const DefaultMaxDepth = internal.DefaultMaxDepth

var (
	WithColor       = internal.WithColor
	WithColorSource = internal.WithColorSource
	WithMaxDepth    = internal.WithMaxDepth
	NewRandomColors = internal.NewRandomColors
	NewRecorder     = internal.NewRecorder
	ParseColor      = internal.ParseColor
	TriangleCount   = internal.TriangleCount
)

// Draw the fractal rooted at root onto surface, subdividing depth times.
//
// A depth of 0 draws the root triangle alone. Otherwise the render issues
// TriangleCount(depth) triangle draws. Rendering to a nil surface, or past
// the maximum depth (DefaultMaxDepth unless changed with WithMaxDepth), is an
// error and draws nothing.
func Render(surface Surface, root Triangle, depth uint, opts ...Option) (err error) {
	defer func() {
		recoveredErr := internal.HandleRenderPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	internal.Render(surface, root, depth, opts...)
	return nil
}

// Split a triangle into its top, left and right Sierpinski children.
func Subdivide(t Triangle) (top, left, right Triangle) {
	return t.Subdivide()
}
