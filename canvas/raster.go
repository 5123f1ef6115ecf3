package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/osuushi/sierpinski/internal"
)

// Raster is a Surface backed by a gg context.
type Raster struct {
	ctx    *gg.Context
	fill   color.Color
	stroke color.Color
}

// A transparent raster surface of the given size.
func NewRaster(width, height int) *Raster {
	return newRaster(gg.NewContext(width, height))
}

// A raster surface that draws over a copy of img.
func NewRasterForImage(img image.Image) *Raster {
	return newRaster(gg.NewContextForImage(img))
}

func newRaster(ctx *gg.Context) *Raster {
	ctx.SetLineWidth(1)
	return &Raster{ctx: ctx, fill: color.Black, stroke: color.Black}
}

func (r *Raster) BeginPath() {
	r.ctx.ClearPath()
}

func (r *Raster) MoveTo(x, y float64) {
	r.ctx.MoveTo(x, y)
}

func (r *Raster) LineTo(x, y float64) {
	r.ctx.LineTo(x, y)
}

func (r *Raster) ClosePath() {
	r.ctx.ClosePath()
}

// gg keeps one color for both operations, so set it on every call.
func (r *Raster) Stroke() {
	r.ctx.SetColor(r.stroke)
	r.ctx.StrokePreserve()
}

func (r *Raster) Fill() {
	r.ctx.SetColor(r.fill)
	r.ctx.FillPreserve()
}

// Styles that don't parse are ignored, the same as assigning garbage to a
// canvas fillStyle.
func (r *Raster) SetFillStyle(style string) {
	c, err := internal.ParseColor(style)
	if err != nil {
		return
	}
	r.fill = c
}

func (r *Raster) SetStrokeColor(c color.Color) {
	r.stroke = c
}

func (r *Raster) SetLineWidth(width float64) {
	r.ctx.SetLineWidth(width)
}

// Pixel positions are rounded; gg only blits at integer offsets.
func (r *Raster) DrawImage(img image.Image, x, y float64) {
	r.ctx.DrawImage(img, int(math.Round(x)), int(math.Round(y)))
}

func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}

func (r *Raster) Width() int  { return r.ctx.Width() }
func (r *Raster) Height() int { return r.ctx.Height() }

func (r *Raster) EncodePNG(w io.Writer) error {
	return errors.Wrap(r.ctx.EncodePNG(w), "encoding png")
}

func (r *Raster) SavePNG(path string) error {
	return errors.Wrapf(r.ctx.SavePNG(path), "saving %s", path)
}
