package canvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/osuushi/sierpinski/internal"
)

// Vector is a Surface that writes SVG as it goes. Every Stroke and every Fill
// becomes its own <path> element, so the document preserves draw order.
// Call End when done to close the document.
type Vector struct {
	svg       *svg.SVG
	path      strings.Builder
	fill      string
	stroke    string
	lineWidth float64
}

// Start an SVG document of the given size on w.
func NewVector(w io.Writer, width, height int) *Vector {
	s := svg.New(w)
	s.Start(width, height)
	return &Vector{
		svg:       s,
		fill:      internal.Color{}.String(),
		stroke:    internal.Color{}.String(),
		lineWidth: 1,
	}
}

func (v *Vector) BeginPath() {
	v.path.Reset()
}

func (v *Vector) MoveTo(x, y float64) {
	fmt.Fprintf(&v.path, "M%s,%s ", formatFloat(x), formatFloat(y))
}

func (v *Vector) LineTo(x, y float64) {
	fmt.Fprintf(&v.path, "L%s,%s ", formatFloat(x), formatFloat(y))
}

func (v *Vector) ClosePath() {
	v.path.WriteString("Z ")
}

func (v *Vector) Stroke() {
	d := strings.TrimSpace(v.path.String())
	if d == "" {
		return
	}
	v.svg.Path(d, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", v.stroke, formatFloat(v.lineWidth)))
}

func (v *Vector) Fill() {
	d := strings.TrimSpace(v.path.String())
	if d == "" {
		return
	}
	v.svg.Path(d, fmt.Sprintf("fill:%s;stroke:none", v.fill))
}

// Unparseable styles are ignored. Valid ones are normalized to rgb(R,G,B).
func (v *Vector) SetFillStyle(style string) {
	c, err := internal.ParseColor(style)
	if err != nil {
		return
	}
	v.fill = c.String()
}

func (v *Vector) SetStrokeColor(c internal.Color) {
	v.stroke = c.String()
}

func (v *Vector) SetLineWidth(width float64) {
	v.lineWidth = width
}

// The image is embedded as a PNG data URI at its native size.
func (v *Vector) DrawImage(img image.Image, x, y float64) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return
	}
	b := img.Bounds()
	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	v.svg.Image(int(math.Round(x)), int(math.Round(y)), b.Dx(), b.Dy(), href)
}

func (v *Vector) End() {
	v.svg.End()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
