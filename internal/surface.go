package internal

import "image"

// A Surface is a stateful 2D drawing context with canvas semantics: path
// calls accumulate on the current path until the next BeginPath, and neither
// Stroke nor Fill clears it.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()
	Fill()
	// The style is a color in "rgb(R,G,B)" form.
	SetFillStyle(style string)
	DrawImage(img image.Image, x, y float64)
}

type OpKind int

const (
	OpBeginPath OpKind = iota
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStroke
	OpFill
	OpSetFillStyle
	OpDrawImage
)

var opNames = [...]string{
	OpBeginPath:    "BeginPath",
	OpMoveTo:       "MoveTo",
	OpLineTo:       "LineTo",
	OpClosePath:    "ClosePath",
	OpStroke:       "Stroke",
	OpFill:         "Fill",
	OpSetFillStyle: "SetFillStyle",
	OpDrawImage:    "DrawImage",
}

func (k OpKind) String() string {
	if k >= 0 && int(k) < len(opNames) {
		return opNames[k]
	}
	return "OpKind(?)"
}

// A single recorded surface call. Only the fields relevant to Kind are set.
type Op struct {
	Kind  OpKind
	Point Point
	Style string
	Image image.Image
}

// A triangle as it was stroked onto a Recorder, along with the fill style in
// effect at the time (empty if it was never set) and whether it was filled.
type DrawnTriangle struct {
	Points []Point
	Style  string
	Filled bool
}

// Recorder is a Surface that draws nothing and remembers every call. It is
// used to count draws without paying for rasterization.
type Recorder struct {
	Ops []Op

	style   string
	current []Point
	drawn   []DrawnTriangle
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) BeginPath() {
	r.Ops = append(r.Ops, Op{Kind: OpBeginPath})
	r.current = nil
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, Point: Point{x, y}})
	r.current = append(r.current, Point{x, y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineTo, Point: Point{x, y}})
	r.current = append(r.current, Point{x, y})
}

func (r *Recorder) ClosePath() {
	r.Ops = append(r.Ops, Op{Kind: OpClosePath})
}

func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, Op{Kind: OpStroke})
	points := make([]Point, len(r.current))
	copy(points, r.current)
	r.drawn = append(r.drawn, DrawnTriangle{Points: points, Style: r.style})
}

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, Op{Kind: OpFill})
	if len(r.drawn) > 0 {
		r.drawn[len(r.drawn)-1].Filled = true
	}
}

func (r *Recorder) SetFillStyle(style string) {
	r.Ops = append(r.Ops, Op{Kind: OpSetFillStyle, Style: style})
	r.style = style
}

func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawImage, Point: Point{x, y}, Image: img})
}

// Count the recorded calls of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Every stroked path in draw order.
func (r *Recorder) Triangles() []DrawnTriangle {
	return r.drawn
}

func (r *Recorder) Reset() {
	*r = Recorder{}
}
