package internal

// Recursive Sierpinski rendering.
//
// Every call draws its own triangle first, then subdivides and recurses into
// the top, left and right children in that order. The draw order only matters
// for layering where strokes overlap. The recursion is synchronous and runs to
// the full depth once started. A render of depth d issues TriangleCount(d)
// triangle draws and nests d+1 calls deep.

// Depths past this produce millions of draws. Callers can raise the limit
// with WithMaxDepth.
const DefaultMaxDepth = 10

type Option func(*renderer)

// Fill every triangle, starting with the given color at the root.
func WithColor(c Color) Option {
	return func(r *renderer) {
		r.initial = c
		r.hasInitial = true
	}
}

// Pick a fresh color for every level below the root. Implies filling. If no
// initial color was given, the root color comes from the source too.
func WithColorSource(src ColorSource) Option {
	return func(r *renderer) { r.colors = src }
}

func WithMaxDepth(depth uint) Option {
	return func(r *renderer) { r.maxDepth = depth }
}

type renderer struct {
	surface    Surface
	colors     ColorSource
	initial    Color
	hasInitial bool
	fill       bool
	maxDepth   uint
	subdivide  func(Triangle) (top, left, right Triangle)
}

func newRenderer(surface Surface, opts ...Option) *renderer {
	r := &renderer{
		surface:   surface,
		maxDepth:  DefaultMaxDepth,
		subdivide: Triangle.Subdivide,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.fill = r.hasInitial || r.colors != nil
	return r
}

// Draw the fractal onto the surface. Panics with a RenderError on a nil
// surface or when depth exceeds the configured limit; nothing is drawn in
// either case.
func Render(surface Surface, root Triangle, depth uint, opts ...Option) {
	if surface == nil {
		fatalf("cannot render to a nil surface")
	}
	r := newRenderer(surface, opts...)
	if depth > r.maxDepth {
		fatalf("depth %d exceeds the maximum of %d", depth, r.maxDepth)
	}

	color := r.initial
	if !r.hasInitial && r.colors != nil {
		color = r.colors.Next()
	}
	r.render(root, depth, color)
}

func (r *renderer) render(t Triangle, depth uint, color Color) {
	r.draw(t, color)
	if depth == 0 {
		return
	}
	depth--

	// One color per level. All three children get the same one.
	if r.colors != nil {
		color = r.colors.Next()
	}

	top, left, right := r.subdivide(t)
	r.render(top, depth, color)
	r.render(left, depth, color)
	r.render(right, depth, color)
}

func (r *renderer) draw(t Triangle, color Color) {
	s := r.surface
	if r.fill {
		s.SetFillStyle(color.String())
	}
	s.BeginPath()
	s.MoveTo(t.Top.X, t.Top.Y)
	s.LineTo(t.Left.X, t.Left.Y)
	s.LineTo(t.Right.X, t.Right.Y)
	s.LineTo(t.Top.X, t.Top.Y)
	s.ClosePath()
	s.Stroke()
	if r.fill {
		s.Fill()
	}
}
