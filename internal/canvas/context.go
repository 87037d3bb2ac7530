package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Context is a 2-D drawing context over a Canvas. Coordinates are in user
// space and are mapped through the current transform when a path point is
// added, as in an HTML canvas.
type Context struct {
	canvas *Canvas
	state  drawState
	stack  []drawState
	path   [][]point
	raster *vector.Rasterizer
}

type drawState struct {
	fill      Paint
	stroke    Paint
	lineWidth float64
	transform matrix
}

type point struct{ x, y float64 }

func newContext(c *Canvas) *Context {
	return &Context{
		canvas: c,
		state:  defaultState(),
		raster: vector.NewRasterizer(c.Width(), c.Height()),
	}
}

func defaultState() drawState {
	black := Solid(color.NRGBA{A: 0xff})
	return drawState{fill: black, stroke: black, lineWidth: 1, transform: identity()}
}

// SetFillStyle sets the paint used by Fill and FillRect.
func (g *Context) SetFillStyle(p Paint) {
	if p != nil {
		g.state.fill = p
	}
}

// SetFillColor is shorthand for SetFillStyle with a solid color.
func (g *Context) SetFillColor(c color.Color) {
	g.state.fill = Solid(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// SetStrokeStyle sets the paint used by Stroke.
func (g *Context) SetStrokeStyle(p Paint) {
	if p != nil {
		g.state.stroke = p
	}
}

// SetStrokeColor is shorthand for SetStrokeStyle with a solid color.
func (g *Context) SetStrokeColor(c color.Color) {
	g.state.stroke = Solid(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// SetLineWidth sets the stroke width in user units. Non-positive and NaN
// widths are ignored.
func (g *Context) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		g.state.lineWidth = w
	}
}

// Save pushes the drawing state (styles, line width, transform).
func (g *Context) Save() {
	g.stack = append(g.stack, g.state)
}

// Restore pops the most recently saved state. It is a no-op on an empty stack.
func (g *Context) Restore() {
	if len(g.stack) == 0 {
		return
	}
	g.state = g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
}

// Translate moves the origin.
func (g *Context) Translate(tx, ty float64) {
	g.state.transform = g.state.transform.translate(tx, ty)
}

// Rotate rotates by angle radians, clockwise on screen.
func (g *Context) Rotate(angle float64) {
	g.state.transform = g.state.transform.rotate(angle)
}

// ResetTransform restores the identity transform.
func (g *Context) ResetTransform() {
	g.state.transform = identity()
}

// CreateRadialGradient returns a gradient between two circles. Add stops
// before using it as a fill or stroke style.
func (g *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{x0: x0, y0: y0, r0: r0, x1: x1, y1: y1, r1: r1}
}

// ClearRect sets the pixels covered by the rectangle to transparent black.
// Under a rotating transform the rectangle's bounding box is cleared.
func (g *Context) ClearRect(x, y, w, h float64) {
	corners := g.rectPoints(x, y, w, h)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	draw.Draw(g.canvas.img, r, image.Transparent, image.Point{}, draw.Src)
}

// FillRect fills a rectangle with the fill style. The current path is left
// untouched.
func (g *Context) FillRect(x, y, w, h float64) {
	g.rasterize([][]point{g.rectPoints(x, y, w, h)}, g.state.fill)
}

// BeginPath discards the current path.
func (g *Context) BeginPath() {
	g.path = g.path[:0]
}

// MoveTo starts a new subpath.
func (g *Context) MoveTo(x, y float64) {
	px, py := g.state.transform.apply(x, y)
	g.path = append(g.path, []point{{px, py}})
}

// LineTo adds a straight segment. Without a current subpath it behaves like
// MoveTo.
func (g *Context) LineTo(x, y float64) {
	if len(g.path) == 0 {
		g.MoveTo(x, y)
		return
	}
	px, py := g.state.transform.apply(x, y)
	last := len(g.path) - 1
	g.path[last] = append(g.path[last], point{px, py})
}

// ClosePath joins the current subpath back to its start and begins a new
// subpath there.
func (g *Context) ClosePath() {
	if len(g.path) == 0 {
		return
	}
	sub := g.path[len(g.path)-1]
	if len(sub) < 2 {
		return
	}
	start := sub[0]
	g.path[len(g.path)-1] = append(sub, start)
	g.path = append(g.path, []point{start})
}

// Arc adds a clockwise circular arc from startAngle to endAngle. The arc is
// connected to the current subpath with a straight line.
func (g *Context) Arc(cx, cy, radius, startAngle, endAngle float64) {
	if radius < 0 || math.IsNaN(radius) {
		return
	}
	sweep := endAngle - startAngle
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}
	n := int(math.Ceil(sweep * radius * g.state.transform.lengthScale() / 2))
	n = max(8, min(n, 256))

	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		x := cx + math.Cos(a)*radius
		y := cy + math.Sin(a)*radius
		if i == 0 && len(g.path) == 0 {
			g.MoveTo(x, y)
			continue
		}
		g.LineTo(x, y)
	}
}

// Fill fills every subpath of the current path, closing each implicitly.
func (g *Context) Fill() {
	g.rasterize(g.path, g.state.fill)
}

// Stroke outlines the current path with the stroke style and line width.
// Joins are round.
func (g *Context) Stroke() {
	half := g.state.lineWidth * g.state.transform.lengthScale() / 2
	if half <= 0 {
		return
	}
	var polys [][]point
	for _, sub := range g.path {
		for i := 1; i < len(sub); i++ {
			if quad, ok := segmentQuad(sub[i-1], sub[i], half); ok {
				polys = append(polys, quad)
			}
			if i < len(sub)-1 {
				polys = append(polys, disc(sub[i], half))
			}
		}
	}
	g.rasterize(polys, g.state.stroke)
}

func (g *Context) rectPoints(x, y, w, h float64) []point {
	t := g.state.transform
	pts := make([]point, 0, 4)
	for _, p := range [...]point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		px, py := t.apply(p.x, p.y)
		pts = append(pts, point{px, py})
	}
	return pts
}

// rasterize fills the polygons (already in device space) with paint. Overlaps
// with the same winding do not accumulate coverage.
func (g *Context) rasterize(polys [][]point, paint Paint) {
	b := g.canvas.img.Bounds()
	if b.Empty() || paint == nil {
		return
	}
	z := g.raster
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	drawn := false
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].x), float32(poly[0].y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.x), float32(p.y))
		}
		z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	z.Draw(g.canvas.img, b, source(paint, g.state.transform, b), image.Point{})
}

// segmentQuad returns the rectangle covering a stroked segment. All quads
// share one winding so overlapping pieces merge instead of cancelling.
func segmentQuad(p, q point, half float64) ([]point, bool) {
	dx, dy := q.x-p.x, q.y-p.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, false
	}
	nx, ny := -dy/length*half, dx/length*half
	return []point{
		{p.x + nx, p.y + ny},
		{q.x + nx, q.y + ny},
		{q.x - nx, q.y - ny},
		{p.x - nx, p.y - ny},
	}, true
}

// disc approximates a round join with the same winding as segmentQuad.
func disc(c point, r float64) []point {
	const steps = 12
	pts := make([]point, 0, steps)
	for i := 0; i < steps; i++ {
		a := -2 * math.Pi * float64(i) / steps
		pts = append(pts, point{c.x + math.Cos(a)*r, c.y + math.Sin(a)*r})
	}
	return pts
}
