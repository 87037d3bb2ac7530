package canvas

import (
	"image"
	"image/color"
)

// Canvas is a fixed-size RGBA drawing surface addressed by an id.
type Canvas struct {
	id  string
	img *image.RGBA
	ctx *Context
}

// New allocates a transparent canvas.
func New(id string, width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		id:  id,
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	c.ctx = newContext(c)
	return c
}

// ID returns the canvas identifier.
func (c *Canvas) ID() string { return c.id }

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image exposes the backing image. Callers must not retain it across frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Context2D returns the canvas's drawing context. Every call returns the same
// context, so state set through one reference is visible through another.
func (c *Canvas) Context2D() *Context { return c.ctx }

// At returns the non-premultiplied color of a pixel. Out of range pixels are
// transparent.
func (c *Canvas) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(c.img.RGBAAt(x, y)).(color.NRGBA)
}

// Average returns the mean color of the pixels in r, clipped to the canvas.
func (c *Canvas) Average(r image.Rectangle) color.NRGBA {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return color.NRGBA{}
	}
	var sr, sg, sb, sa, n uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := c.img.RGBAAt(x, y)
			sr += uint64(p.R)
			sg += uint64(p.G)
			sb += uint64(p.B)
			sa += uint64(p.A)
			n++
		}
	}
	avg := color.RGBA{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n), A: uint8(sa / n)}
	return color.NRGBAModel.Convert(avg).(color.NRGBA)
}

// IsBlank reports whether every pixel is fully transparent.
func (c *Canvas) IsBlank() bool {
	for _, v := range c.img.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// Document holds canvases by id, the way a page holds its elements.
type Document struct {
	canvases map[string]*Canvas
}

// NewDocument returns a document containing the given canvases.
func NewDocument(canvases ...*Canvas) *Document {
	d := &Document{canvases: make(map[string]*Canvas, len(canvases))}
	for _, c := range canvases {
		d.Add(c)
	}
	return d
}

// Add registers c, replacing any canvas with the same id.
func (d *Document) Add(c *Canvas) {
	if c == nil {
		return
	}
	d.canvases[c.ID()] = c
}

// CanvasByID looks up a canvas.
func (d *Document) CanvasByID(id string) (*Canvas, bool) {
	if d == nil {
		return nil, false
	}
	c, ok := d.canvases[id]
	return c, ok
}
