package canvas

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint colors a point given in user space. Solid colors and gradients both
// implement it.
type Paint interface {
	colorAt(x, y float64) color.NRGBA
}

// Solid is a single flat color.
type Solid color.NRGBA

func (s Solid) colorAt(_, _ float64) color.NRGBA { return color.NRGBA(s) }

// RGBA builds a color from 8-bit channels and a 0..1 alpha, like CSS rgba().
func RGBA(r, g, b uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: unitToByte(alpha)}
}

// HSL builds an opaque color from hue in degrees and saturation/lightness in
// 0..1, like CSS hsl().
func HSL(hue, saturation, lightness float64) color.NRGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 255))
}

type colorStop struct {
	offset float64
	color  colorful.Color
	alpha  float64
}

// RadialGradient paints between two circles. Only the outer circle's centre
// is used for distance, which is exact for concentric circles.
type RadialGradient struct {
	x0, y0, r0 float64
	x1, y1, r1 float64
	stops      []colorStop
}

// AddColorStop adds a stop at offset 0..1. Stops are kept sorted by offset,
// ties keep insertion order.
func (g *RadialGradient) AddColorStop(offset float64, c color.Color) {
	offset = math.Max(0, math.Min(1, offset))
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	g.stops = append(g.stops, colorStop{
		offset: offset,
		color:  colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255},
		alpha:  float64(n.A) / 255,
	})
	sort.SliceStable(g.stops, func(i, j int) bool { return g.stops[i].offset < g.stops[j].offset })
}

func (g *RadialGradient) colorAt(x, y float64) color.NRGBA {
	if len(g.stops) == 0 {
		return color.NRGBA{}
	}
	t := 0.0
	if span := g.r1 - g.r0; span != 0 {
		t = (math.Hypot(x-g.x1, y-g.y1) - g.r0) / span
	}
	t = math.Max(0, math.Min(1, t))

	first := g.stops[0]
	if t <= first.offset {
		return stopColor(first.color, first.alpha)
	}
	for i := 1; i < len(g.stops); i++ {
		next := g.stops[i]
		if t > next.offset {
			continue
		}
		prev := g.stops[i-1]
		frac := 0.0
		if width := next.offset - prev.offset; width > 0 {
			frac = (t - prev.offset) / width
		}
		return stopColor(prev.color.BlendRgb(next.color, frac), prev.alpha+(next.alpha-prev.alpha)*frac)
	}
	last := g.stops[len(g.stops)-1]
	return stopColor(last.color, last.alpha)
}

func stopColor(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: unitToByte(alpha)}
}

// paintImage adapts a Paint to an image.Image in device space so it can be
// used as a rasterizer source.
type paintImage struct {
	paint   Paint
	inverse matrix
	bounds  image.Rectangle
}

func (p paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (p paintImage) Bounds() image.Rectangle { return p.bounds }

func (p paintImage) At(x, y int) color.Color {
	ux, uy := p.inverse.apply(float64(x)+0.5, float64(y)+0.5)
	return p.paint.colorAt(ux, uy)
}

// source returns the cheapest image.Image that renders paint under transform.
func source(paint Paint, transform matrix, bounds image.Rectangle) image.Image {
	if solid, ok := paint.(Solid); ok {
		return image.NewUniform(color.NRGBA(solid))
	}
	return paintImage{paint: paint, inverse: transform.invert(), bounds: bounds}
}
