// Package canvas implements a small raster drawing surface with an HTML
// canvas style 2-D context.
//
// A Canvas owns an RGBA image and one Context. The context supports
// rectangles, arcs and polylines, solid colors and radial gradients, and a
// save/restore stack for styles and transforms:
//
//	c := canvas.New("myCanvas", 300, 200)
//	g := c.Context2D()
//	g.SetFillColor(canvas.HSL(210, 0.7, 0.6))
//	g.BeginPath()
//	g.Arc(150, 100, 12, 0, 2*math.Pi)
//	g.Fill()
//
// Paths are rasterized with golang.org/x/image/vector using source-over
// compositing. A Document maps ids to canvases so callers can look a surface
// up by name.
package canvas
