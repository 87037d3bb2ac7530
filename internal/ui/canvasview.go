package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/tally/internal/canvas"
)

const (
	halfBlock = "▀"

	// Channel quantization for the cell cache. Neighbouring shades share a
	// rendered cell, which keeps the cache small during gradients.
	quantStep = 4

	maxCachedCells = 8192
)

// cellCache memoizes rendered half-block cells by their quantized colors.
type cellCache struct {
	cells map[uint64]string
}

func newCellCache() *cellCache {
	return &cellCache{cells: make(map[uint64]string)}
}

func (c *cellCache) cell(top, bottom colorful.Color) string {
	tr, tg, tb := quantize(top)
	br, bg, bb := quantize(bottom)
	k := uint64(tr)<<40 | uint64(tg)<<32 | uint64(tb)<<24 | uint64(br)<<16 | uint64(bg)<<8 | uint64(bb)
	if s, ok := c.cells[k]; ok {
		return s
	}
	if len(c.cells) >= maxCachedCells {
		clear(c.cells)
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexOf(tr, tg, tb))).
		Background(lipgloss.Color(hexOf(br, bg, bb))).
		Render(halfBlock)
	c.cells[k] = s
	return s
}

func quantize(c colorful.Color) (uint8, uint8, uint8) {
	r, g, b := c.Clamped().RGB255()
	return r / quantStep * quantStep, g / quantStep * quantStep, b / quantStep * quantStep
}

func hexOf(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// over composites a straight-alpha pixel onto an opaque backdrop.
func over(px color.NRGBA, backdrop colorful.Color) colorful.Color {
	if px.A == 0 {
		return backdrop
	}
	src := colorful.Color{
		R: float64(px.R) / 255,
		G: float64(px.G) / 255,
		B: float64(px.B) / 255,
	}
	return backdrop.BlendRgb(src, float64(px.A)/255)
}

// renderCanvas draws the surface as rows of half-block cells. Each cell shows
// the average of a scale×scale block in its upper and lower halves.
func renderCanvas(c *canvas.Canvas, scale int, backdrop colorful.Color, cache *cellCache) []string {
	if c == nil || scale <= 0 {
		return nil
	}
	cols := c.Width() / scale
	rows := (c.Height()/scale + 1) / 2

	lines := make([]string, 0, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		topY := 2 * row * scale
		botY := topY + scale
		for col := 0; col < cols; col++ {
			x := col * scale
			top := over(c.Average(image.Rect(x, topY, x+scale, topY+scale)), backdrop)
			bottom := backdrop
			if botY < c.Height() {
				bottom = over(c.Average(image.Rect(x, botY, x+scale, botY+scale)), backdrop)
			}
			b.WriteString(cache.cell(top, bottom))
		}
		lines = append(lines, b.String())
	}
	return lines
}
