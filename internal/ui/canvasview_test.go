package ui

import (
	"image/color"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/tally/internal/animation"
	"github.com/five82/tally/internal/canvas"
)

func TestCanvasScale(t *testing.T) {
	cases := []struct {
		cols, rows int
		want       int
	}{
		{300, 100, 1},
		{200, 100, 2},
		{96, 39, 4},
		{60, 20, 5},
		{10, 5, maxCanvasScale},
	}
	for _, tc := range cases {
		if got := canvasScale(tc.cols, tc.rows); got != tc.want {
			t.Fatalf("canvasScale(%d, %d) = %d, want %d", tc.cols, tc.rows, got, tc.want)
		}
	}
}

func TestRenderCanvas_Dimensions(t *testing.T) {
	c := canvas.New(animation.CanvasID, animation.CanvasWidth, animation.CanvasHeight)
	animation.Clear(c)

	lines := renderCanvas(c, 5, colorful.Color{}, newCellCache())
	if len(lines) != 20 {
		t.Fatalf("rows = %d, want 20", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 60 {
			t.Fatalf("row %d has %d cells, want 60", i, n)
		}
	}

	if got := renderCanvas(nil, 5, colorful.Color{}, newCellCache()); got != nil {
		t.Fatalf("renderCanvas(nil) = %v, want nil", got)
	}
}

func TestOver(t *testing.T) {
	backdrop := colorful.Color{R: 0, G: 0, B: 1}

	if got := over(color.NRGBA{}, backdrop); got != backdrop {
		t.Fatalf("over(transparent) = %v, want backdrop", got)
	}

	got := over(color.NRGBA{R: 255, A: 255}, backdrop)
	if r, g, b := got.RGB255(); r != 255 || g != 0 || b != 0 {
		t.Fatalf("over(opaque red) = %d,%d,%d, want 255,0,0", r, g, b)
	}

	half := over(color.NRGBA{R: 255, A: 128}, backdrop)
	if half.R < 0.45 || half.R > 0.55 || half.B < 0.45 || half.B > 0.55 {
		t.Fatalf("over(half red) = %v, want an even mix", half)
	}
}

func TestCellCache_QuantizesAndBounds(t *testing.T) {
	cache := newCellCache()
	a := colorful.Color{R: 100.0 / 255, G: 0, B: 0}
	b := colorful.Color{R: 101.0 / 255, G: 0, B: 0}

	cache.cell(a, a)
	cache.cell(b, b)
	if len(cache.cells) != 1 {
		t.Fatalf("cache holds %d cells, want 1 for neighbouring shades", len(cache.cells))
	}

	for i := 0; i < maxCachedCells+10; i++ {
		c := colorful.Color{R: float64(i%64) * 4 / 255, G: float64(i/64%64) * 4 / 255, B: float64(i/4096) * 4 / 255}
		cache.cell(c, c)
	}
	if len(cache.cells) > maxCachedCells {
		t.Fatalf("cache grew to %d, want <= %d", len(cache.cells), maxCachedCells)
	}
}
