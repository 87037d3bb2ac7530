package animation

import (
	"math"

	"github.com/five82/tally/internal/canvas"
)

// Canvas identity and size used by the application.
const (
	CanvasID     = "myCanvas"
	CanvasWidth  = 300
	CanvasHeight = 200
)

const maxSpeed = 3.0

// SpeedMultiplier scales motion by the counter magnitude, clamped to 3.
func SpeedMultiplier(count int) float64 {
	magnitude := math.Abs(float64(count))
	return math.Min(magnitude*0.1+1, maxSpeed)
}

// Clear wipes the canvas and paints the radial background.
func Clear(c *canvas.Canvas) {
	if c == nil {
		return
	}
	g := c.Context2D()
	w, h := float64(c.Width()), float64(c.Height())
	g.ClearRect(0, 0, w, h)

	grad := g.CreateRadialGradient(w*0.5, h*0.5, 0, w*0.5, h*0.5, w*0.7)
	grad.AddColorStop(0, canvas.RGBA(20, 30, 48, 0.9))
	grad.AddColorStop(1, canvas.RGBA(36, 59, 85, 0.7))
	g.Save()
	g.ResetTransform()
	g.SetFillStyle(grad)
	g.FillRect(0, 0, w, h)
	g.Restore()
}

// Draw paints one frame for elapsedMs milliseconds into the animation and the
// current counter value. The frame is a pure function of its inputs.
func Draw(c *canvas.Canvas, elapsedMs float64, count int) {
	if c == nil {
		return
	}
	Clear(c)

	g := c.Context2D()
	w, h := float64(c.Width()), float64(c.Height())
	t := elapsedMs * 0.001
	speed := SpeedMultiplier(count)

	drawBalls(g, w, h, t, speed)
	drawSquares(g, w, h, t, speed)
	drawSpiral(g, w, h, t, speed)
	drawPulse(g, w, h, t)
}

// drawBalls paints three circles moving on Lissajous paths.
func drawBalls(g *canvas.Context, w, h, t, speed float64) {
	for i := 0; i < 3; i++ {
		fi := float64(i)
		phase := fi * 2.1
		ballSpeed := speed * (1 + fi*0.3)

		x := w*0.5 + math.Sin(t*ballSpeed+phase)*(w*0.3)
		y := h*0.5 + math.Cos(t*ballSpeed*1.5+phase)*(h*0.25)
		radius := 8 + math.Abs(math.Sin(t+phase))*5

		g.SetFillColor(canvas.HSL(hue(t*50+fi*120), 0.7, 0.6))
		g.BeginPath()
		g.Arc(x, y, radius, 0, 2*math.Pi)
		g.Fill()
	}
}

// drawSquares paints two squares spinning in place at a quarter and three
// quarters of the width.
func drawSquares(g *canvas.Context, w, h, t, speed float64) {
	for i := 0; i < 2; i++ {
		fi := float64(i)
		phase := fi * math.Pi
		rotation := speed * (0.5 + fi*0.2)

		cx := w * (0.25 + fi*0.5)
		cy := h * 0.5
		size := 20 + math.Abs(math.Sin(t*2+phase))*10

		g.Save()
		g.Translate(cx, cy)
		g.Rotate(t * rotation)
		g.SetFillColor(canvas.HSL(hue(t*30+fi*180), 0.8, 0.5))
		half := size / 2
		g.BeginPath()
		g.MoveTo(-half, -half)
		g.LineTo(half, -half)
		g.LineTo(half, half)
		g.LineTo(-half, half)
		g.ClosePath()
		g.Fill()
		g.Restore()
	}
}

const spiralPoints = 50

func drawSpiral(g *canvas.Context, w, h, t, speed float64) {
	g.SetStrokeColor(canvas.RGBA(255, 255, 255, 0.6))
	g.SetLineWidth(2)
	g.BeginPath()

	cx, cy := w*0.5, h*0.5
	spin := speed * 0.3
	for i := 0; i < spiralPoints; i++ {
		angle := float64(i)*0.3 + t*spin
		radius := float64(i) * 2
		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius
		if i == 0 {
			g.MoveTo(x, y)
		} else {
			g.LineTo(x, y)
		}
	}
	g.Stroke()
}

func drawPulse(g *canvas.Context, w, h, t float64) {
	radius := 15 + math.Abs(math.Sin(t*4))*10
	alpha := 0.3 + math.Abs(math.Sin(t*3))*0.4

	g.SetFillColor(canvas.RGBA(255, 255, 255, alpha))
	g.BeginPath()
	g.Arc(w*0.5, h*0.5, radius, 0, 2*math.Pi)
	g.Fill()
}

// hue truncates to whole degrees in [0, 360).
func hue(deg float64) float64 {
	return math.Mod(math.Trunc(deg), 360)
}
