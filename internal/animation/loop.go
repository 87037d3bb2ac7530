package animation

import (
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tally/internal/canvas"
)

// FrameDelay is the pause between the end of one frame and the next (~60fps).
const FrameDelay = 16 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg asks the loop to paint the next frame.
type FrameMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Loop is the render loop. It is either idle (nothing scheduled) or running
// (exactly one frame command outstanding). Like the bubbles components it is a
// value type: methods return the updated Loop.
type Loop struct {
	id        int
	tag       int
	running   bool
	startedAt time.Time
	elapsed   float64

	doc      *canvas.Document
	canvasID string
}

// NewLoop returns an idle loop drawing on the canvas with canvasID in doc.
func NewLoop(doc *canvas.Document, canvasID string) Loop {
	return Loop{id: nextID(), doc: doc, canvasID: canvasID}
}

// ID identifies the loop's frame messages.
func (l Loop) ID() int { return l.id }

// Running reports whether frames are being scheduled.
func (l Loop) Running() bool { return l.running }

// Elapsed returns milliseconds between the start and the last painted frame.
func (l Loop) Elapsed() float64 { return l.elapsed }

// Start moves an idle loop to running, clears the canvas and returns the
// command for the first frame, which fires immediately. Starting a running
// loop restarts it.
func (l Loop) Start(now time.Time) (Loop, tea.Cmd) {
	l.tag++
	l.running = true
	l.startedAt = now
	l.elapsed = 0
	Clear(l.canvas())
	log.Printf("animation %d: starting", l.id)

	id, tag := l.id, l.tag
	return l, func() tea.Msg {
		return FrameMsg{ID: id, Time: now, tag: tag}
	}
}

// Stop moves the loop to idle and clears the canvas. A frame already in
// flight is dropped when it arrives. Stopping an idle loop only clears.
func (l Loop) Stop() Loop {
	if l.running {
		log.Printf("animation %d: stopping", l.id)
	}
	l.tag++
	l.running = false
	Clear(l.canvas())
	return l
}

// Frame paints one frame for msg and schedules the next one FrameDelay later.
// Messages for other loops are ignored; messages arriving while idle clear
// the canvas and schedule nothing.
func (l Loop) Frame(msg FrameMsg, count int) (Loop, tea.Cmd) {
	if msg.ID != l.id {
		return l, nil
	}
	if !l.running {
		Clear(l.canvas())
		return l, nil
	}
	if msg.tag != l.tag {
		// A frame from before a restart; the current chain owns the canvas.
		return l, nil
	}

	if ms := float64(msg.Time.Sub(l.startedAt)) / float64(time.Millisecond); ms > 0 {
		l.elapsed = ms
	}
	Draw(l.canvas(), l.elapsed, count)
	return l, l.next()
}

func (l Loop) next() tea.Cmd {
	id, tag := l.id, l.tag
	return tea.Tick(FrameDelay, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t, tag: tag}
	})
}

func (l Loop) canvas() *canvas.Canvas {
	c, ok := l.doc.CanvasByID(l.canvasID)
	if !ok {
		return nil
	}
	return c
}
