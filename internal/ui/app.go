package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tally/internal/animation"
	"github.com/five82/tally/internal/canvas"
	"github.com/five82/tally/internal/commands"
	"github.com/five82/tally/internal/prefs"
	"github.com/five82/tally/internal/state"
)

const (
	appTitle  = "Tally: Counter & Canvas"
	resetHint = "Click the number to reset"

	decLabel = "[ - ]"
	incLabel = "[ + ]"

	statusTTL = 3 * time.Second
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Service   *commands.Service
	ThemeName string
	PrefsPath string
	LogPath   string // shown by the console overlay; empty disables it
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	service   *commands.Service
	prefsPath string
	logPath   string
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Application state
	app       state.App
	doc       *canvas.Document
	loop      animation.Loop
	cells     *cellCache
	status    string
	statusSeq int // bumped by every setStatus; stale clears are ignored

	spinner spinner.Model
	help    help.Model

	// Overlays
	showHelp    bool
	showConsole bool
	console     viewport.Model
}

// New creates a new Bubble Tea model with an idle animation and a cleared
// canvas.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	surface := canvas.New(animation.CanvasID, animation.CanvasWidth, animation.CanvasHeight)
	doc := canvas.NewDocument(surface)
	animation.Clear(surface)

	return Model{
		ctx:       ctx,
		service:   opts.Service,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		doc:       doc,
		loop:      animation.NewLoop(doc, animation.CanvasID),
		cells:     newCellCache(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		help:      help.New(),
		console:   viewport.New(0, 0),
	}
}

// State returns a copy of the application state.
func (m Model) State() state.App {
	return m.app
}

// Canvas returns the drawing surface.
func (m Model) Canvas() *canvas.Canvas {
	c, _ := m.doc.CanvasByID(animation.CanvasID)
	return c
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeConsole()
		return m, nil

	case animation.FrameMsg:
		var cmd tea.Cmd
		m.loop, cmd = m.loop.Frame(msg, m.app.Count)
		m.app.AnimationTime = m.loop.Elapsed()
		return m, cmd

	case randomDataMsg:
		m.app.FinishFetch(string(msg))
		if m.showConsole {
			return m, readConsoleCmd(m.logPath)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.app.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("clipboard: %v", msg.err)
			cmd := m.setStatus("Clipboard unavailable")
			return m, cmd
		}
		cmd := m.setStatus("Copied to clipboard")
		return m, cmd

	case statusClearMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case consoleMsg:
		m.handleConsole(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showConsole {
		return m.renderConsole()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showConsole {
		return m.handleConsoleKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Increment):
		m.app.Increment()
	case key.Matches(msg, m.keys.Decrement):
		m.app.Decrement()
	case key.Matches(msg, m.keys.Reset):
		m.app.Reset()
	case key.Matches(msg, m.keys.ToggleAnimation):
		return m.toggleAnimation()
	case key.Matches(msg, m.keys.Fetch):
		return m.fetch()
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.app.RandomData)
	case key.Matches(msg, m.keys.Console):
		return m.openConsole()
	case key.Matches(msg, m.keys.CycleTheme):
		cmd := m.cycleTheme()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// handleMouse maps left clicks on the main view to the same events as keys.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showConsole {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	l := m.computeLayout()
	switch {
	case l.dec.contains(msg.X, msg.Y):
		m.app.Decrement()
	case l.inc.contains(msg.X, msg.Y):
		m.app.Increment()
	case l.count.contains(msg.X, msg.Y):
		m.app.Reset()
	case l.toggle.contains(msg.X, msg.Y):
		return m.toggleAnimation()
	case l.fetch.contains(msg.X, msg.Y):
		return m.fetch()
	}
	return m, nil
}

// toggleAnimation starts an idle loop or stops a running one.
func (m Model) toggleAnimation() (tea.Model, tea.Cmd) {
	if m.loop.Running() {
		m.loop = m.loop.Stop()
		m.app.AnimationRunning = false
		return m, nil
	}
	var cmd tea.Cmd
	m.loop, cmd = m.loop.Start(time.Now())
	m.app.AnimationRunning = true
	m.app.AnimationTime = 0
	return m, cmd
}

// fetch issues one random-data request unless one is already in flight.
func (m Model) fetch() (tea.Model, tea.Cmd) {
	if !m.app.BeginFetch() {
		return m, nil
	}
	return m, tea.Batch(fetchCmd(m.ctx, m.service), m.spinner.Tick)
}

func (m *Model) cycleTheme() tea.Cmd {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.cells = newCellCache()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Printf("save prefs: %v", err)
		}
	}
	log.Printf("theme: %s", m.theme.Name)
	return m.setStatus("Theme: " + m.theme.Name)
}

// setStatus shows s in the footer and schedules its removal after statusTTL.
func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg(seq)
	})
}

func (m Model) countText() string {
	return strconv.Itoa(m.app.Count)
}

func (m Model) toggleLabel() string {
	if m.app.AnimationRunning {
		return "[ ⏸ Stop Animation ]"
	}
	return "[ ▶ Start Animation ]"
}

func (m Model) fetchLabel() string {
	if m.app.Loading {
		return "[ " + m.spinner.View() + " 🔄 Loading... ]"
	}
	return "[ 🎲 Get Random Data ]"
}

// renderMain renders the counter, canvas, buttons and fetched text.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	l := m.computeLayout()
	margin := strings.Repeat(" ", leftMargin)
	textWidth := m.width - 2*leftMargin

	var lines []string
	add := func(s string) { lines = append(lines, s) }

	add(margin + styles.Title.Render(truncate(appTitle, textWidth)))
	add("")

	counterRow := margin +
		styles.Button.Render(decLabel) + strings.Repeat(" ", buttonGap) +
		styles.Counter.Render(m.countText()) + strings.Repeat(" ", buttonGap) +
		styles.Button.Render(incLabel)
	add(counterRow)
	add(margin + styles.MutedText.Render(truncate(resetHint, textWidth)))
	add("")

	for _, row := range renderCanvas(m.Canvas(), l.canvasScale, m.theme.BackgroundColor(), m.cells) {
		add(margin + row)
	}
	add("")

	toggleStyle, fetchStyle := styles.Button, styles.Button
	if m.app.AnimationRunning {
		toggleStyle = styles.Pressed
	}
	if m.app.Loading {
		fetchStyle = styles.Pressed
	}
	add(margin + toggleStyle.Render(m.toggleLabel()) + strings.Repeat(" ", buttonGap) + fetchStyle.Render(m.fetchLabel()))
	add("")

	// Fetched text and fetch failures share one style.
	if m.app.RandomData != "" {
		for _, line := range wrap(m.app.RandomData, textWidth) {
			add(margin + styles.Data.Render(line))
		}
	}

	// Footer pinned to the last row when there is room.
	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		footer = styles.Status.Render(truncate(m.status, textWidth))
	}
	for len(lines) < m.height-1 {
		add("")
	}
	add(margin + footer)

	return strings.Join(lines, "\n")
}

// Messages

type randomDataMsg string

type clipboardMsg struct {
	err error
}

// statusClearMsg removes the footer status set with the same sequence number.
type statusClearMsg int

// Commands

// fetchCmd crosses into the command layer by name, the way any caller of the
// service would. Errors are turned into their display text.
func fetchCmd(ctx context.Context, svc *commands.Service) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return randomDataMsg("Failed to fetch advice: no command service")
		}
		text, err := svc.Invoke(ctx, commands.CommandGetRandomData, nil)
		if err != nil {
			return randomDataMsg(err.Error())
		}
		return randomDataMsg(text)
	}
}

func copyCmd(text string) tea.Cmd {
	if text == "" || text == state.LoadingText {
		return nil
	}
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			// Interrupted by signal; not a failure.
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
