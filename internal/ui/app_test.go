package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/tally/internal/animation"
	"github.com/five82/tally/internal/commands"
	"github.com/five82/tally/internal/prefs"
	"github.com/five82/tally/internal/state"
)

type stubFetcher struct {
	text string
	err  error
}

func (s stubFetcher) RandomData(context.Context) (string, error) {
	return s.text, s.err
}

func newTestModel(t *testing.T, f stubFetcher) Model {
	t.Helper()
	m := New(Options{
		Service:   commands.New(f),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	return next.(Model)
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestCounterKeys(t *testing.T) {
	m := newTestModel(t, stubFetcher{})

	m, _ = press(t, m, runeKey("+"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.State().Count; got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}

	m, _ = press(t, m, runeKey("-"))
	if got := m.State().Count; got != 1 {
		t.Fatalf("Count = %d, want 1", got)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.State().Count; got != -1 {
		t.Fatalf("Count = %d, want -1", got)
	}

	m, _ = press(t, m, runeKey("r"))
	if got := m.State().Count; got != 0 {
		t.Fatalf("Count after reset = %d, want 0", got)
	}
}

func TestToggleAnimation(t *testing.T) {
	m := newTestModel(t, stubFetcher{})

	m, cmd := press(t, m, runeKey("a"))
	if !m.State().AnimationRunning {
		t.Fatalf("AnimationRunning = false after toggle on")
	}
	if cmd == nil {
		t.Fatalf("toggle on returned nil cmd, want first frame")
	}
	frame, ok := cmd().(animation.FrameMsg)
	if !ok {
		t.Fatalf("first frame cmd returned %T, want animation.FrameMsg", cmd())
	}

	m, cmd = press(t, m, frame)
	if cmd == nil {
		t.Fatalf("frame while running returned nil cmd, want next frame")
	}

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.State().AnimationRunning {
		t.Fatalf("AnimationRunning = true after toggle off")
	}
	if cmd != nil {
		t.Fatalf("toggle off returned a cmd, want nil")
	}

	// The frame that was in flight when the loop stopped schedules nothing.
	later := frame
	later.Time = frame.Time.Add(20 * time.Millisecond)
	if _, cmd = press(t, m, later); cmd != nil {
		t.Fatalf("stale frame scheduled another frame")
	}

	// Stopped canvas shows only the background.
	fresh := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	for _, p := range [][2]int{{150, 100}, {10, 10}, {290, 190}} {
		got, want := m.Canvas().At(p[0], p[1]), fresh.Canvas().At(p[0], p[1])
		if got != want {
			t.Fatalf("canvas at %v = %v, want background %v", p, got, want)
		}
	}
}

func TestFetchStoresResultVerbatim(t *testing.T) {
	const fact = "🐱 Cat Fact: Cats sleep a lot."
	m := newTestModel(t, stubFetcher{text: fact})

	m, cmd := press(t, m, runeKey("f"))
	st := m.State()
	if !st.Loading || st.RandomData != state.LoadingText {
		t.Fatalf("state after fetch = %+v, want loading", st)
	}
	if cmd == nil {
		t.Fatalf("fetch returned nil cmd")
	}

	// A second request while loading is ignored.
	if _, again := press(t, m, tea.KeyMsg{Type: tea.KeyEnter}); again != nil {
		t.Fatalf("second fetch while loading returned a cmd")
	}

	result := fetchCmd(context.Background(), m.service)()
	m, _ = press(t, m, result)
	st = m.State()
	if st.Loading {
		t.Fatalf("Loading = true after result")
	}
	if st.RandomData != fact {
		t.Fatalf("RandomData = %q, want %q", st.RandomData, fact)
	}
}

func TestFetchErrorShownAsText(t *testing.T) {
	m := newTestModel(t, stubFetcher{err: errors.New("Failed to fetch advice: boom")})

	m, _ = press(t, m, runeKey("f"))
	m, _ = press(t, m, fetchCmd(context.Background(), m.service)())
	if got := m.State().RandomData; got != "Failed to fetch advice: boom" {
		t.Fatalf("RandomData = %q, want error text", got)
	}
}

func TestFetchErrorUsesDataStyle(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	const text = "Failed to fetch advice: boom"
	m := newTestModel(t, stubFetcher{err: errors.New(text)})
	m, _ = press(t, m, runeKey("f"))
	m, _ = press(t, m, fetchCmd(context.Background(), m.service)())

	styles := m.theme.Styles()
	asData, asFailure := styles.Data.Render(text), styles.Failure.Render(text)
	if asData == asFailure {
		t.Fatalf("Data and Failure render identically: %q", asData)
	}
	view := m.View()
	if !strings.Contains(view, asData) {
		t.Fatalf("view does not render the failure text in the data style")
	}
	if strings.Contains(view, asFailure) {
		t.Fatalf("view renders the failure text in the failure style")
	}
}

func TestFetchCmd_NilService(t *testing.T) {
	msg := fetchCmd(context.Background(), nil)()
	if got, ok := msg.(randomDataMsg); !ok || !strings.HasPrefix(string(got), "Failed to ") {
		t.Fatalf("fetchCmd(nil) = %#v, want failure text", msg)
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouseClicksMatchLayout(t *testing.T) {
	m := newTestModel(t, stubFetcher{text: "x"})
	l := m.computeLayout()

	m, _ = press(t, m, click(l.inc.x0, l.inc.row))
	m, _ = press(t, m, click(l.inc.x1-1, l.inc.row))
	if got := m.State().Count; got != 2 {
		t.Fatalf("Count after two increment clicks = %d, want 2", got)
	}

	m, _ = press(t, m, click(l.dec.x0, l.dec.row))
	if got := m.State().Count; got != 1 {
		t.Fatalf("Count after decrement click = %d, want 1", got)
	}

	l = m.computeLayout()
	m, _ = press(t, m, click(l.count.x0, l.count.row))
	if got := m.State().Count; got != 0 {
		t.Fatalf("Count after clicking the number = %d, want 0", got)
	}

	l = m.computeLayout()
	m, cmd := press(t, m, click(l.toggle.x0, l.toggle.row))
	if !m.State().AnimationRunning || cmd == nil {
		t.Fatalf("toggle click did not start the animation")
	}

	l = m.computeLayout()
	m, cmd = press(t, m, click(l.fetch.x0+1, l.fetch.row))
	if !m.State().Loading || cmd == nil {
		t.Fatalf("fetch click did not start a fetch")
	}

	// Clicks between zones do nothing.
	before := m.State()
	m, _ = press(t, m, click(l.toggle.x1, l.toggle.row))
	if m.State() != before {
		t.Fatalf("click in gap changed state: %+v -> %+v", before, m.State())
	}
}

func TestMouseIgnoresNonPress(t *testing.T) {
	m := newTestModel(t, stubFetcher{})
	l := m.computeLayout()
	msg := click(l.inc.x0, l.inc.row)
	msg.Action = tea.MouseActionRelease
	m, _ = press(t, m, msg)
	if got := m.State().Count; got != 0 {
		t.Fatalf("Count = %d, want 0 for a release event", got)
	}
}

func TestCycleThemePersists(t *testing.T) {
	m := newTestModel(t, stubFetcher{})
	if m.theme.Name != prefs.DefaultTheme {
		t.Fatalf("theme = %q, want %q", m.theme.Name, prefs.DefaultTheme)
	}

	m, cmd := press(t, m, runeKey("T"))
	if cmd == nil {
		t.Fatalf("theme change returned nil cmd, want status clear tick")
	}
	want := NextTheme(prefs.DefaultTheme)
	if m.theme.Name != want {
		t.Fatalf("theme = %q, want %q", m.theme.Name, want)
	}

	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != want {
		t.Fatalf("saved theme = %q, want %q", saved.Theme, want)
	}
}

func TestStatusClearsOnTick(t *testing.T) {
	m := newTestModel(t, stubFetcher{})

	m, cmd := press(t, m, clipboardMsg{})
	if m.status != "Copied to clipboard" {
		t.Fatalf("status = %q, want %q", m.status, "Copied to clipboard")
	}
	if cmd == nil {
		t.Fatalf("clipboard result returned nil cmd, want status clear tick")
	}
	first := statusClearMsg(m.statusSeq)

	m, _ = press(t, m, clipboardMsg{err: errors.New("no clipboard")})
	m, _ = press(t, m, first)
	if m.status != "Clipboard unavailable" {
		t.Fatalf("status after stale clear = %q, want %q", m.status, "Clipboard unavailable")
	}

	m, _ = press(t, m, statusClearMsg(m.statusSeq))
	if m.status != "" {
		t.Fatalf("status after clear = %q, want empty", m.status)
	}
	if strings.Contains(m.View(), "Clipboard unavailable") {
		t.Fatalf("view still shows the cleared status")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, stubFetcher{})

	m, _ = press(t, m, runeKey("?"))
	if !m.showHelp {
		t.Fatalf("showHelp = false after ?")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}

	m, _ = press(t, m, runeKey("+"))
	if m.showHelp {
		t.Fatalf("showHelp = true after a key")
	}
	if got := m.State().Count; got != 0 {
		t.Fatalf("key that closed help also changed Count to %d", got)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, stubFetcher{})
	_, cmd := press(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatalf("q returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q cmd returned %T, want tea.QuitMsg", cmd())
	}
}

func TestViewShowsLabels(t *testing.T) {
	m := newTestModel(t, stubFetcher{})

	view := m.View()
	for _, want := range []string{appTitle, resetHint, "▶ Start Animation", "🎲 Get Random Data"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	m, _ = press(t, m, runeKey("a"))
	m, _ = press(t, m, runeKey("f"))
	view = m.View()
	for _, want := range []string{"⏸ Stop Animation", "🔄 Loading...", state.LoadingText} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q before the first size message", got)
	}
}
