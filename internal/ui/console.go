package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tally/internal/logtail"
)

const (
	consoleMaxLines = 500
	consoleChrome   = 4 // title, rule, blank and footer rows
)

type consoleMsg struct {
	lines []string
	err   error
}

func readConsoleCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, consoleMaxLines)
		return consoleMsg{lines: lines, err: err}
	}
}

func (m Model) openConsole() (tea.Model, tea.Cmd) {
	m.showConsole = true
	m.resizeConsole()
	if m.logPath == "" {
		m.console.SetContent(m.theme.Styles().MutedText.Render("Logging to file is disabled."))
		return m, nil
	}
	return m, readConsoleCmd(m.logPath)
}

func (m Model) handleConsoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Console) || key.Matches(msg, m.keys.Close) {
		m.showConsole = false
		return m, nil
	}
	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	return m, cmd
}

func (m *Model) handleConsole(msg consoleMsg) {
	styles := m.theme.Styles()
	if msg.err != nil {
		m.console.SetContent(styles.Failure.Render(msg.err.Error()))
		return
	}
	if len(msg.lines) == 0 {
		m.console.SetContent(styles.MutedText.Render("No log output yet."))
		return
	}
	width := m.console.Width
	lines := make([]string, len(msg.lines))
	for i, line := range msg.lines {
		lines[i] = truncate(line, width)
	}
	m.console.SetContent(strings.Join(logtail.HighlightLines(lines, m.theme.LogStyles()), "\n"))
	m.console.GotoBottom()
}

func (m *Model) resizeConsole() {
	m.console.Width = max(m.width-2*leftMargin, 0)
	m.console.Height = max(m.height-consoleChrome, 0)
}

func (m Model) renderConsole() string {
	styles := m.theme.Styles()
	margin := strings.Repeat(" ", leftMargin)
	rule := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border)).
		Render(strings.Repeat("─", max(m.width-2*leftMargin, 0)))

	var b strings.Builder
	b.WriteString(margin + styles.Title.Render("Console") + "  " + styles.Status.Render(truncate(m.logPath, m.width/2)))
	b.WriteString("\n")
	b.WriteString(margin + rule)
	b.WriteString("\n")
	for _, line := range strings.Split(m.console.View(), "\n") {
		b.WriteString(margin + line + "\n")
	}
	b.WriteString(margin + m.help.ShortHelpView([]key.Binding{m.keys.Close, m.keys.Quit}))
	return b.String()
}
