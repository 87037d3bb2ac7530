package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Counter
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding

	// Actions
	ToggleAnimation key.Binding
	Fetch           key.Binding
	Copy            key.Binding

	// Global
	Console    key.Binding
	CycleTheme key.Binding
	Help       key.Binding
	Close      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+/→", "Increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-/←", "Decrement"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0", "r"),
			key.WithHelp("0/r", "Reset counter"),
		),

		ToggleAnimation: key.NewBinding(
			key.WithKeys("a", " "),
			key.WithHelp("a/space", "Start/stop animation"),
		),
		Fetch: key.NewBinding(
			key.WithKeys("f", "enter"),
			key.WithHelp("f/enter", "Get random data"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy fetched text"),
		),

		Console: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle console"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.ToggleAnimation, k.Fetch, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.Reset},
		{k.ToggleAnimation, k.Fetch, k.Copy},
		{k.Console, k.CycleTheme, k.Help, k.Close, k.Quit},
	}
}
