package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the TUI keybindings.
type keyMap struct {
	Quit       key.Binding
	SwitchPane key.Binding
	Down       key.Binding
	Up         key.Binding
	HalfDown   key.Binding
	HalfUp     key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Select     key.Binding
	ToggleSync key.Binding
	NextDoc    key.Binding
	PrevDoc    key.Binding
	Yank       key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select entity"),
		),
		ToggleSync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sync"),
		),
		NextDoc: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next document"),
		),
		PrevDoc: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous document"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank entity text"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Select, k.ToggleSync, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped in columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.HalfDown, k.HalfUp, k.Top, k.Bottom},
		{k.SwitchPane, k.Select, k.Yank, k.ToggleSync},
		{k.NextDoc, k.PrevDoc, k.Help, k.Quit},
	}
}
