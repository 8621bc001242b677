package ui

import "github.com/charmbracelet/bubbles/key"

// browserKeys is the browser key map. It implements help.KeyMap.
type browserKeys struct {
	NextEnum key.Binding
	PrevEnum key.Binding
	Up       key.Binding
	Down     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		NextEnum: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "next enumeration"),
		),
		PrevEnum: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab/h", "previous enumeration"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextEnum, k.Down, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextEnum, k.PrevEnum},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
