package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Next     key.Binding
	Prev     key.Binding
	Parent   key.Binding
	Top      key.Binding
	Open     key.Binding
	Back     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Preview  key.Binding
	Index    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next topic")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous topic")),
		Parent:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "scroll to parent")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		PrevPage: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous sample")),
		NextPage: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next sample")),
		Preview:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "preview style")),
		Index:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "index style")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Open, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top},
		{k.Next, k.Prev, k.Parent, k.Open, k.Back},
		{k.PrevPage, k.NextPage, k.Preview, k.Index},
		{k.Help, k.Quit},
	}
}
