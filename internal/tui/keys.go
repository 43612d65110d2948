package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	UpDown  key.Binding
	ListNav key.Binding
	Select  key.Binding
	Back    key.Binding
	Colors  key.Binding
	Users   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown: key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		// The user list captures letters for its filter, so j/k are
		// not movement keys there.
		ListNav: key.NewBinding(key.WithKeys("up", "down", "ctrl+n", "ctrl+p"), key.WithHelp("↑/↓", "navigate")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Colors: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "accent color")),
		Users:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "team")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
