package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the playback TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	next       key.Binding
	previous   key.Binding
	toggle     key.Binding
	drop       key.Binding
	regenerate key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play selected")),
		next:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next (shuffle)")),
		previous:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "previous")),
		toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		drop:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "mark unplayable")),
		regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.next, k.previous, k.toggle},
		{k.drop, k.regenerate, k.quit},
	}
}
