package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	quit   key.Binding
	delete key.Binding
	copy   key.Binding
	info   key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy image ref")),
	info:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n")),
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.delete, k.copy, k.info, k.quit}
}
