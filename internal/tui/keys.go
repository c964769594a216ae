package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Tap     key.Binding
	Submit  key.Binding
	Focus   key.Binding
	Mode    key.Binding
	Quit    key.Binding
	Yes     key.Binding
	No      key.Binding
	ForceQ  key.Binding
	Compose key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tap:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "tap")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "input/list")),
		Compose: key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
		Mode:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete mode")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		No:      key.NewBinding(key.WithKeys("n", "N", "esc", "enter"), key.WithHelp("n", "cancel")),
		ForceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Compose, k.Focus, k.Mode, k.Quit}
}
