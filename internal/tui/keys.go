package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Submit    key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Delete    key.Binding
	AddPane   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "previous field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add expense")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "go to list")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k ↑", "move up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j ↓", "move down")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first expense")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last expense")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d x", "delete expense")),
		AddPane:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new expense")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) formBindings() []key.Binding {
	return []key.Binding{k.NextFocus, k.PrevFocus, k.Submit, k.Back}
}

func (k keyMap) listBindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Delete, k.AddPane, k.Help, k.Quit}
}
