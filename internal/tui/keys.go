package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	copy    key.Binding
	clear   key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / sign up")),
	tab:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy problems")),
	clear:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.tab, k.backtab, k.enter, k.copy, k.clear, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
