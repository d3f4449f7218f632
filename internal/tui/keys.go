package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Tab       key.Binding
	Enter     key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	AllSheets key.Binding
	Mode      key.Binding
	Columns   key.Binding
	Export    key.Binding
	Toggle    key.Binding
	All       key.Binding
	None      key.Binding
	Filter    key.Binding
	Trace     key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/run")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/cancel")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search term")),
	AllSheets: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "search all sheets")),
	Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "match mode")),
	Columns:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "choose columns")),
	Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle column")),
	All:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	None:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
	Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter columns")),
	Trace:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trace columns")),
}
