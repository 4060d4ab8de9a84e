package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	checkout  key.Binding
	giveBack  key.Binding
	newItem   key.Binding
	rename    key.Binding
	delete    key.Binding
	showAll   key.Binding
	auditLog  key.Binding
	accounts  key.Binding
	copy      key.Binding
	export    key.Binding
	refresh   key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	checkout:  key.NewBinding(key.WithKeys("r")),
	giveBack:  key.NewBinding(key.WithKeys("d")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	rename:    key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("x")),
	showAll:   key.NewBinding(key.WithKeys("a")),
	auditLog:  key.NewBinding(key.WithKeys("g")),
	accounts:  key.NewBinding(key.WithKeys("u")),
	copy:      key.NewBinding(key.WithKeys("c")),
	export:    key.NewBinding(key.WithKeys("s")),
	refresh:   key.NewBinding(key.WithKeys("f5")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y", "s")),
	no:        key.NewBinding(key.WithKeys("n")),
}
