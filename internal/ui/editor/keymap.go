package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	complete key.Binding
	submit   key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "use suggestion")),
		submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.up, k.down, k.complete, k.submit, k.quit}
}
