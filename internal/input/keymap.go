package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the presenter's bindings. Quit is handled by the shell; it is
// here so the help line lists it.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("down", "right"), key.WithHelp("↓/→", "next")),
		Prev: key.NewBinding(key.WithKeys("up", "left"), key.WithHelp("↑/←", "prev")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
