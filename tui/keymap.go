package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor keybindings.
type KeyMap struct {
	// Reconstruct runs the pipeline on the editor contents.
	Reconstruct key.Binding

	// Method switches between interpolation methods.
	Method key.Binding

	// Example restores the built-in example document.
	Example key.Binding

	// Quit exits the program.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Reconstruct: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reconstruct"),
		),
		Method: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle method"),
		),
		Example: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "load example"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reconstruct, k.Method, k.Example, k.Quit}
}
