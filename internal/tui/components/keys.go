package components

import "github.com/charmbracelet/bubbles/key"

// SearchBoxKeyMap defines key bindings for the search box
type SearchBoxKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// DefaultSearchBoxKeyMap returns the default search box key bindings.
// Letters go to the text input, so navigation uses arrows and control keys.
func DefaultSearchBoxKeyMap() SearchBoxKeyMap {
	return SearchBoxKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next"),
		),
	}
}

// SearchBoxKeys is the package-level key map instance
var SearchBoxKeys = DefaultSearchBoxKeyMap()
