package palette

import "charm.land/bubbles/v2/key"

// KeyMap defines keybindings for the search palette.
type KeyMap struct {
	Up      key.Binding // move selection up through recent searches
	Down    key.Binding // move selection down
	Submit  key.Binding // run the search
	Dismiss key.Binding // close without searching
	Clear   key.Binding // clear the query
}

// DefaultKeyMap returns the standard key bindings for the palette.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Submit:  key.NewBinding(key.WithKeys("enter")),
		Dismiss: key.NewBinding(key.WithKeys("esc")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
}
