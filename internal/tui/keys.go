package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the list view bindings.
type KeyMap struct {
	Add            key.Binding
	Edit           key.Binding
	Toggle         key.Binding
	Remove         key.Binding
	ToggleAll      key.Binding
	ClearCompleted key.Binding
	ShowAll        key.Binding
	ShowActive     key.Binding
	ShowCompleted  key.Binding
	NextView       key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:           key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Toggle:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Remove:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		ToggleAll:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle all")),
		ClearCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		ShowAll:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowCompleted:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		NextView:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Quit:           key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) short() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.NextView}
}

func (k KeyMap) full() []key.Binding {
	return []key.Binding{
		k.Add, k.Edit, k.Toggle, k.Remove, k.ToggleAll, k.ClearCompleted,
		k.ShowAll, k.ShowActive, k.ShowCompleted, k.NextView,
	}
}
