package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Select    key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
	NextYear  key.Binding
	PrevYear  key.Binding
	Today     key.Binding
	Help      key.Binding
	Close     key.Binding
	Quit      key.Binding

	// Grid-only navigation.
	GridLeft  key.Binding
	GridRight key.Binding
	GridUp    key.Binding
	GridDown  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "month")),
		PrevMonth: key.NewBinding(key.WithKeys("[")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("{/}", "year")),
		PrevYear:  key.NewBinding(key.WithKeys("{")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "сегодня")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:     key.NewBinding(key.WithKeys("esc", "?", "q")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		GridLeft:  key.NewBinding(key.WithKeys("left", "h")),
		GridRight: key.NewBinding(key.WithKeys("right", "l")),
		GridUp:    key.NewBinding(key.WithKeys("up", "k")),
		GridDown:  key.NewBinding(key.WithKeys("down", "j")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Select, k.NextMonth, k.NextYear, k.Today, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
