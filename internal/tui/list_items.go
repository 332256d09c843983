package tui

import (
	"strconv"

	"calendar-cli/internal/calendar"

	"github.com/charmbracelet/bubbles/list"
)

type yearItem struct {
	year    int
	current bool
}

func (i yearItem) FilterValue() string { return strconv.Itoa(i.year) }
func (i yearItem) Title() string       { return strconv.Itoa(i.year) }
func (i yearItem) Current() bool       { return i.current }

type monthItem struct {
	month   int
	name    string
	current bool
}

func (i monthItem) FilterValue() string { return i.name }
func (i monthItem) Title() string       { return i.name }
func (i monthItem) Current() bool       { return i.current }

func yearItems(years []int, selected int) []list.Item {
	items := make([]list.Item, 0, len(years))
	for _, y := range years {
		items = append(items, yearItem{year: y, current: y == selected})
	}
	return items
}

func monthItems(selected int) []list.Item {
	names := calendar.MonthNames()
	items := make([]list.Item, 0, len(names))
	for i, name := range names {
		items = append(items, monthItem{month: i + 1, name: name, current: i+1 == selected})
	}
	return items
}

func newList(title string, items []list.Item, focused *bool) list.Model {
	l := list.New(items, newPickerDelegate(focused), 0, 0)
	l.Title = title
	// The app renders its own titles and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	// q and ? are handled by the app.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)

	goToStartKeys := append([]string{}, l.KeyMap.GoToStart.Keys()...)
	goToStartKeys = append(goToStartKeys, "<")
	l.KeyMap.GoToStart.SetKeys(goToStartKeys...)

	goToEndKeys := append([]string{}, l.KeyMap.GoToEnd.Keys()...)
	goToEndKeys = append(goToEndKeys, ">")
	l.KeyMap.GoToEnd.SetKeys(goToEndKeys...)
	return l
}
