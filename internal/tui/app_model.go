package tui

import (
	"io"
	"log/slog"
	"time"

	"calendar-cli/internal/calendar"
	"calendar-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
)

type focus int

const (
	focusYears focus = iota
	focusMonths
	focusGrid
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusYears:
		return "years"
	case focusMonths:
		return "months"
	case focusGrid:
		return "grid"
	default:
		return "unknown"
	}
}

const (
	defaultWidth  = 80
	defaultHeight = 24

	yearsListW  = 10
	monthsListW = 14
	monthsListH = 12
	chromeLines = 8
)

type appModel struct {
	now      func() time.Time
	today    calendar.Date
	sel      calendar.Selection
	yearSpan int

	focus      focus
	yearsList  list.Model
	monthsList list.Model
	// Shared with the list delegates, which are copied into the lists.
	yearsFocused  *bool
	monthsFocused *bool

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	log *slog.Logger
}

func newAppModel(opts Options) appModel {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	span := opts.YearSpan
	if span <= 0 {
		span = store.DefaultYearSpan
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	today := calendar.DateOf(now())
	m := appModel{
		now:           now,
		today:         today,
		sel:           calendar.JumpToToday(today),
		yearSpan:      span,
		focus:         focusYears,
		yearsFocused:  new(bool),
		monthsFocused: new(bool),
		keys:          defaultKeyMap(),
		help:          help.New(),
		width:         defaultWidth,
		height:        defaultHeight,
		log:           logger,
	}
	m.yearsList = newList("Год", nil, m.yearsFocused)
	m.monthsList = newList("Месяц", nil, m.monthsFocused)

	m.resizeLists()
	m.syncLists()
	m.syncFocus()
	return m
}

// syncLists re-pulls the picker contents from the selection. The year window
// is regenerated around the selected year every time.
func (m *appModel) syncLists() {
	years := calendar.YearRange(m.sel.Year, m.yearSpan)
	m.yearsList.SetItems(yearItems(years, m.sel.Year))
	for i, y := range years {
		if y == m.sel.Year {
			m.yearsList.Select(i)
			break
		}
	}
	m.monthsList.SetItems(monthItems(m.sel.Month))
	m.monthsList.Select(m.sel.Month - 1)
}

func (m *appModel) syncFocus() {
	*m.yearsFocused = m.focus == focusYears
	*m.monthsFocused = m.focus == focusMonths
}

func (m *appModel) resizeLists() {
	avail := m.height - chromeLines
	if avail < 3 {
		avail = 3
	}
	m.yearsList.SetSize(yearsListW, min(m.yearSpan, avail))
	m.monthsList.SetSize(monthsListW, min(monthsListH, avail))
	m.help.Width = m.width
}

func (m *appModel) selectYear(y int) {
	m.sel.SelectYear(y)
	m.selectionChanged("select_year")
}

func (m *appModel) selectMonth(mo int) {
	m.sel.SelectMonth(mo)
	m.selectionChanged("select_month")
}

func (m *appModel) stepMonth(delta int) {
	m.sel.StepMonth(delta)
	m.selectionChanged("step_month")
}

func (m *appModel) stepYear(delta int) {
	m.sel.StepYear(delta)
	m.selectionChanged("step_year")
}

func (m *appModel) pressToday() {
	m.refreshToday()
	m.sel = calendar.JumpToToday(m.today)
	m.selectionChanged("today")
}

func (m *appModel) refreshToday() {
	m.today = calendar.DateOf(m.now())
}

func (m *appModel) selectionChanged(action string) {
	m.syncLists()
	m.log.Info("selection", "action", action, "year", m.sel.Year, "month", m.sel.Month)
}
