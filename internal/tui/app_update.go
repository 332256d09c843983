package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// todayTickMsg re-reads the clock so the highlight follows midnight.
type todayTickMsg struct{}

func tickToday() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg { return todayTickMsg{} })
}

func (m appModel) Init() tea.Cmd { return tickToday() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case todayTickMsg:
		prev := m.today
		m.refreshToday()
		if m.today != prev {
			m.log.Info("date changed", "today", m.today)
		}
		return m, tickToday()

	case tea.KeyMsg:
		m.log.Debug("key", "key", msg.String(), "focus", m.focus.String(), "help", m.showHelp)
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Close):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Today):
		m.pressToday()
		return m, nil
	case key.Matches(msg, m.keys.NextMonth):
		m.stepMonth(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevMonth):
		m.stepMonth(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextYear):
		m.stepYear(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevYear):
		m.stepYear(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextFocus):
		m.focus = (m.focus + 1) % focusCount
		m.syncFocus()
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.syncFocus()
		return m, nil
	}

	switch m.focus {
	case focusYears:
		if key.Matches(msg, m.keys.Select) {
			if it, ok := m.yearsList.SelectedItem().(yearItem); ok {
				m.selectYear(it.year)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.yearsList, cmd = m.yearsList.Update(msg)
		return m, cmd
	case focusMonths:
		if key.Matches(msg, m.keys.Select) {
			if it, ok := m.monthsList.SelectedItem().(monthItem); ok {
				m.selectMonth(it.month)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.monthsList, cmd = m.monthsList.Update(msg)
		return m, cmd
	case focusGrid:
		switch {
		case key.Matches(msg, m.keys.GridLeft):
			m.stepMonth(-1)
		case key.Matches(msg, m.keys.GridRight):
			m.stepMonth(1)
		case key.Matches(msg, m.keys.GridUp):
			m.stepYear(-1)
		case key.Matches(msg, m.keys.GridDown):
			m.stepYear(1)
		}
	}
	return m, nil
}
