package tui

import (
	"fmt"
	"strings"

	"calendar-cli/internal/calendar"
	"calendar-cli/internal/docs"

	"github.com/charmbracelet/lipgloss"
)

const gridCellW = 4

func (m appModel) View() string {
	header := m.viewHeader()
	if m.showHelp {
		body, _ := docs.Get("keys")
		return strings.Join([]string{header, renderMarkdown(body, min(m.width, 72)), m.viewFooter()}, "\n\n")
	}

	yearsBody := m.yearsList.View()
	monthsBody := m.monthsList.View()
	gridBody := m.viewGrid() + "\n\n" + m.viewTodayButton()
	h := max(lipgloss.Height(yearsBody), lipgloss.Height(monthsBody), lipgloss.Height(gridBody))

	years := m.viewPanel("Год", fitPane(yearsBody, yearsListW, h), m.focus == focusYears)
	months := m.viewPanel("Месяц", fitPane(monthsBody, monthsListW, h), m.focus == focusMonths)
	grid := m.viewPanel(monthTitle(m.sel), fitPane(gridBody, 7*gridCellW, h), m.focus == focusGrid)

	body := lipgloss.JoinHorizontal(lipgloss.Top, years, " ", months, " ", grid)
	return strings.Join([]string{header, body, m.viewFooter()}, "\n")
}

func (m appModel) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%s %s %s", glyphPrev(), monthTitle(m.sel), glyphNext()),
	)
	today := styleMuted().Render(fmt.Sprintf("сегодня %04d-%02d-%02d", m.today.Year, m.today.Month, m.today.Day))
	return title + "  " + today
}

func (m appModel) viewFooter() string {
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m appModel) viewPanel(title, content string, focused bool) string {
	borderColor := colorBorder
	if focused {
		borderColor = colorBorderFocused
	}
	titleStyle := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	if focused {
		titleStyle = titleStyle.Bold(true)
	}
	return lipgloss.NewStyle().
		Border(border()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(titleStyle.Render(title) + "\n" + content)
}

// viewGrid renders the weekday header and the weeks of the selected month.
func (m appModel) viewGrid() string {
	cellStyle := lipgloss.NewStyle().Width(gridCellW).Align(lipgloss.Right)

	var b strings.Builder
	for i, name := range calendar.WeekdayNames() {
		st := cellStyle.Foreground(colorChromeMutedFg)
		if i == 0 {
			st = st.Foreground(colorWeekend)
		}
		b.WriteString(st.Render(name))
	}

	for _, week := range calendar.Weeks(m.sel.Grid(m.today)) {
		b.WriteString("\n")
		for i, c := range week {
			b.WriteString(renderDayCell(cellStyle, c, i == 0))
		}
	}
	return b.String()
}

func renderDayCell(base lipgloss.Style, c calendar.Cell, sunday bool) string {
	if c.Blank() {
		return base.Inherit(styleMuted()).Render(glyphBlankDay())
	}
	txt := fmt.Sprintf("%d", c.Day)
	switch {
	case c.Today:
		// One space of padding inside the highlight so the number reads as a chip.
		chip := lipgloss.NewStyle().Bold(true).Background(colorAccent).Foreground(colorAccentFg)
		return strings.Repeat(" ", gridCellW-len(txt)-1) + chip.Render(" "+txt)
	case sunday:
		return base.Foreground(colorWeekend).Render(txt)
	default:
		return base.Render(txt)
	}
}

func (m appModel) viewTodayButton() string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Background(colorSelectedBg).
		Foreground(colorSelectedFg).
		Render("Сегодня (t)")
}

func monthTitle(sel calendar.Selection) string {
	name, err := calendar.MonthName(sel.Month)
	if err != nil {
		name = "?"
	}
	return fmt.Sprintf("%s %d", name, sel.Year)
}
