package tui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"calendar-cli/internal/calendar"

	tea "github.com/charmbracelet/bubbletea"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestModel(now time.Time) appModel {
	return newAppModel(Options{Now: fixedClock(now), YearSpan: 10})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		mm, ok := next.(appModel)
		if !ok {
			t.Fatalf("Update returned %T; want appModel", next)
		}
		m = mm
	}
	return m
}

func yearsInList(m appModel) []int {
	var out []int
	for _, it := range m.yearsList.Items() {
		out = append(out, it.(yearItem).year)
	}
	return out
}

func TestNewAppModel_StartsOnToday(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC))
	if m.sel != (calendar.Selection{Year: 2024, Month: 12}) {
		t.Fatalf("initial selection = %v; want 2024-12", m.sel)
	}
	if m.today != (calendar.Date{Year: 2024, Month: 12, Day: 15}) {
		t.Fatalf("today = %#v", m.today)
	}
	if got, want := yearsInList(m), calendar.YearRange(2024, 10); !reflect.DeepEqual(got, want) {
		t.Fatalf("years list:\n got: %v\nwant: %v", got, want)
	}
	if it, ok := m.yearsList.SelectedItem().(yearItem); !ok || it.year != 2024 || !it.current {
		t.Fatalf("years cursor = %#v; want current 2024", m.yearsList.SelectedItem())
	}
	if it, ok := m.monthsList.SelectedItem().(monthItem); !ok || it.month != 12 || it.name != "Декабрь" {
		t.Fatalf("months cursor = %#v; want Декабрь", m.monthsList.SelectedItem())
	}
	if !*m.yearsFocused || *m.monthsFocused {
		t.Fatalf("expected years list to start focused")
	}
}

func TestKeys_StepMonthWrapsAcrossYears(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC))

	m = press(t, m, runes("]"))
	if m.sel != (calendar.Selection{Year: 2025, Month: 1}) {
		t.Fatalf("after ]: %v; want 2025-01", m.sel)
	}
	if got := yearsInList(m); got[0] != 2020 || got[len(got)-1] != 2029 {
		t.Fatalf("year window not regenerated around 2025: %v", got)
	}

	m = press(t, m, runes("["), runes("["))
	if m.sel != (calendar.Selection{Year: 2024, Month: 11}) {
		t.Fatalf("after [[: %v; want 2024-11", m.sel)
	}

	m = press(t, m, runes("{"))
	if m.sel != (calendar.Selection{Year: 2023, Month: 11}) {
		t.Fatalf("after {: %v; want 2023-11", m.sel)
	}
	m = press(t, m, runes("}"), runes("}"))
	if m.sel != (calendar.Selection{Year: 2025, Month: 11}) {
		t.Fatalf("after }}: %v; want 2025-11", m.sel)
	}
}

func TestKeys_TodayResetsSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC))
	m = press(t, m, runes("{"), runes("{"), runes("["))
	if m.sel == (calendar.Selection{Year: 2026, Month: 10}) {
		t.Fatalf("expected selection to move away from today")
	}

	m = press(t, m, runes("t"))
	if m.sel != (calendar.Selection{Year: 2026, Month: 10}) {
		t.Fatalf("after t: %v; want 2026-10", m.sel)
	}
}

func TestKeys_TodayRereadsClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC)
	m := newAppModel(Options{Now: func() time.Time { return now }})

	now = now.Add(2 * time.Minute)
	m = press(t, m, runes("t"))
	if m.sel != (calendar.Selection{Year: 2024, Month: 2}) {
		t.Fatalf("after t across midnight: %v; want 2024-02", m.sel)
	}
	if m.today.Day != 1 {
		t.Fatalf("today = %#v; want Feb 1", m.today)
	}
}

func TestTodayTick_FollowsClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 9, 23, 59, 30, 0, time.UTC)
	m := newAppModel(Options{Now: func() time.Time { return now }})

	now = now.Add(time.Minute)
	next, cmd := m.Update(todayTickMsg{})
	m = next.(appModel)
	if m.today != (calendar.Date{Year: 2024, Month: 3, Day: 10}) {
		t.Fatalf("today after tick = %#v", m.today)
	}
	if cmd == nil {
		t.Fatalf("expected tick to reschedule itself")
	}
	// The selection is left alone; only "t" jumps.
	if m.sel != (calendar.Selection{Year: 2024, Month: 3}) {
		t.Fatalf("selection changed on tick: %v", m.sel)
	}
}

func TestYearsList_SelectRegeneratesWindow(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	down := tea.KeyMsg{Type: tea.KeyDown}
	m = press(t, m, down, down)
	if it := m.yearsList.SelectedItem().(yearItem); it.year != 2026 {
		t.Fatalf("cursor year = %d; want 2026", it.year)
	}
	// Moving the cursor alone does not change the selection.
	if m.sel.Year != 2024 {
		t.Fatalf("selection changed before enter: %v", m.sel)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sel != (calendar.Selection{Year: 2026, Month: 5}) {
		t.Fatalf("after enter: %v; want 2026-05", m.sel)
	}
	if got, want := yearsInList(m), calendar.YearRange(2026, 10); !reflect.DeepEqual(got, want) {
		t.Fatalf("years list:\n got: %v\nwant: %v", got, want)
	}
	if it := m.yearsList.SelectedItem().(yearItem); it.year != 2026 || !it.current {
		t.Fatalf("cursor after regenerate = %#v", it)
	}
}

func TestMonthsList_Select(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC))
	up := tea.KeyMsg{Type: tea.KeyUp}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusMonths || !*m.monthsFocused || *m.yearsFocused {
		t.Fatalf("expected months focus; got %v", m.focus)
	}

	m = press(t, m, up, up, up, runes(" "))
	if m.sel != (calendar.Selection{Year: 2024, Month: 7}) {
		t.Fatalf("after selecting: %v; want 2024-07", m.sel)
	}
	if it := m.monthsList.SelectedItem().(monthItem); it.name != "Июль" || !it.current {
		t.Fatalf("months cursor = %#v", it)
	}
}

func TestFocus_CyclesAndGridArrows(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusGrid {
		t.Fatalf("shift+tab from years: focus = %v; want grid", m.focus)
	}
	if *m.yearsFocused || *m.monthsFocused {
		t.Fatalf("no list should be focused while the grid is")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.sel != (calendar.Selection{Year: 2023, Month: 12}) {
		t.Fatalf("left: %v; want 2023-12", m.sel)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("l"))
	if m.sel != (calendar.Selection{Year: 2025, Month: 1}) {
		t.Fatalf("down, l: %v; want 2025-01", m.sel)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusYears {
		t.Fatalf("tab from grid: focus = %v; want years", m.focus)
	}
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	m = press(t, m, runes("?"))
	if !m.showHelp {
		t.Fatalf("expected help to open")
	}
	if !strings.Contains(m.View(), "Keys") {
		t.Fatalf("help view missing keys topic:\n%s", m.View())
	}

	// Selection keys are inert while help is open; q closes instead of quitting.
	next, cmd := m.Update(runes("q"))
	m = next.(appModel)
	if m.showHelp || cmd != nil {
		t.Fatalf("q in help: showHelp=%v cmd=%v", m.showHelp, cmd)
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg.String())
		}
	}
}

func TestView_RendersMonth(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	for _, want := range []string{"Январь 2024", "Вс", "Сб", "Сегодня", "31", "2019", "Декабрь", "сегодня 2024-01-15"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewGrid_Layout(t *testing.T) {
	t.Parallel()

	m := newTestModel(time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC))
	// 2024-01 starts on a Monday: one blank, then 1..6 on the first row.
	m.sel = calendar.Selection{Year: 2024, Month: 1}
	lines := strings.Split(m.viewGrid(), "\n")
	if len(lines) != 1+5 {
		t.Fatalf("grid lines = %d; want 6:\n%s", len(lines), m.viewGrid())
	}
	first := strings.Fields(lines[1])
	want := []string{glyphBlankDay(), "1", "2", "3", "4", "5", "6"}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("first week:\n got: %q\nwant: %q", first, want)
	}
}

func TestDarkFromColorFGBG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		dark, ok bool
	}{
		{"15;0", true, true},
		{"0;15", false, true},
		{"15;default;0", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		dark, ok := darkFromColorFGBG(tt.in)
		if dark != tt.dark || ok != tt.ok {
			t.Fatalf("darkFromColorFGBG(%q) = %v, %v; want %v, %v", tt.in, dark, ok, tt.dark, tt.ok)
		}
	}
	if _, ok := parseTheme("auto"); ok {
		t.Fatalf("auto should defer to detection")
	}
}
