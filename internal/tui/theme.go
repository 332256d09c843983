package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers. Colors are lipgloss.AdaptiveColor; "faint" is only
// applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted         lipgloss.TerminalColor = ac("240", "243")
	colorChromeMutedFg lipgloss.TerminalColor = ac("240", "245")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorBorder        lipgloss.TerminalColor = ac("250", "238")
	colorBorderFocused lipgloss.TerminalColor = ac("27", "62")

	// Today and the chosen year/month.
	colorAccent   lipgloss.TerminalColor = ac("27", "#AFF3FF")
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	// Sunday column.
	colorWeekend lipgloss.TerminalColor = ac("160", "210")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile honors CLICOLOR/CLICOLOR_FORCE, which can disable
// colors in a full-screen app; here only NO_COLOR turns them off.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they promise more than the detector reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) CALENDAR_TUI_THEME=light|dark|auto
// 2) tui.theme from config.json
// 3) COLORFGBG heuristic ("15;0" = fg;bg)
func applyThemePreference(configured string) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CALENDAR_TUI_THEME")))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(configured))
	}
	if dark, ok := parseTheme(v); ok {
		lipgloss.SetHasDarkBackground(dark)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		if dark, ok := darkFromColorFGBG(v); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

func parseTheme(v string) (dark bool, ok bool) {
	switch v {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	return false, false
}

func darkFromColorFGBG(v string) (dark bool, ok bool) {
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return false, false
	}
	return bg < 7, true
}
