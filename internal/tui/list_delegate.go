package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// pickerDelegate renders one-line rows. The cursor row is highlighted only
// while the list has focus; the chosen value carries a bullet in any case.
type pickerDelegate struct {
	focused *bool
}

func newPickerDelegate(focused *bool) pickerDelegate {
	return pickerDelegate{focused: focused}
}

func (d pickerDelegate) Height() int  { return 1 }
func (d pickerDelegate) Spacing() int { return 0 }
func (d pickerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d pickerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}
	current := false
	if c, ok := item.(interface{ Current() bool }); ok {
		current = c.Current()
	}

	marker := "  "
	if current {
		marker = glyphBullet() + " "
	}
	line := marker + txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	style := lipgloss.NewStyle()
	if current {
		style = style.Foreground(colorAccent).Bold(true)
	}
	if index == m.Index() && d.focused != nil && *d.focused {
		style = style.Background(colorSelectedBg)
		if !current {
			style = style.Foreground(colorSelectedFg)
		}
	}
	fmt.Fprint(w, style.Render(line))
}
