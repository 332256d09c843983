package tui

import (
	"bytes"
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestPickerDelegate_RendersMarkerAndPadsToWidth(t *testing.T) {
	t.Parallel()

	focused := true
	l := newList("Месяц", monthItems(3), &focused)
	l.SetSize(14, 12)

	var buf bytes.Buffer
	d := newPickerDelegate(&focused)
	d.Render(&buf, l, 2, monthItem{month: 3, name: "Март", current: true})
	line := xansi.Strip(buf.String())
	if !strings.HasPrefix(line, glyphBullet()+" Март") {
		t.Fatalf("expected current marker; got %q", line)
	}
	if w := xansi.StringWidth(line); w != 14 {
		t.Fatalf("width = %d; want 14 (%q)", w, line)
	}

	buf.Reset()
	d.Render(&buf, l, 3, monthItem{month: 4, name: "Апрель"})
	if line := xansi.Strip(buf.String()); !strings.HasPrefix(line, "  Апрель") {
		t.Fatalf("expected plain row; got %q", line)
	}
}

func TestPickerDelegate_TruncatesNarrowLists(t *testing.T) {
	t.Parallel()

	l := newList("Год", yearItems([]int{2024}, 2024), nil)
	l.SetSize(5, 3)

	var buf bytes.Buffer
	newPickerDelegate(nil).Render(&buf, l, 0, monthItem{month: 9, name: "Сентябрь"})
	if w := xansi.StringWidth(xansi.Strip(buf.String())); w != 5 {
		t.Fatalf("width = %d; want 5", w)
	}
}
