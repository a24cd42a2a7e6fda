package static

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(RenderTable(
		[]string{"CHECK", "STATUS"},
		[][]string{{"git", "ok"}, {"pre-commit", "missing"}},
	))

	for _, want := range []string{"CHECK", "STATUS", "git", "pre-commit", "missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTable output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "│") {
		t.Errorf("RenderTable should not draw borders:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if out := RenderTable([]string{"A"}, nil); out != "" {
		t.Errorf("RenderTable with no rows = %q, want empty", out)
	}
}

func TestRenderTitledTable(t *testing.T) {
	t.Parallel()

	cols := []Column{
		{Header: "ID", Width: 12},
		{Header: "Task Name"},
		{Header: "Status", Align: lipgloss.Right},
	}
	out := ansi.Strip(RenderTitledTable("My Project Tasks", cols, [][]string{
		{"1", "Setup Environment", "Done"},
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[0], "My Project Tasks") {
		t.Errorf("first line = %q, want the title", lines[0])
	}
	for _, want := range []string{"ID", "Task Name", "Status", "Setup Environment", "Done", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTitledTable output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPanel(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(RenderPanel("Hello, World!", "Welcome", "Thank you"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if !strings.HasPrefix(lines[0], "╭") || !strings.Contains(lines[0], " Welcome ") {
		t.Errorf("top edge = %q, want title in border", lines[0])
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "╰") || !strings.Contains(last, " Thank you ") {
		t.Errorf("bottom edge = %q, want subtitle in border", last)
	}
	if !strings.Contains(out, "Hello, World!") {
		t.Errorf("panel body missing:\n%s", out)
	}

	width := ansi.StringWidth(lines[0])
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != width {
			t.Errorf("line %d width = %d, want %d (%q)", i, w, width, l)
		}
	}
}

func TestRenderPanel_LongTitleWidensBox(t *testing.T) {
	t.Parallel()

	title := "A title much longer than the body text"
	out := ansi.Strip(RenderPanel("hi", title, ""))
	if !strings.Contains(out, title) {
		t.Errorf("long title was cut:\n%s", out)
	}
}
