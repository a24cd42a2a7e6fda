package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/cutter/internal/ui/styles"
)

// RenderPanel frames body in a rounded border with title set into the top
// edge and subtitle into the bottom edge. Either label may be empty.
func RenderPanel(body, title, subtitle string) string {
	frame := styles.RoundedBorder.BorderTop(false).BorderBottom(false)
	box := frame.Render(body)

	// Make room for the labels plus a little border on each side.
	inner := lipgloss.Width(box) - 2
	need := max(ansi.StringWidth(title), ansi.StringWidth(subtitle)) + 6
	if inner < need {
		frame = frame.PaddingRight(frame.GetPaddingRight() + need - inner)
		box = frame.Render(body)
		inner = lipgloss.Width(box) - 2
	}

	b := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(styles.Primary)

	var out strings.Builder
	out.WriteString(edge.Render(b.TopLeft))
	out.WriteString(borderLine(b.Top, title, inner, edge))
	out.WriteString(edge.Render(b.TopRight))
	out.WriteString("\n")
	out.WriteString(box)
	out.WriteString("\n")
	out.WriteString(edge.Render(b.BottomLeft))
	out.WriteString(borderLine(b.Bottom, subtitle, inner, edge))
	out.WriteString(edge.Render(b.BottomRight))
	out.WriteString("\n")
	return out.String()
}

// borderLine fills width cells with fill and centers label in them.
func borderLine(fill, label string, width int, edge lipgloss.Style) string {
	if label == "" {
		return edge.Render(strings.Repeat(fill, width))
	}

	label = " " + label + " "
	lw := ansi.StringWidth(label)
	left := (width - lw) / 2
	right := width - lw - left
	return edge.Render(strings.Repeat(fill, left)) + label + edge.Render(strings.Repeat(fill, right))
}
