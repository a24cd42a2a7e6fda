// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables and panels.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/cutter/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// Column describes one column of a bordered table.
type Column struct {
	Header string
	Width  int // 0 sizes to content
	Align  lipgloss.Position
	Style  lipgloss.Style
}

// RenderTitledTable renders a rounded-border table with a centered title
// above it. Cell contents may already carry their own styling.
func RenderTitledTable(title string, cols []Column, rows [][]string) string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Primary)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			c := cols[col]
			s := c.Style.Padding(0, 1).Align(c.Align)
			if c.Width > 0 {
				s = s.Width(c.Width)
			}
			if row == table.HeaderRow {
				s = s.Bold(true).Foreground(styles.Accent)
			}
			return s
		})

	body := t.String()

	var output strings.Builder
	if title != "" {
		titleLine := styles.InfoStyle.Render(title)
		output.WriteString(lipgloss.PlaceHorizontal(lipgloss.Width(body), lipgloss.Center, titleLine))
		output.WriteString("\n")
	}
	output.WriteString(body)
	output.WriteString("\n")
	return output.String()
}
