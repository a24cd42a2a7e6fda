// Package demo renders the styled-output showcase: pretty-printed values,
// a titled panel and a task table.
package demo

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/cutter/internal/ui/static"
	"github.com/raphi011/cutter/internal/ui/styles"
)

// Status is the state of a demo task.
type Status string

const (
	StatusDone       Status = "Done"
	StatusInProgress Status = "In Progress"
	StatusPending    Status = "Pending"
)

// Task is one row of the demo table.
type Task struct {
	ID     string
	Name   string
	Status Status
}

// Profile is the key/value sample.
var Profile = map[string]any{
	"name":   "AJ",
	"role":   "Cloud AI Architect",
	"skills": []any{"Python", "AWS", "MLOps", "GenAI"},
}

// Mixed is the heterogeneous list sample.
var Mixed = []any{1, "apple", map[string]any{"key": "value"}, true, nil, 3.14}

// Tasks are the demo table rows.
var Tasks = []Task{
	{ID: "1", Name: "Setup Environment", Status: StatusDone},
	{ID: "2", Name: "Develop Model", Status: StatusInProgress},
	{ID: "3", Name: "Deploy to SageMaker", Status: StatusPending},
}

// Render returns the whole showcase.
func Render() string {
	var b strings.Builder
	b.WriteString(styles.Bold.Render("--- Styled Printing ---"))
	b.WriteString("\n")
	b.WriteString(FormatValue(Profile))
	b.WriteString("\n")
	b.WriteString(FormatValue(Mixed))
	b.WriteString("\n")
	b.WriteString(RenderWelcome())
	b.WriteString(RenderTasks(Tasks))
	return b.String()
}

// RenderWelcome returns the "Hello, World!" panel.
func RenderWelcome() string {
	world := lipgloss.NewStyle().Bold(true).Foreground(styles.Accent).Render("World")
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.Success).Render("Welcome")
	return static.RenderPanel("Hello, "+world+"!", title, "Thank you")
}

// RenderTasks returns the task table.
func RenderTasks(tasks []Task) string {
	cols := []static.Column{
		{Header: "ID", Width: 12, Style: styles.MutedStyle},
		{Header: "Task Name"},
		{Header: "Status", Align: lipgloss.Right},
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{t.ID, t.Name, statusStyle(t.Status).Render(string(t.Status))})
	}
	return static.RenderTitledTable("My Project Tasks", cols, rows)
}

func statusStyle(s Status) lipgloss.Style {
	switch s {
	case StatusDone:
		return styles.SuccessStyle
	case StatusInProgress:
		return styles.WarningStyle
	case StatusPending:
		return styles.ErrorStyle
	default:
		return styles.NormalStyle
	}
}

// FormatValue pretty-prints v with type-based colors: strings, numbers,
// booleans and nil each get their own style. Map keys are sorted.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return styles.InfoStyle.Render("nil")
	case string:
		return styles.SuccessStyle.Render(strconv.Quote(v))
	case bool:
		return styles.AccentStyle.Render(strconv.FormatBool(v))
	case int, int64, float64:
		return styles.PrimaryStyle.Render(fmt.Sprint(v))
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = FormatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = FormatValue(k) + ": " + FormatValue(v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}
