package demo

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "apple", `"apple"`},
		{"int", 1, "1"},
		{"float", 3.14, "3.14"},
		{"bool", true, "true"},
		{"nil", nil, "nil"},
		{"list", Mixed, `[1, "apple", {"key": "value"}, true, nil, 3.14]`},
		{"map sorted", Profile, `{"name": "AJ", "role": "Cloud AI Architect", "skills": ["Python", "AWS", "MLOps", "GenAI"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ansi.Strip(FormatValue(tt.in)); got != tt.want {
				t.Errorf("FormatValue() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderTasks(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(RenderTasks(Tasks))
	for _, want := range []string{"My Project Tasks", "Setup Environment", "In Progress", "Deploy to SageMaker", "Pending"} {
		if !strings.Contains(out, want) {
			t.Errorf("task table missing %q:\n%s", want, out)
		}
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(Render())
	for _, want := range []string{"--- Styled Printing ---", "Hello, World!", "Welcome", "Thank you", "My Project Tasks"} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q", want)
		}
	}
}
