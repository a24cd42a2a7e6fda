package prompt

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/cutter/internal/ui/styles"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	question   string
	defaultYes bool
	confirmed  bool
	done       bool
	cancelled  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N":
		m.confirmed = false
	case "enter":
		m.confirmed = m.defaultYes
	case "ctrl+c", "q", "esc":
		m.cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.text())
}

func (m confirmModel) text() string {
	if m.done {
		return ""
	}
	choices := "[y/N]"
	if m.defaultYes {
		choices = "[Y/n]"
	}
	return fmt.Sprintf("%s %s ", m.question, styles.MutedStyle.Render(choices))
}

// Confirm asks question on out and reads the answer from in.
// Enter picks defaultYes.
func Confirm(in io.Reader, out io.Writer, question string, defaultYes bool) (ConfirmResult, error) {
	p := tea.NewProgram(
		confirmModel{question: question, defaultYes: defaultYes},
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("prompt: %w", err)
	}
	m := final.(confirmModel)
	return ConfirmResult{Confirmed: m.confirmed, Cancelled: m.cancelled}, nil
}
