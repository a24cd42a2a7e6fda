package styles

import (
	"github.com/charmbracelet/x/ansi"
)

// Symbols holds the status markers used on the post-gen line and in doctor.
type Symbols struct {
	Success string
	Failure string
	Warning string
	Pending string
}

// Default symbols
var defaultSymbols = Symbols{
	Success: "✓",
	Failure: "✗",
	Warning: "!",
	Pending: "○",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Success: "\uf00c", // nf-fa-check
	Failure: "\uf00d", // nf-fa-times
	Warning: "\uf071", // nf-fa-warning
	Pending: "\uf110", // nf-fa-spinner
}

var useNerdfont bool

var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// SuccessMark returns the colored success symbol.
func SuccessMark() string {
	return SuccessStyle.Render(currentSymbols.Success)
}

// FailureMark returns the colored failure symbol.
func FailureMark() string {
	return ErrorStyle.Render(currentSymbols.Failure)
}

// WarningMark returns the colored warning symbol.
func WarningMark() string {
	return WarningStyle.Render(currentSymbols.Warning)
}

// Hyperlink wraps text in an OSC 8 hyperlink. Terminals without support
// show the text alone.
func Hyperlink(text, url string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}
