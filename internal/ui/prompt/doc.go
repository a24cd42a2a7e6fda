// Package prompt asks the user a yes/no question on the terminal.
//
// Callers check that both stdin and the output are terminals before
// prompting; scripted runs (such as the scaffolding engine) never see one.
package prompt
