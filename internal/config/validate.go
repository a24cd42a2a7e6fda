package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// Validate checks enum fields and required values.
func (c Config) Validate() error {
	_, err := c.Repair()
	return err
}

// Repair resets every field that fails validation to its default and
// returns the result with the joined validation errors.
func (c Config) Repair() (Config, error) {
	def := Default()
	var errs []error

	if strings.TrimSpace(c.HookManager.Command) == "" {
		errs = append(errs, fmt.Errorf("hook_manager.command must not be empty"))
		c.HookManager = def.HookManager
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		errs = append(errs, err)
		c.Theme.Name = def.Theme.Name
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		errs = append(errs, err)
		c.Theme.Mode = def.Theme.Mode
	}
	return c, errors.Join(errs...)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// The error suggests the closest allowed value when one matches fuzzily.
func validateEnum(value, field string, allowed []string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	if s := Suggest(value, allowed); s != "" {
		return fmt.Errorf("invalid %s %q: did you mean %q? (must be %s)", field, value, s, formatOptions(allowed))
	}
	return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
}

// Suggest returns the best fuzzy match for value among options, or "".
// Both directions are tried so typos ("drcula") and over-long values
// ("catppuccin-mocha") find their target.
func Suggest(value string, options []string) string {
	value = strings.ToLower(value)
	if matches := fuzzy.Find(value, options); len(matches) > 0 {
		return matches[0].Str
	}
	best, bestScore := "", 0
	for _, opt := range options {
		matches := fuzzy.Find(opt, []string{value})
		if len(matches) > 0 && (best == "" || matches[0].Score > bestScore) {
			best, bestScore = opt, matches[0].Score
		}
	}
	return best
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
