package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project override file. The template ships
// one so a generated project can pin its own hook manager.
const LocalConfigFileName = ".cutter.toml"

// LoadLocal reads workDir/.cutter.toml.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(workDir string) (*Overrides, error) {
	configFile := filepath.Join(workDir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var o Overrides
	if err := toml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	return &o, nil
}
