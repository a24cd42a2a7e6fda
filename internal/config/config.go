package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the global config file location.
const EnvConfigPath = "CUTTER_CONFIG"

// Hook manager defaults, matching what the template's hook configuration expects.
const (
	DefaultHookManager = "pre-commit"
)

// DefaultHookManagerArgs installs the git shim and every hook environment
// declared in .pre-commit-config.yaml.
var DefaultHookManagerArgs = []string{"install", "--install-hooks"}

// HookManagerConfig names the external tool that installs commit hooks.
type HookManagerConfig struct {
	Name    string   `toml:"name"` // display name, defaults to Command
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// DisplayName returns Name, falling back to Command.
func (h HookManagerConfig) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.Command
}

// ThemeConfig holds UI theme settings
type ThemeConfig struct {
	Name     string `toml:"name"`
	Mode     string `toml:"mode"`
	Nerdfont bool   `toml:"nerdfont"`
}

// PostGenConfig holds post-generation settings
type PostGenConfig struct {
	Spinner bool `toml:"spinner"`
}

// Config holds the cutter configuration
type Config struct {
	HookManager HookManagerConfig `toml:"hook_manager"`
	Theme       ThemeConfig       `toml:"theme"`
	PostGen     PostGenConfig     `toml:"post_gen"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		HookManager: HookManagerConfig{
			Name:    DefaultHookManager,
			Command: DefaultHookManager,
			Args:    slices.Clone(DefaultHookManagerArgs),
		},
		Theme: ThemeConfig{
			Name: "default",
			Mode: "auto",
		},
		PostGen: PostGenConfig{
			Spinner: true,
		},
	}
}

// Overrides holds the keys present in one config file.
// Pointer fields and empty strings mean "not set".
type Overrides struct {
	HookManager HookManagerConfig `toml:"hook_manager"`
	Theme       ThemeOverrides    `toml:"theme"`
	PostGen     PostGenOverrides  `toml:"post_gen"`
}

// ThemeOverrides holds theme keys from one config file
type ThemeOverrides struct {
	Name     string `toml:"name"`
	Mode     string `toml:"mode"`
	Nerdfont *bool  `toml:"nerdfont"`
}

// PostGenOverrides holds post_gen keys from one config file
type PostGenOverrides struct {
	Spinner *bool `toml:"spinner"`
}

// GlobalPath returns the path of the global config file.
// CUTTER_CONFIG wins over ~/.config/cutter/config.toml.
func GlobalPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cutter", "config.toml"), nil
}

// Paths returns every config file Load consults for workDir, in
// increasing priority.
func Paths(workDir string) []string {
	var paths []string
	if p, err := GlobalPath(); err == nil {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join(workDir, LocalConfigFileName))
}

// Load reads the global config, overlays workDir/.cutter.toml and validates
// the result. Missing files are not errors.
// A file that fails to parse is skipped. A field that fails validation is
// reset to its default while the rest of the file still applies, so a theme
// typo never discards a pinned hook manager. The returned config is always
// usable; the error joins every problem found.
func Load(workDir string) (Config, error) {
	var errs []error
	cfg := Default()

	if path, err := GlobalPath(); err == nil {
		global, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg = global
		}
	}

	local, err := LoadLocal(workDir)
	if err != nil {
		errs = append(errs, err)
	}

	cfg, err = MergeLocal(cfg, local).Repair()
	if err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

// LoadFile reads a single config file on top of Default().
// Returns Default() without error if the file does not exist.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var o Overrides
	if err := toml.Unmarshal(data, &o); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return o.Apply(Default()), nil
}

// Apply overlays the keys present in o onto cfg and returns the result.
// cfg is not mutated.
func (o Overrides) Apply(cfg Config) Config {
	cfg.HookManager.Args = slices.Clone(cfg.HookManager.Args)

	if o.HookManager.Command != "" {
		cfg.HookManager.Command = o.HookManager.Command
		// A different tool does not inherit pre-commit's display name.
		cfg.HookManager.Name = ""
	}
	if o.HookManager.Name != "" {
		cfg.HookManager.Name = o.HookManager.Name
	}
	if o.HookManager.Args != nil {
		cfg.HookManager.Args = slices.Clone(o.HookManager.Args)
	}
	if o.Theme.Name != "" {
		cfg.Theme.Name = o.Theme.Name
	}
	if o.Theme.Mode != "" {
		cfg.Theme.Mode = o.Theme.Mode
	}
	if o.Theme.Nerdfont != nil {
		cfg.Theme.Nerdfont = *o.Theme.Nerdfont
	}
	if o.PostGen.Spinner != nil {
		cfg.PostGen.Spinner = *o.PostGen.Spinner
	}
	return cfg
}

// Encode writes cfg as TOML.
func (c Config) Encode() (string, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config attached to ctx, or defaults.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

type workDirKey struct{}

// WithWorkDir attaches the resolved project directory to the context.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the project directory, or "" if unset.
func WorkDirFromContext(ctx context.Context) string {
	dir, _ := ctx.Value(workDirKey{}).(string)
	return dir
}
