// Package config loads preso configuration from TOML.
//
// Config lives at ~/.config/preso/config.toml. A missing file is not
// an error: defaults apply. An invalid file is reported at startup.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// ValidThemeNames lists the theme families accepted in config and --theme.
var ValidThemeNames = []string{"default", "dracula", "nord", "none"}

// ValidThemeModes lists the accepted theme mode values.
var ValidThemeModes = []string{"auto", "dark", "light"}

// ThemeConfig selects a color theme.
type ThemeConfig struct {
	Name string `toml:"name"` // theme family, e.g. "nord"
	Mode string `toml:"mode"` // "auto", "dark" or "light"
}

// RemoteConfig holds remote-control defaults.
type RemoteConfig struct {
	Addr string `toml:"addr"` // default listen address for --remote
}

// HistoryConfig controls the recent-decks history.
type HistoryConfig struct {
	Disabled bool `toml:"disabled"`
}

// Config holds the preso configuration.
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Remote  RemoteConfig  `toml:"remote"`
	History HistoryConfig `toml:"history"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Theme:  ThemeConfig{Name: "default", Mode: "auto"},
		Remote: RemoteConfig{Addr: "localhost:8418"},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "preso", "config.toml"), nil
}

// Load reads config from ~/.config/preso/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values against the accepted sets.
func (c *Config) Validate() error {
	if c.Theme.Name != "" && !IsValidThemeName(c.Theme.Name) {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme.Name, ValidThemeNames)
	}
	if c.Theme.Mode != "" && !slices.Contains(ValidThemeModes, c.Theme.Mode) {
		return fmt.Errorf("unknown theme mode %q (available: %v)", c.Theme.Mode, ValidThemeModes)
	}
	return nil
}

// IsValidThemeName reports whether name is a known theme family.
func IsValidThemeName(name string) bool {
	return slices.Contains(ValidThemeNames, name)
}

// DefaultFileContent returns a commented default config file.
func DefaultFileContent() string {
	return `# preso configuration

[theme]
# Theme family: default, dracula, nord, none
name = "default"
# Variant selection: auto, dark, light
mode = "auto"

[remote]
# Default listen address for 'preso present --remote'
addr = "localhost:8418"

[history]
# Set to true to stop recording recently presented decks
disabled = false
`
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context, or nil if absent.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}
