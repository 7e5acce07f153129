// Package styles centralizes colors and lipgloss styles for the
// presentation UI so every component draws from one palette.
package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quellen/preso/internal/config"
)

// Theme defines the color palette for UI components.
type Theme struct {
	Primary color.Color // borders, deck title
	Accent  color.Color // active slide marker, highlights
	Success color.Color // enabled trigger controls
	Error   color.Color // error messages
	Muted   color.Color // disabled controls, help text
	Normal  color.Color // slide body text
	Info    color.Color // counter label
}

// themeFamily groups light and dark variants of a theme.
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

var (
	// DefaultTheme is the default color scheme (dark only).
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
	}

	// DraculaTheme is based on the Dracula color scheme (dark only).
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"),
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Muted:   lipgloss.Color("#6272a4"),
		Normal:  lipgloss.Color("#f8f8f2"),
		Info:    lipgloss.Color("#8be9fd"),
	}

	// NordTheme is based on the Nord color scheme (dark).
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#4c566a"),
		Normal:  lipgloss.Color("#eceff4"),
		Info:    lipgloss.Color("#81a1c1"),
	}

	// NordLightTheme is the Nord light variant.
	NordLightTheme = Theme{
		Primary: lipgloss.Color("#5e81ac"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#9a9a9a"),
		Normal:  lipgloss.Color("#2e3440"),
		Info:    lipgloss.Color("#5e81ac"),
	}

	// NoneTheme renders without any colors (terminal defaults).
	// Bold and italic formatting is preserved.
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

var themeFamilies = map[string]themeFamily{
	"default": {Dark: &DefaultTheme},
	"dracula": {Dark: &DraculaTheme},
	"nord":    {Dark: &NordTheme, Light: &NordLightTheme},
	"none":    {Dark: &NoneTheme, Light: &NoneTheme},
}

var currentTheme = DefaultTheme

// Current returns the active theme.
func Current() Theme {
	return currentTheme
}

// Init initializes the theme from config.
// Call after loading config and before rendering any UI.
func Init(cfg config.ThemeConfig) {
	currentTheme = selectTheme(cfg)
}

// selectTheme picks a theme variant from config and terminal background.
func selectTheme(cfg config.ThemeConfig) Theme {
	mode := cfg.Mode
	if mode == "" {
		mode = "auto"
	}

	family, ok := themeFamilies[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(config.ValidThemeNames, ", "))
		}
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default:
		if lipgloss.HasDarkBackground(os.Stdin, os.Stderr) {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	// Fall back when the requested variant doesn't exist.
	if theme == nil {
		if family.Dark != nil {
			theme = family.Dark
		} else if family.Light != nil {
			theme = family.Light
		} else {
			return DefaultTheme
		}
	}

	return *theme
}
