package styles

import "charm.land/lipgloss/v2"

// Style functions return styles based on the current theme.
// They are functions instead of variables to pick up theme changes.

// TitleStyle for the deck title in the header.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(currentTheme.Primary)
}

// SlideTitleStyle for the active slide's heading.
func SlideTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(currentTheme.Accent)
}

// BodyStyle for slide body text.
func BodyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme.Normal)
}

// CounterStyle for the "Slide i of N" label.
func CounterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme.Info).
		Italic(true)
}

// ControlStyle for an enabled trigger control.
func ControlStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(currentTheme.Success)
}

// ControlDisabledStyle for a disabled trigger control.
func ControlDisabledStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme.Muted)
}

// HelpStyle for the key help line.
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme.Muted)
}

// BorderStyle frames the slide area.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(currentTheme.Primary).
		Padding(1, 2)
}

// OptionSelectedStyle for the cursor-highlighted jump option.
func OptionSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(currentTheme.Accent)
}

// OptionNormalStyle for regular jump options.
func OptionNormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme.Normal)
}

// FilterStyle for filter text being typed.
func FilterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(currentTheme.Accent)
}

// FilterLabelStyle for the "Jump to:" label.
func FilterLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme.Muted)
}

// MatchHighlightStyle for fuzzy-matched characters.
func MatchHighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(currentTheme.Accent)
}

// ErrorStyle for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme.Error)
}
