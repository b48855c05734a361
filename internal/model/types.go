// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Theme selects the TUI palette.
type Theme string

// Supported themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q (available: dark, light)", s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Config defines interactive analyzer settings.
type Config struct {
	Theme         Theme
	Reveal        bool
	ToastDuration time.Duration
}

// GenerateConfig defines settings for the generate command.
type GenerateConfig struct {
	Count int
	Check bool
}
