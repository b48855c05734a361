package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/pwmeter/internal/model"
	"github.com/verte-zerg/pwmeter/internal/strength"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	empty   lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
	tiers   [5]lipgloss.Color
}

var palettes = map[model.Theme]palette{
	model.ThemeDark: {
		text:    "#F0F0F0",
		muted:   "#8C8C8C",
		accent:  "#C89A3A",
		empty:   "#3A3A3A",
		success: "#00FF88",
		warning: "#FFAA00",
		danger:  "#FF3366",
		tiers:   [5]lipgloss.Color{"#FF3366", "#FFAA00", "#FFDD00", "#00FF88", "#9966FF"},
	},
	model.ThemeLight: {
		text:    "#1F1F1F",
		muted:   "#6E6E6E",
		accent:  "#8A6420",
		empty:   "#D9D9D9",
		success: "#0A8F4F",
		warning: "#B36B00",
		danger:  "#C8102E",
		tiers:   [5]lipgloss.Color{"#C8102E", "#B36B00", "#A68A00", "#0A8F4F", "#6B3FCC"},
	},
}

type styles struct {
	palette palette
	title   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	label   lipgloss.Style
	check   lipgloss.Style
	uncheck lipgloss.Style
	warning lipgloss.Style
	footer  lipgloss.Style
	toasts  map[toastKind]lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[model.ThemeDark]
	}
	toastBase := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#101010"))
	return styles{
		palette: p,
		title:   lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		text:    lipgloss.NewStyle().Foreground(p.text),
		muted:   lipgloss.NewStyle().Foreground(p.muted),
		label:   lipgloss.NewStyle().Foreground(p.muted).Width(12),
		check:   lipgloss.NewStyle().Foreground(p.success),
		uncheck: lipgloss.NewStyle().Foreground(p.muted),
		warning: lipgloss.NewStyle().Foreground(p.warning),
		footer:  lipgloss.NewStyle().Foreground(p.muted),
		toasts: map[toastKind]lipgloss.Style{
			toastSuccess: toastBase.Background(p.success),
			toastWarning: toastBase.Background(p.warning),
			toastError:   toastBase.Background(p.danger),
		},
	}
}

// tierColor maps a strength level to its display color.
func (s styles) tierColor(level strength.Level) lipgloss.Color {
	if level < strength.VeryWeak || level > strength.Unbreakable {
		return s.palette.muted
	}
	return s.palette.tiers[level]
}
