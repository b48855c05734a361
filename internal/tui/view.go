package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	appTitle       = "Password Strength Analyzer"
	notAnalyzed    = "Not Analyzed"
	warningPrefix  = "⚠ "
	helpLine       = "ctrl+g generate  ctrl+y copy  ctrl+r show/hide  ctrl+t theme  esc quit"
	privacyNotice  = "Analyzed locally. Nothing is sent or stored."
	minContentWide = 20
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.styles.title.Render(appTitle),
		m.styles.muted.Render(privacyNotice),
		"",
		m.input.View(),
		"",
		m.renderStrength(),
	}
	if m.analyzed {
		sections = append(sections, "", m.renderMetrics(), m.renderClasses())
		if warnings := m.renderWarnings(); warnings != "" {
			sections = append(sections, "", warnings)
		}
	}
	if t := m.renderToast(); t != "" {
		sections = append(sections, "", t)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	footer := m.styles.footer.Render(m.truncate(helpLine))
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderStrength() string {
	if !m.analyzed {
		label := m.styles.muted.Render(notAnalyzed)
		return label + "\n" + m.meter.ViewAs(0)
	}
	color := m.styles.tierColor(m.result.Level)
	label := lipgloss.NewStyle().Foreground(color).Bold(true).Render(m.result.Level.String())
	score := m.styles.muted.Render(fmt.Sprintf(" %d/100", m.result.Score))
	return label + score + "\n" + m.meter.ViewAs(float64(m.result.Score)/100)
}

func (m *Model) renderMetrics() string {
	rows := []string{
		m.metricLine("Length", fmt.Sprintf("%d", m.result.Length)),
		m.metricLine("Entropy", fmt.Sprintf("%d bits", m.result.EntropyBits)),
		m.metricLine("Crack time", m.result.CrackTime.String()),
	}
	return strings.Join(rows, "\n")
}

func (m *Model) metricLine(label, value string) string {
	return m.styles.label.Render(label) + m.styles.text.Render(value)
}

func (m *Model) renderClasses() string {
	c := m.result.Classes
	items := []string{
		m.classItem("Uppercase", c.Upper),
		m.classItem("Lowercase", c.Lower),
		m.classItem("Numbers", c.Digit),
		m.classItem("Symbols", c.Symbol),
	}
	return strings.Join(items, "  ")
}

func (m *Model) classItem(label string, present bool) string {
	if present {
		return m.styles.check.Render("[x] " + label)
	}
	return m.styles.uncheck.Render("[ ] " + label)
}

func (m *Model) renderWarnings() string {
	if len(m.result.Warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.result.Warnings))
	for _, w := range m.result.Warnings {
		lines = append(lines, m.styles.warning.Render(m.truncate(warningPrefix+w.String())))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderToast() string {
	if m.toast == nil {
		return ""
	}
	style, ok := m.styles.toasts[m.toast.kind]
	if !ok {
		style = m.styles.text
	}
	return style.Render(m.truncate(m.toast.message))
}

// truncate clips s to the terminal width when one is known.
func (m *Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, maxInt(minContentWide, m.width-2), "…")
}
