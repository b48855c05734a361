// Package tui provides the Bubble Tea password analyzer interface.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/verte-zerg/pwmeter/internal/generator"
	"github.com/verte-zerg/pwmeter/internal/model"
	"github.com/verte-zerg/pwmeter/internal/store"
	"github.com/verte-zerg/pwmeter/internal/strength"
)

const (
	defaultToastDuration = 3 * time.Second
	meterWidth           = 40

	msgGenerated   = "Strong password generated successfully!"
	msgCopied      = "Password copied to clipboard!"
	msgNothingCopy = "No password to copy"
	msgCopyFailed  = "Failed to copy password"
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastWarning
	toastError
)

type toast struct {
	id      int
	kind    toastKind
	message string
}

type toastExpiredMsg struct {
	id int
}

// Model implements the Bubble Tea analyzer UI. It holds no scoring logic;
// it forwards the input text to strength.Evaluate and renders the result.
type Model struct {
	config    model.Config
	store     *store.Store
	gen       *generator.Generator
	clipboard Clipboard

	input  textinput.Model
	meter  progress.Model
	theme  model.Theme
	styles styles

	width  int
	height int

	analyzed      bool
	result        strength.Result
	lastGenerated string

	toast    *toast
	toastSeq int
}

// NewModel constructs an analyzer TUI model. st may be nil, in which case
// theme changes are not persisted.
func NewModel(cfg model.Config, st *store.Store, gen *generator.Generator, clip Clipboard) *Model {
	if cfg.Theme == "" {
		cfg.Theme = model.ThemeDark
	}
	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = defaultToastDuration
	}
	m := &Model{
		config:    cfg,
		store:     st,
		gen:       gen,
		clipboard: clip,
		theme:     cfg.Theme,
		styles:    newStyles(cfg.Theme),
	}
	m.input = newPasswordInput(cfg.Reveal)
	m.meter = progress.New(
		progress.WithWidth(meterWidth),
		progress.WithoutPercentage(),
		progress.WithSolidFill(string(m.styles.tierColor(strength.VeryWeak))),
	)
	m.applyTheme()
	return m
}

func newPasswordInput(reveal bool) textinput.Model {
	input := textinput.New()
	input.Prompt = "Password: "
	input.Placeholder = "type or press ctrl+g to generate"
	input.CharLimit = 0
	input.EchoCharacter = '•'
	input.EchoMode = textinput.EchoPassword
	if reveal {
		input.EchoMode = textinput.EchoNormal
	}
	input.Focus()
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = maxInt(10, minInt(msg.Width-len(m.input.Prompt)-4, 60))
		return m, nil
	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.clear()
			return m, tea.Quit
		case tea.KeyCtrlG:
			return m, m.generate()
		case tea.KeyCtrlY:
			return m, m.copy()
		case tea.KeyCtrlR:
			m.toggleReveal()
			return m, nil
		case tea.KeyCtrlT:
			m.toggleTheme()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.analyze()
	}
	return m, cmd
}

// Value returns the current input text.
func (m *Model) Value() string {
	return m.input.Value()
}

func (m *Model) analyze() {
	text := m.input.Value()
	if text == "" {
		m.analyzed = false
		m.result = strength.Result{}
		m.meter.FullColor = string(m.styles.tierColor(strength.VeryWeak))
		return
	}
	m.result = strength.Evaluate(text)
	m.analyzed = true
	m.meter.FullColor = string(m.styles.tierColor(m.result.Level))
}

func (m *Model) generate() tea.Cmd {
	password := m.gen.Generate(m.lastGenerated)
	m.lastGenerated = password
	m.input.SetValue(password)
	m.input.CursorEnd()
	m.analyze()
	return m.showToast(toastSuccess, msgGenerated)
}

func (m *Model) copy() tea.Cmd {
	text := m.input.Value()
	if text == "" {
		return m.showToast(toastWarning, msgNothingCopy)
	}
	if err := m.clipboard.WriteAll(text); err != nil {
		log.WithError(err).Warn("failed to copy password")
		return m.showToast(toastError, msgCopyFailed)
	}
	return m.showToast(toastSuccess, msgCopied)
}

func (m *Model) toggleReveal() {
	if m.input.EchoMode == textinput.EchoPassword {
		m.input.EchoMode = textinput.EchoNormal
		return
	}
	m.input.EchoMode = textinput.EchoPassword
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styles = newStyles(m.theme)
	m.applyTheme()
	if m.store == nil {
		return
	}
	if err := m.store.SetTheme(context.Background(), m.theme); err != nil {
		log.WithError(err).Warn("failed to save theme preference")
	}
}

func (m *Model) applyTheme() {
	m.input.PromptStyle = m.styles.muted
	m.input.TextStyle = m.styles.text
	m.input.PlaceholderStyle = m.styles.muted
	m.meter.EmptyColor = string(m.styles.palette.empty)
	level := strength.VeryWeak
	if m.analyzed {
		level = m.result.Level
	}
	m.meter.FullColor = string(m.styles.tierColor(level))
}

func (m *Model) showToast(kind toastKind, message string) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, kind: kind, message: message}
	return tea.Tick(m.config.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// clear wipes the input before exit so the password does not linger in the model.
func (m *Model) clear() {
	m.input.Reset()
	m.lastGenerated = ""
	m.analyze()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
