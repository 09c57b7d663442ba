package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/profileform/internal/feedback"
	"github.com/muurk/profileform/internal/logging"
	"github.com/muurk/profileform/internal/validation"
)

// DefaultNoticeDuration is how long a notification stays on screen
const DefaultNoticeDuration = 3 * time.Second

// Focus targets, in tab order
const (
	focusName = iota
	focusAge
	focusSubmit
	focusCount
)

// Options configures the form model
type Options struct {
	Feedback       feedback.Options
	NoticeDuration time.Duration
	ShowHelp       bool
	Name           string // Prefilled name
	Age            string // Prefilled age
}

// Model is the Bubble Tea model for the profile form screen
type Model struct {
	ctrl   *feedback.Controller
	screen *screenState

	inputs []textinput.Model
	focus  int

	keys     formKeyMap
	help     help.Model
	showHelp bool

	width    int
	height   int
	quitting bool
}

// NewModel creates the form model, wires it to a feedback controller, and
// applies any prefilled values as if they had been typed.
func NewModel(opts Options) Model {
	if opts.NoticeDuration <= 0 {
		opts.NoticeDuration = DefaultNoticeDuration
	}

	screen := newScreenState(opts.NoticeDuration)
	ctrl := feedback.NewController(screen, opts.Feedback)
	ctrl.Start()

	nameInput := textinput.New()
	nameInput.Placeholder = "Enter your name"
	nameInput.CharLimit = 64
	nameInput.Width = FieldWidth
	nameInput.Prompt = ""

	ageInput := textinput.New()
	ageInput.Placeholder = "Enter your age"
	ageInput.CharLimit = 8
	ageInput.Width = FieldWidth
	ageInput.Prompt = ""

	m := Model{
		ctrl:     ctrl,
		screen:   screen,
		inputs:   []textinput.Model{nameInput, ageInput},
		keys:     newFormKeyMap(),
		help:     help.New(),
		showHelp: opts.ShowHelp,
		width:    MinTerminalWidth + 24,
	}

	// Inputs truncate to CharLimit; the controller sees what they hold
	prefill := []string{opts.Name, opts.Age}
	for i, field := range validation.Fields {
		if prefill[i] == "" {
			continue
		}
		m.inputs[i].SetValue(prefill[i])
		ctrl.SetField(field, m.inputs[i].Value())
	}
	m.inputs[focusName].Focus()

	return m
}

// Controller exposes the feedback controller. The CLI reads the last outcome
// from it after the program exits.
func (m Model) Controller() *feedback.Controller {
	return m.ctrl
}

// Init starts the cursor blink and any timers queued while building the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.screen.drain())
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timerFiredMsg:
		m.screen.fire(msg.id)
		return m, m.screen.drain()

	case noticeExpiredMsg:
		m.screen.expireNotice(msg.id)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.ctrl.Close()
			logging.Info("Form closed")
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, m.screen.drain()

		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)

		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	// Pass everything else to the focused input
	if m.focus < len(m.inputs) {
		field := validation.Fields[m.focus]
		before := m.inputs[m.focus].Value()
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

		if after := m.inputs[m.focus].Value(); after != before {
			m.ctrl.SetField(field, after)
		}
	}

	return m, tea.Batch(cmd, m.screen.drain())
}

func (m *Model) submit() {
	outcome := m.ctrl.Submit()
	logging.Debug("Form submitted",
		zap.Bool("accepted", outcome.Accepted),
		zap.Bool("ignored", outcome.Ignored),
	)
}

// setFocus moves focus, blurring the previously focused input
func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == target {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// View renders the form
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var footer string
	if m.showHelp {
		footer = m.help.View(m.keys)
	}
	return RenderApplicationContainer(m.buildContent(), footer, m.width, m.height)
}

func (m Model) buildContent() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tell us about yourself"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Fields are checked as you type. Press enter to submit."))
	b.WriteString("\n\n")

	labels := []string{"Name", "Age"}
	for i, field := range validation.Fields {
		b.WriteString(LabelStyle.Render(labels[i]))
		b.WriteString("\n")
		box := fieldBoxStyle(m.screen.fields[field], m.focus == i)
		b.WriteString(box.Render(m.inputs[i].View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.focus == focusSubmit {
		b.WriteString(FocusedButtonStyle.Render("Submit"))
	} else {
		b.WriteString(ButtonStyle.Render("Submit"))
	}
	b.WriteString("\n\n")

	if n := m.screen.notice; n != nil {
		if n.isError {
			b.WriteString(ErrorNoticeStyle.Render("✗ " + n.text))
		} else {
			b.WriteString(SuccessNoticeStyle.Render("✓ " + n.text))
		}
	}
	b.WriteString("\n\n")

	resultWidth := m.width - 12
	if resultWidth < FieldWidth {
		resultWidth = FieldWidth
	}
	b.WriteString(resultStyle(m.screen.resultColor).Width(resultWidth).Render(m.screen.result))
	b.WriteString("\n")

	return b.String()
}
