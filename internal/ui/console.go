package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/profileform/internal/feedback"
	"github.com/muurk/profileform/internal/validation"
)

// FieldState is the last style a field was given
type FieldState struct {
	Style   feedback.Style
	Opacity float64
}

// Notification is one message passed to Notify
type Notification struct {
	Message string
	IsError bool
}

// snapshotTimer is a delayed callback that never fires: console output is a
// snapshot taken right after the submission, before any highlight reverts.
type snapshotTimer struct {
	delay   time.Duration
	stopped bool
}

func (t *snapshotTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// ConsoleSurface is a feedback.Surface that records calls and renders them
// as a single block of styled text.
type ConsoleSurface struct {
	fields        map[validation.FieldKind]FieldState
	notifications []Notification
	resultText    string
	resultColor   feedback.ResultColor
	timers        map[validation.FieldKind]*snapshotTimer
	lastStyled    validation.FieldKind
	width         int
}

var _ feedback.Surface = (*ConsoleSurface)(nil)

// NewConsoleSurface creates an empty console surface sized to the terminal
func NewConsoleSurface() *ConsoleSurface {
	return &ConsoleSurface{
		fields: make(map[validation.FieldKind]FieldState),
		timers: make(map[validation.FieldKind]*snapshotTimer),
		width:  GetTerminalWidth(),
	}
}

// SetWidth overrides the render width
func (s *ConsoleSurface) SetWidth(width int) *ConsoleSurface {
	s.width = width
	return s
}

// RenderFieldStyle implements feedback.Surface
func (s *ConsoleSurface) RenderFieldStyle(field validation.FieldKind, style feedback.Style, opacity float64) {
	s.fields[field] = FieldState{Style: style, Opacity: opacity}
	s.lastStyled = field
}

// ScheduleDelayed implements feedback.Surface. The callback is kept only so
// the render can show which fields have a pending revert.
func (s *ConsoleSurface) ScheduleDelayed(d time.Duration, _ func()) feedback.Timer {
	t := &snapshotTimer{delay: d}
	// The controller always styles a field right before scheduling its revert
	s.timers[s.lastStyled] = t
	return t
}

// Notify implements feedback.Surface
func (s *ConsoleSurface) Notify(message string, isError bool) {
	s.notifications = append(s.notifications, Notification{Message: message, IsError: isError})
}

// RenderResult implements feedback.Surface
func (s *ConsoleSurface) RenderResult(text string, color feedback.ResultColor) {
	s.resultText = text
	s.resultColor = color
}

// Field returns the recorded state of field
func (s *ConsoleSurface) Field(field validation.FieldKind) FieldState {
	return s.fields[field]
}

// Notifications returns every notification in order
func (s *ConsoleSurface) Notifications() []Notification {
	return s.notifications
}

// ResultText returns the result display text and colour
func (s *ConsoleSurface) ResultText() (string, feedback.ResultColor) {
	return s.resultText, s.resultColor
}

// PendingRevert returns the delay of field's highlight revert, if one is pending
func (s *ConsoleSurface) PendingRevert(field validation.FieldKind) (time.Duration, bool) {
	t, ok := s.timers[field]
	if !ok || t.stopped {
		return 0, false
	}
	return t.delay, true
}

// Render returns the field states, the feedback log, and the result box
func (s *ConsoleSurface) Render() string {
	var b strings.Builder

	b.WriteString(HintTitleStyle.Render("  Fields"))
	b.WriteString("\n")
	for _, field := range validation.Fields {
		b.WriteString(s.renderField(field))
		b.WriteString("\n")
	}

	if len(s.notifications) > 0 {
		b.WriteString("\n")
		b.WriteString(HintTitleStyle.Render("  Feedback"))
		b.WriteString("\n")
		for _, n := range s.notifications {
			if n.IsError {
				b.WriteString(NotificationErrorStyle.Render("    " + FailureMarker + " " + n.Message))
			} else {
				b.WriteString(NotificationInfoStyle.Render("    " + SuccessMarker + " " + n.Message))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.resultBox().Render())
	b.WriteString("\n")
	return b.String()
}

func (s *ConsoleSurface) renderField(field validation.FieldKind) string {
	st := s.fields[field]

	marker := NeutralMarker
	style := lipgloss.NewStyle().Foreground(TextColor)
	switch st.Style {
	case feedback.StyleErrorTint:
		marker = FailureMarker
		style = style.Foreground(ErrorColor)
	case feedback.StyleSuccessTint:
		marker = SuccessMarker
		style = style.Foreground(SuccessColor)
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		style = style.Faint(true)
	}

	line := fmt.Sprintf("    %s %-5s %s", marker, field, st.Style)
	if d, ok := s.PendingRevert(field); ok {
		line += fmt.Sprintf(" (clears in %s)", d)
	}
	return style.Render(line)
}

func (s *ConsoleSurface) resultBox() *Result {
	if s.resultColor == feedback.ResultSuccess {
		return NewSuccessResult("Profile accepted", s.resultText).SetWidth(s.width)
	}

	var errMsgs []string
	for _, n := range s.notifications {
		if n.IsError {
			errMsgs = append(errMsgs, n.Message)
		}
	}

	var err error
	if len(errMsgs) > 0 {
		err = errors.New(errMsgs[len(errMsgs)-1])
	}
	return NewFailureResult("Profile rejected", err, s.fixHints()).
		AddDetail("Result", s.resultText).
		SetWidth(s.width)
}

// fixHints lists the rules for every field currently tinted as an error
func (s *ConsoleSurface) fixHints() []string {
	var hints []string
	for _, field := range validation.Fields {
		if s.fields[field].Style != feedback.StyleErrorTint {
			continue
		}
		switch field {
		case validation.FieldName:
			hints = append(hints, fmt.Sprintf("Name: letters and spaces only, at least %d characters", validation.MinNameLength))
		case validation.FieldAge:
			hints = append(hints, fmt.Sprintf("Age: a whole number from %d to %d", validation.MinAge, validation.MaxAge))
		}
	}
	return hints
}

// Printer writes UI components to a writer
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a printer for out, sized to the terminal
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: GetTerminalWidth()}
}

// Width returns the render width
func (p *Printer) Width() int {
	return p.width
}

// Print writes each component followed by a newline
func (p *Printer) Print(components ...fmt.Stringer) {
	for _, c := range components {
		fmt.Fprintln(p.out, c.String())
	}
}

// PrintText writes plain text followed by a newline
func (p *Printer) PrintText(text string) {
	fmt.Fprintln(p.out, text)
}
