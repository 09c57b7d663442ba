package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/profileform/internal/feedback"
	"github.com/muurk/profileform/internal/validation"
)

// Messages for delayed callbacks
type timerFiredMsg struct {
	id uint64
}

type noticeExpiredMsg struct {
	id uint64
}

type fieldStyle struct {
	style   feedback.Style
	opacity float64
}

type notice struct {
	id      uint64
	text    string
	isError bool
}

// teaTimer is a fire-once callback delivered as a timerFiredMsg
type teaTimer struct {
	id    uint64
	fn    func()
	state *screenState
	done  bool
}

// Stop implements feedback.Timer
func (t *teaTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	delete(t.state.timers, t.id)
	return true
}

// screenState is the feedback.Surface behind the form. It is shared by every
// copy of Model, so it lives behind a pointer. Commands produced by Surface
// calls are queued and handed to Bubble Tea by drain.
type screenState struct {
	fields      map[validation.FieldKind]fieldStyle
	notice      *notice
	result      string
	resultColor feedback.ResultColor

	noticeDuration time.Duration
	timers         map[uint64]*teaTimer
	nextID         uint64
	pending        []tea.Cmd
}

var _ feedback.Surface = (*screenState)(nil)

func newScreenState(noticeDuration time.Duration) *screenState {
	return &screenState{
		fields:         make(map[validation.FieldKind]fieldStyle),
		noticeDuration: noticeDuration,
		timers:         make(map[uint64]*teaTimer),
	}
}

// RenderFieldStyle implements feedback.Surface
func (s *screenState) RenderFieldStyle(field validation.FieldKind, style feedback.Style, opacity float64) {
	s.fields[field] = fieldStyle{style: style, opacity: opacity}
}

// ScheduleDelayed implements feedback.Surface using tea.Tick, so fn runs on
// the Bubble Tea goroutine when the timerFiredMsg comes back through Update.
func (s *screenState) ScheduleDelayed(d time.Duration, fn func()) feedback.Timer {
	s.nextID++
	t := &teaTimer{id: s.nextID, fn: fn, state: s}
	s.timers[t.id] = t

	id := t.id
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return t
}

// Notify implements feedback.Surface. The newest notice replaces any
// visible one and disappears after noticeDuration.
func (s *screenState) Notify(message string, isError bool) {
	s.nextID++
	s.notice = &notice{id: s.nextID, text: message, isError: isError}

	id := s.nextID
	s.pending = append(s.pending, tea.Tick(s.noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	}))
}

// RenderResult implements feedback.Surface
func (s *screenState) RenderResult(text string, color feedback.ResultColor) {
	s.result = text
	s.resultColor = color
}

// fire runs the callback for timer id, unless it was stopped
func (s *screenState) fire(id uint64) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.done = true
	delete(s.timers, id)
	t.fn()
	return true
}

// expireNotice hides the notice if it is still the one that scheduled id
func (s *screenState) expireNotice(id uint64) {
	if s.notice != nil && s.notice.id == id {
		s.notice = nil
	}
}

// drain returns the queued commands as one batch and clears the queue
func (s *screenState) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
