package feedback

import (
	"time"

	"github.com/muurk/profileform/internal/validation"
)

type fieldStyle struct {
	Style   Style
	Opacity float64
}

type notification struct {
	Message string
	IsError bool
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool

	// Style call made just before this timer was scheduled
	afterField  validation.FieldKind
	afterStyle  Style
	styledFirst bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// recordingSurface records every call and fires timers on demand
type recordingSurface struct {
	styles        map[validation.FieldKind]fieldStyle
	styleHistory  []fieldStyle
	styledFields  []validation.FieldKind
	lastCall      string
	notifications []notification
	result        string
	resultColor   ResultColor
	timers        []*fakeTimer
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{styles: make(map[validation.FieldKind]fieldStyle)}
}

func (s *recordingSurface) RenderFieldStyle(field validation.FieldKind, style Style, opacity float64) {
	fs := fieldStyle{Style: style, Opacity: opacity}
	s.styles[field] = fs
	s.styleHistory = append(s.styleHistory, fs)
	s.styledFields = append(s.styledFields, field)
	s.lastCall = "style"
}

func (s *recordingSurface) ScheduleDelayed(d time.Duration, fn func()) Timer {
	t := &fakeTimer{delay: d, fn: fn}
	if s.lastCall == "style" {
		last := len(s.styleHistory) - 1
		t.afterField = s.styledFields[last]
		t.afterStyle = s.styleHistory[last].Style
		t.styledFirst = true
	}
	s.lastCall = "schedule"
	s.timers = append(s.timers, t)
	return t
}

func (s *recordingSurface) Notify(message string, isError bool) {
	s.notifications = append(s.notifications, notification{Message: message, IsError: isError})
	s.lastCall = "notify"
}

func (s *recordingSurface) RenderResult(text string, color ResultColor) {
	s.result = text
	s.resultColor = color
	s.lastCall = "result"
}

// fire runs timer i the way a real surface would, stopped or not
func (s *recordingSurface) fire(i int) {
	t := s.timers[i]
	t.fired = true
	t.fn()
}

// fireActive runs every timer that has not been stopped or fired
func (s *recordingSurface) fireActive() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.fn()
			n++
		}
	}
	return n
}

func (s *recordingSurface) lastNotification() notification {
	if len(s.notifications) == 0 {
		return notification{}
	}
	return s.notifications[len(s.notifications)-1]
}
