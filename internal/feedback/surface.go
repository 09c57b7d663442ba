package feedback

import (
	"fmt"
	"time"

	"github.com/muurk/profileform/internal/validation"
)

// Style is an abstract field style token. Surfaces map it to real colours.
type Style int

const (
	StyleNormal Style = iota
	StyleErrorTint
	StyleSuccessTint
)

// String returns the style name
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleErrorTint:
		return "ErrorTint"
	case StyleSuccessTint:
		return "SuccessTint"
	default:
		return fmt.Sprintf("Style(%d)", s)
	}
}

// Field opacities paired with each style
const (
	OpacityNormal  = 1.0
	OpacityError   = 0.7
	OpacitySuccess = 0.8
)

// ResultColor is the colour token for the result display
type ResultColor int

const (
	ResultNeutral ResultColor = iota
	ResultSuccess
)

// String returns the colour name
func (c ResultColor) String() string {
	switch c {
	case ResultNeutral:
		return "Neutral"
	case ResultSuccess:
		return "Success"
	default:
		return fmt.Sprintf("ResultColor(%d)", c)
	}
}

// Timer is a handle to a pending delayed callback
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Surface is everything the Controller needs from a presentation layer
type Surface interface {
	// RenderFieldStyle restyles one input field
	RenderFieldStyle(field validation.FieldKind, style Style, opacity float64)

	// ScheduleDelayed runs fn once after d. fn must be invoked on the
	// goroutine that drives the Controller.
	ScheduleDelayed(d time.Duration, fn func()) Timer

	// Notify shows a transient message
	Notify(message string, isError bool)

	// RenderResult replaces the result display
	RenderResult(text string, color ResultColor)
}
