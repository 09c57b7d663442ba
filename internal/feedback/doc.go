// Package feedback drives the profile form: it owns the field text, validates
// on every change and on submit, and tells a Surface what to show.
//
// The Controller never draws anything itself. A Surface renders field styles,
// notifications, and the result text, and provides fire-once timers. The
// terminal UI and the one-shot console renderer are both Surfaces.
//
// # Live Feedback
//
// Every SetField call restyles that field:
//
//	empty text       -> StyleNormal, opacity 1.0
//	invalid text     -> StyleErrorTint, opacity 0.7 + error notification
//	valid text       -> StyleSuccessTint, opacity 0.8 + success notification
//
// # Submission
//
// Submit trims both fields, clears highlights, and re-validates. On failure the
// first reason is notified, the result text is reset to the placeholder, and
// each offending field gets an error highlight that reverts after the
// highlight delay (2s by default). On success the summary is rendered in the
// success colour.
//
// # Highlight Timers
//
// Each field owns at most one pending highlight timer. A new highlight, a
// keystroke restyle, or a submit stops the previous timer, and a callback
// whose timer has been superseded does nothing.
//
// # Thread Safety
//
// Controller is not safe for concurrent use. Surfaces must run timer callbacks
// on the same goroutine that calls the Controller (the TUI routes them through
// the Bubble Tea message loop).
package feedback
