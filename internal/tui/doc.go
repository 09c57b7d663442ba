// Package tui implements the interactive profile form on Bubble Tea.
//
// The Model owns two text inputs and a submit button and forwards every edit
// to a feedback.Controller. The controller draws through screenState, which
// records field styles, the current notice and the result text, and turns
// delayed callbacks into tea.Tick commands. Those come back to Update as
// messages, so controller callbacks always run on the program goroutine.
package tui
