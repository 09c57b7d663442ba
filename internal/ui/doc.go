// Package ui provides console output components for profileform.
//
// These components follow a "run once and exit" pattern: the check command
// pushes one submission through the feedback controller, then prints what the
// ConsoleSurface recorded. Nothing here waits for user input except Confirm.
//
// # Components
//
//   - Header: Command banner showing the operation and its inputs
//   - ConsoleSurface: feedback.Surface that records field styles,
//     notifications, and the result text, then renders them
//   - Result: Success/failure boxes
//   - Confirm: Warning box with a y/N prompt
//
// # Usage Pattern
//
//	surface := ui.NewConsoleSurface()
//	ctrl := feedback.NewController(surface, feedback.DefaultOptions())
//	ctrl.SetName(name)
//	ctrl.SetAge(age)
//	outcome := ctrl.Submit()
//
//	p := ui.NewPrinter(os.Stdout)
//	p.Print(ui.NewHeader("Profile Check", "profileform check",
//	    ui.Param{Key: "Name", Value: name},
//	    ui.Param{Key: "Age", Value: age},
//	))
//	p.PrintText(surface.Render())
//
// # Highlight Reverts
//
// Timers scheduled on a ConsoleSurface never fire; the render notes which
// fields still had a revert pending when the snapshot was taken.
//
// # Logging Integration
//
// Logging is controlled via PROFILEFORM_LOG_LEVEL. When unset, zap is silent
// so the styled output is displayed cleanly.
package ui
