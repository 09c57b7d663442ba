package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Detail is one key/value line in a Result
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box (success or failure)
type Result struct {
	Type   ResultType // Success or failure
	Title  string     // e.g., "Profile accepted"
	Body   string     // Free text shown under the title (the form summary)
	Detail []Detail   // Key-value details, rendered in order
	Error  error      // Error (for failure results)
	Hints  []string   // What to fix (for failure results)
	Width  int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title, body string) *Result {
	return &Result{
		Type:  ResultSuccess,
		Title: title,
		Body:  body,
		Width: GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints []string) *Result {
	return &Result{
		Type:  ResultFailure,
		Title: title,
		Error: err,
		Hints: hints,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Detail = append(r.Detail, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	if r.Type == ResultFailure {
		return r.renderFailure()
	}
	return r.renderSuccess()
}

func (r *Result) renderSuccess() string {
	width := ClampWidth(r.Width)

	lines := []string{
		"",
		SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title)),
		"",
	}

	if r.Body != "" {
		for _, line := range strings.Split(r.Body, "\n") {
			lines = append(lines, ResultValueStyle.Render("   "+line))
		}
		lines = append(lines, "")
	}

	lines = append(lines, r.detailLines()...)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width - 2).
		Padding(0, DefaultPadding).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure() string {
	width := ClampWidth(r.Width)

	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	lines = append(lines, r.detailLines()...)

	if len(r.Hints) > 0 {
		lines = append(lines, r.renderHintBox(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, DefaultPadding).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) detailLines() []string {
	if len(r.Detail) == 0 {
		return nil
	}
	lines := make([]string, 0, len(r.Detail)+1)
	for _, d := range r.Detail {
		lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	return append(lines, "")
}

// renderHintBox renders the inner "Fix:" box
func (r *Result) renderHintBox(width int) string {
	lines := []string{HintTitleStyle.Render("Fix:"), ""}
	for _, hint := range r.Hints {
		lines = append(lines, HintItemStyle.Render("  • "+hint))
	}

	innerWidth := width - 12
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
