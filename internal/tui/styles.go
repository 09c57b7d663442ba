package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/profileform/internal/feedback"
	"github.com/muurk/profileform/internal/urls"
	"github.com/muurk/profileform/internal/version"
)

// Application branding constants
const (
	AppName   = "PROFILE FORM"
	GitHubURL = urls.Repository
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Get().Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 48 // Minimum supported terminal width
	FieldWidth       = 32 // Width of the text inputs
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0, 0, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SubtleColor).
			Padding(0, 3)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 3)

	ErrorNoticeStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(ErrorColor).
				Padding(0, 1)

	SuccessNoticeStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(SecondaryColor).
				Padding(0, 1)

	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(1, 2)
)

// fieldBoxStyle maps a feedback style token onto a bordered input box.
// Opacity below 1 renders faint, the closest terminal analogue.
func fieldBoxStyle(fs fieldStyle, focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(FieldWidth + 4)

	switch fs.style {
	case feedback.StyleErrorTint:
		style = style.BorderForeground(ErrorColor)
	case feedback.StyleSuccessTint:
		style = style.BorderForeground(SecondaryColor)
	default:
		if focused {
			style = style.BorderForeground(PrimaryColor)
		} else {
			style = style.BorderForeground(SubtleColor)
		}
	}

	if fs.opacity > 0 && fs.opacity < feedback.OpacityNormal {
		style = style.Faint(true)
	}
	return style
}

// resultStyle colours the result box for a result colour token
func resultStyle(color feedback.ResultColor) lipgloss.Style {
	if color == feedback.ResultSuccess {
		return ResultBoxStyle.
			BorderForeground(SecondaryColor).
			Foreground(SecondaryColor)
	}
	return ResultBoxStyle.Foreground(SubtleColor)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps screen content with the application
// header, a help footer, and an outer border sized to the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 2)

	sections := []string{
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
	}
	if footerText != "" {
		sections = append(sections, footerStyle.Render(footerText))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2)
	if terminalHeight > 2 {
		border = border.Height(terminalHeight - 2)
	}

	return border.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
