package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for report rendering.
var (
	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SummaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	UnfilledStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	FilledStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
