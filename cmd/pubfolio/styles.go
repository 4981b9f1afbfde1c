package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	colorOK     = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	colorError  = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}

	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle     = lipgloss.NewStyle().Foreground(colorOK).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	draftStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	labelStyle  = lipgloss.NewStyle().Foreground(colorAccent).Width(12)
)
