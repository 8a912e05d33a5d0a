package qlight

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles for circuit diagrams. Rendering degrades to plain text
// on terminals without color support.
var (
	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	controlStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	wireStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	barrierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bb9af7"))
)
