package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorHigh    = lipgloss.Color("#6BCF7F") // Green for high tide
	colorLow     = lipgloss.Color("#FFD93D") // Yellow for low tide
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	highTideStyle = lipgloss.NewStyle().
			Foreground(colorHigh).
			Bold(true)

	lowTideStyle = lipgloss.NewStyle().
			Foreground(colorLow).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section header styles
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)
)
