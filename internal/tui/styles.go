package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorPink   = lipgloss.Color("#FF79C6") // Dracula Pink

	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")
)

// Shared Styles
var (
	docStyle = lipgloss.NewStyle().Margin(0, 0)

	// Code and summary frame
	AppBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(1, 3).
			Align(lipgloss.Center)

	focusedInputBoxStyle = inputBoxStyle.
				BorderForeground(colorPurple)

	subtleStyle = lipgloss.NewStyle().Foreground(colorGray)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true).
			Align(lipgloss.Center)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	// Image path prompt
	WizardCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(1, 2).
			Width(65)

	StepStyle = lipgloss.NewStyle().
			Foreground(colorPink).
			Bold(true).
			MarginBottom(1)

	// Code preview header
	PreviewHeaderStyle = lipgloss.NewStyle().
				Background(colorCyan).
				Foreground(lipgloss.Color("#282a36")). // Dark text
				Bold(true).
				Padding(0, 2)
)
