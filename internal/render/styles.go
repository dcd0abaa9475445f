package render

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorTemp    = lipgloss.Color("#FF6B6B") // Red
	colorFeels   = lipgloss.Color("#FF8C42") // Orange
	colorHumid   = lipgloss.Color("#4A90E2") // Blue
	colorBox     = lipgloss.Color("#6BCF7F") // Green
	colorMinMax  = lipgloss.Color("#FFD93D") // Yellow
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	axisStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tempStyle     = lipgloss.NewStyle().Foreground(colorTemp)
	feelsStyle    = lipgloss.NewStyle().Foreground(colorFeels)
	humidityStyle = lipgloss.NewStyle().Foreground(colorHumid)
	boxStyle      = lipgloss.NewStyle().Foreground(colorBox)
	minMaxStyle   = lipgloss.NewStyle().Foreground(colorMinMax)
)
