package terminal

import "github.com/charmbracelet/lipgloss"

var (
	amber   = lipgloss.Color("#f9e2af")
	green   = lipgloss.Color("#a6e3a1")
	peach   = lipgloss.Color("#fab387")
	subtext = lipgloss.Color("#a6adc8")
	surface = lipgloss.Color("#45475a")

	titleStyle   = lipgloss.NewStyle().Foreground(amber).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(subtext)
	hotStyle     = lipgloss.NewStyle().Foreground(peach).Bold(true)
	drankStyle   = lipgloss.NewStyle().Foreground(green)
	pendingStyle = lipgloss.NewStyle().Foreground(surface)
	pointStyle   = lipgloss.NewStyle().Foreground(amber)
	nowStyle     = lipgloss.NewStyle().Foreground(peach).Bold(true)

	bannerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(peach).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(surface).
			Padding(0, 1)
)
