package cmd

import "github.com/charmbracelet/lipgloss"

var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	plannedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
)

// statusStyle maps a session status to its display style.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case statusPassed:
		return passedStyle
	case statusFailed:
		return failedStyle
	case statusSkipped:
		return skippedStyle
	default:
		return plannedStyle
	}
}
