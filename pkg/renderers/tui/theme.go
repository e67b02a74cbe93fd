package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used for terminal output.
type Theme struct {
	Section    lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Toast      lipgloss.Style
	ToastTitle lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1),
		ToastTitle: lipgloss.NewStyle().Bold(true),
	}
}
