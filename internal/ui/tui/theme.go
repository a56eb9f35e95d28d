package tui

import "github.com/charmbracelet/lipgloss"

const (
	accent = lipgloss.Color("39")
	alert  = lipgloss.Color("203")
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Prompt   lipgloss.Style
	Toast    lipgloss.Style
}

func DefaultTheme() Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: faint,
		Help:     faint.Italic(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Prompt: lipgloss.NewStyle().Bold(true),
		Toast:  lipgloss.NewStyle().Foreground(alert),
	}
}
