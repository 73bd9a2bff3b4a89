package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Faint   lipgloss.Style
	Spinner lipgloss.Style
	Box     lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:   base.Bold(true).Foreground(lipgloss.Color("#1976D2")),
		Label:   base.Foreground(lipgloss.Color("#A3A3A3")),
		Value:   base.Foreground(lipgloss.Color("#D1D5DB")),
		Status:  base.Bold(true),
		Success: base.Foreground(lipgloss.Color("#22C55E")),
		Error:   base.Foreground(lipgloss.Color("#EF4444")),
		Warning: base.Foreground(lipgloss.Color("#F59E0B")),
		Faint:   base.Faint(true),
		Spinner: base.Foreground(lipgloss.Color("#64B5F6")),
		Box:     base.Padding(0, 1),
	}
}
