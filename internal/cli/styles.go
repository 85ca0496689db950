package cli

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used for terminal output. A zero value
// renders everything unstyled, which is what quiet scripts and tests get.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns the standard style set. With noColor set, all styles
// are plain passthroughs.
func NewStyles(noColor bool) Styles {
	if noColor {
		return Styles{}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
