package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Item       lipgloss.Style
	Selected   lipgloss.Style
	Meta       lipgloss.Style
	Body       lipgloss.Style
	Help       lipgloss.Style
	Success    lipgloss.Style
	Info       lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style
	InputLabel lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		Item:       lipgloss.NewStyle().PaddingLeft(2),
		Selected:   lipgloss.NewStyle().PaddingLeft(0).Foreground(lipgloss.Color("205")).Bold(true),
		Meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Body:       lipgloss.NewStyle().PaddingLeft(2),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(1, 0, 0, 0),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		InputLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
	}
}
