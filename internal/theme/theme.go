package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the simulator.
type Styles struct {
	Screen     *lipgloss.Style
	Frame      *lipgloss.Style
	Status     *lipgloss.Style
	StatusMode *lipgloss.Style
	Error      *lipgloss.Style
	Help       *lipgloss.Style
	Inspector  *lipgloss.Style
	Title      *lipgloss.Style
	Selected   *lipgloss.Style
}

var defaultStyles = Styles{
	Screen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("252")),
	),
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	StatusMode: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Inspector: ptr(
		lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("238")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	),
	Selected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
