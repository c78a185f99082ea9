package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle heads the selection menu.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// CursorStyle marks the highlighted menu row.
	CursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// KindStyle renders the component name inside a menu row.
	KindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// LabelStyle renders row descriptions and hints.
	LabelStyle = lipgloss.NewStyle().Faint(true)

	// WarnStyle colors warning: lines on capable terminals.
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ErrorStyle colors error: lines on capable terminals.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// InvalidStyle reports rejected menu input.
	InvalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
