package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used across the TUI.
type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	primary := lipgloss.Color("99")
	muted := lipgloss.Color("241")

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			PaddingLeft(0).
			Bold(true).
			Foreground(primary).
			SetString("> "),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Status: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
	}
}
