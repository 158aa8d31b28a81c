package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Name        lipgloss.Style
	Exec        lipgloss.Style
	Score       lipgloss.Style
	SelectionBg lipgloss.Style
	Error       lipgloss.Style
	Scroll      lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Name:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Exec:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Score:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
