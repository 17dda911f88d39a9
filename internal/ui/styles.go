package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	SelectionMode lipgloss.Style
	TagPanel      lipgloss.Style
	Tag           lipgloss.Style
	NewTag        lipgloss.Style
	Help          lipgloss.Style
	Prompt        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Highlight:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("255")),
		SelectionMode: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		TagPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Tag:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		NewTag: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:   lipgloss.NewStyle().Faint(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
