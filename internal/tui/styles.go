package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	Tag         lipgloss.Style
	TagActive   lipgloss.Style
	Clock       lipgloss.Style
	ClockUrgent lipgloss.Style
	Panel       lipgloss.Style
	Alert       lipgloss.Style
	Done        lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds the palette for the configured theme. Anything other
// than "light" falls back to the dark palette.
func NewStyles(theme string) Styles {
	accent := lipgloss.Color("205")
	muted := lipgloss.Color("241")
	urgent := lipgloss.Color("196")
	ok := lipgloss.Color("42")
	if theme == "light" {
		accent = lipgloss.Color("162")
		muted = lipgloss.Color("245")
		urgent = lipgloss.Color("124")
		ok = lipgloss.Color("28")
	}
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Tag:         lipgloss.NewStyle().Foreground(muted),
		TagActive:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Clock:       lipgloss.NewStyle().Bold(true),
		ClockUrgent: lipgloss.NewStyle().Bold(true).Foreground(urgent),
		Panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		Alert:       lipgloss.NewStyle().Bold(true).Foreground(urgent),
		Done:        lipgloss.NewStyle().Bold(true).Foreground(ok),
		Help:        lipgloss.NewStyle().Foreground(muted),
	}
}
