package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner      lipgloss.Style
	tagline     lipgloss.Style
	title       lipgloss.Style
	counter     lipgloss.Style
	prompt      lipgloss.Style
	required    lipgloss.Style
	tip         lipgloss.Style
	prior       lipgloss.Style
	warning     lipgloss.Style
	success     lipgloss.Style
	empty       lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	rank        lipgloss.Style
	score       lipgloss.Style
	projectName lipgloss.Style
	detail      lipgloss.Style
	section     lipgloss.Style
	tableHeader lipgloss.Style
}

func newStyles() styles {
	return styles{
		banner:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		tagline:     lipgloss.NewStyle().Faint(true),
		title:       lipgloss.NewStyle().Bold(true),
		counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		required:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		tip:         lipgloss.NewStyle().Faint(true),
		prior:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		success:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		empty:       lipgloss.NewStyle().Faint(true),
		label:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		rank:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		score:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		projectName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:     lipgloss.NewStyle().MarginTop(1),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
	}
}
