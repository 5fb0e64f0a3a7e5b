package viz

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	grid     lipgloss.Style
	hint     lipgloss.Style
	progress lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    colored(t.Title).Bold(true),
		grid:     colored(t.Grid),
		hint:     colored(t.Muted).Italic(true),
		progress: colored(t.Accent),
	}
}

func colored(c lipgloss.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c != "" {
		s = s.Foreground(c)
	}
	return s
}
