package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the interactive view. Empty colors leave text
// unstyled.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Grid   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

var (
	ThemePlain = Theme{Name: "plain"}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#88ff88"),
		Grid:   lipgloss.Color("#00ff00"), // Green phosphor
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Grid:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#ff00ff"), // Magenta
		Grid:   lipgloss.Color("#00ffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffff00"),
	}

	Themes = []Theme{
		ThemePlain,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeCyberpunk,
	}
)

// GetTheme returns a theme by name, falling back to plain.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePlain
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
