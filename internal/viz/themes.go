package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome colours of the viewer. Spiral dots are coloured by
// the run's palette, not the theme.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeInk = Theme{
		Name:   "ink",
		Title:  lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0392cf"),
		Border: lipgloss.Color("#444466"),
		Text:   lipgloss.Color("#e0e0e0"),
		Muted:  lipgloss.Color("#686868"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"), // Green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Border: lipgloss.Color("#005500"),
		Text:   lipgloss.Color("#00cc00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#e0f0ff"),
		Accent: lipgloss.Color("#ffd700"),
		Border: lipgloss.Color("#0077be"),
		Text:   lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#fff5f5"),
		Accent: lipgloss.Color("#feca57"),
		Border: lipgloss.Color("#8b6b8c"),
		Text:   lipgloss.Color("#ff9ff3"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeInk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, or the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeInk
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
