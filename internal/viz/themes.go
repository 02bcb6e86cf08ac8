package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the board and its chrome.
type Theme struct {
	Name        string
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Background  lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Live        lipgloss.Color
	Dead        lipgloss.Color
	Preview     lipgloss.Color
	LivePreview lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:        "cyberpunk",
		Primary:     lipgloss.Color("#ff00ff"), // Magenta
		Secondary:   lipgloss.Color("#00ffff"), // Cyan
		Background:  lipgloss.Color("#0a0a0a"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666666"),
		Live:        lipgloss.Color("#00ffff"),
		Dead:        lipgloss.Color("#1a1a2e"),
		Preview:     lipgloss.Color("#ff00ff"),
		LivePreview: lipgloss.Color("#ffff00"),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Primary:     lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:   lipgloss.Color("#00cc00"),
		Background:  lipgloss.Color("#001100"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
		Live:        lipgloss.Color("#00ff00"),
		Dead:        lipgloss.Color("#002200"),
		Preview:     lipgloss.Color("#88ff88"),
		LivePreview: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:        "minimal",
		Primary:     lipgloss.Color("#ffffff"),
		Secondary:   lipgloss.Color("#cccccc"),
		Background:  lipgloss.Color("#000000"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#888888"),
		Live:        lipgloss.Color("#ffffff"),
		Dead:        lipgloss.Color("#222222"),
		Preview:     lipgloss.Color("#0088ff"),
		LivePreview: lipgloss.Color("#00ff00"),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		Primary:     lipgloss.Color("#0077be"), // Ocean blue
		Secondary:   lipgloss.Color("#00a8cc"),
		Background:  lipgloss.Color("#001a33"),
		Text:        lipgloss.Color("#e0f0ff"),
		Muted:       lipgloss.Color("#4488aa"),
		Live:        lipgloss.Color("#e0f0ff"),
		Dead:        lipgloss.Color("#002244"),
		Preview:     lipgloss.Color("#ffd700"),
		LivePreview: lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		Primary:     lipgloss.Color("#ff6b6b"), // Coral
		Secondary:   lipgloss.Color("#feca57"),
		Background:  lipgloss.Color("#2d1b2e"),
		Text:        lipgloss.Color("#fff5f5"),
		Muted:       lipgloss.Color("#8b6b8c"),
		Live:        lipgloss.Color("#feca57"),
		Dead:        lipgloss.Color("#3d2b3e"),
		Preview:     lipgloss.Color("#ff9ff3"),
		LivePreview: lipgloss.Color("#5fd068"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// HasTheme reports whether name is a built-in theme.
func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// GetTheme returns a theme by name, cyberpunk if unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
