package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours each part of the play screen.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Field  lipgloss.Color // the top-down view
	Label  lipgloss.Color // HUD labels, borders, footer
	Value  lipgloss.Color
	Notice lipgloss.Color
	Win    lipgloss.Color
	Paused lipgloss.Color
	Alert  lipgloss.Color // off-target warning
}

var (
	ThemeArcade = Theme{
		Name:   "arcade",
		Title:  "#ff00ff",
		Field:  "#00ffff",
		Label:  "#666666",
		Value:  "#ffffff",
		Notice: "#ffff00",
		Win:    "#00ff00",
		Paused: "#ff8800",
		Alert:  "#ff0000",
	}

	// green phosphor
	ThemeRetro = Theme{
		Name:   "retro",
		Title:  "#00ff00",
		Field:  "#00cc00",
		Label:  "#005500",
		Value:  "#00ff00",
		Notice: "#88ff88",
		Win:    "#88ff88",
		Paused: "#ffff00",
		Alert:  "#ff0000",
	}

	ThemeFairground = Theme{
		Name:   "fairground",
		Title:  "#ff6b6b",
		Field:  "#feca57",
		Label:  "#8b6b8c",
		Value:  "#fff5f5",
		Notice: "#ff9ff3",
		Win:    "#5fd068",
		Paused: "#ffc048",
		Alert:  "#ff4757",
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  "#ffffff",
		Field:  "#cccccc",
		Label:  "#888888",
		Value:  "#ffffff",
		Notice: "#0088ff",
		Win:    "#00ff00",
		Paused: "#ffaa00",
		Alert:  "#ff0000",
	}

	Themes = []Theme{ThemeArcade, ThemeRetro, ThemeFairground, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to arcade.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeArcade
}

// NextTheme returns the theme after t in the cycle.
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
