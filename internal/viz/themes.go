package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors the TUI chrome. Points keep the colors of their scale.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// newTheme fills the status colors shared by most themes.
func newTheme(name, primary, secondary, accent, muted string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.Color(primary),
		Secondary: lipgloss.Color(secondary),
		Accent:    lipgloss.Color(accent),
		Muted:     lipgloss.Color(muted),
		Success:   lipgloss.Color("#5ad47a"),
		Warning:   lipgloss.Color("#f0b429"),
		Error:     lipgloss.Color("#ef4d5a"),
	}
}

var (
	ThemeCyberpunk = newTheme("cyberpunk", "#f038c8", "#3ad9e8", "#e8e04a", "#5c5470")
	ThemeMinimal   = newTheme("minimal", "#e6e6e6", "#b4b4b4", "#4a9ee8", "#7a7a7a")
	ThemeOcean     = newTheme("ocean", "#2a7fbf", "#35b7c9", "#21918c", "#3e6a86") // viridis teal accent
	ThemeSunset    = newTheme("sunset", "#f1605d", "#fca636", "#b73779", "#7d5a78") // magma/plasma stops

	// Single-hue phosphor; status colors stay in the green family.
	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#39e75f"),
		Secondary: lipgloss.Color("#27b446"),
		Accent:    lipgloss.Color("#a3f7b5"),
		Muted:     lipgloss.Color("#1d5e2c"),
		Success:   lipgloss.Color("#a3f7b5"),
		Warning:   lipgloss.Color("#d6f56a"),
		Error:     lipgloss.Color("#f76a6a"),
	}

	// Themes in the order the t key cycles through them.
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme looks a theme up by name.
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("viz: unknown theme %q (available: %v)", name, ThemeNames())
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames lists the themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
