// Package theme defines color themes for the carpro dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors each part of the dashboard is drawn with.
type Theme struct {
	Name string

	// Backgrounds, darkest first.
	Background    lipgloss.Color
	Surface       lipgloss.Color // cards and panels
	SurfaceHover  lipgloss.Color // active tab, selected row
	SurfaceBright lipgloss.Color

	Border       lipgloss.Color
	BorderBright lipgloss.Color // card outlines
	BorderAccent lipgloss.Color // focused input

	// Text, lowest contrast first.
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color

	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	AccentDim    lipgloss.Color

	Green       lipgloss.Color
	GreenBright lipgloss.Color
	Orange      lipgloss.Color
	Red         lipgloss.Color
	Blue        lipgloss.Color
	BlueBright  lipgloss.Color
	Yellow      lipgloss.Color
	Magenta     lipgloss.Color
	Cyan        lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default: warm, paper-like dark tones.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Asphalt is a slate theme with a road-sign amber accent.
var Asphalt = Theme{
	Name:          "asphalt",
	Background:    lipgloss.Color("#121417"),
	Surface:       lipgloss.Color("#1B1F24"),
	SurfaceHover:  lipgloss.Color("#262B32"),
	SurfaceBright: lipgloss.Color("#30363F"),
	Border:        lipgloss.Color("#3A414B"),
	BorderBright:  lipgloss.Color("#535C68"),
	BorderAccent:  lipgloss.Color("#F2A900"),
	TextDim:       lipgloss.Color("#5C6470"),
	TextMuted:     lipgloss.Color("#959DA8"),
	TextPrimary:   lipgloss.Color("#E8EAED"),
	Accent:        lipgloss.Color("#F2A900"),
	AccentBright:  lipgloss.Color("#FFC53D"),
	AccentDim:     lipgloss.Color("#3A2E12"),
	Green:         lipgloss.Color("#3FA66B"),
	GreenBright:   lipgloss.Color("#62C48B"),
	Orange:        lipgloss.Color("#E8743B"),
	Red:           lipgloss.Color("#D9413A"),
	Blue:          lipgloss.Color("#2F80C8"),
	BlueBright:    lipgloss.Color("#5AA2E0"),
	Yellow:        lipgloss.Color("#E5C453"),
	Magenta:       lipgloss.Color("#B45FB0"),
	Cyan:          lipgloss.Color("#3BB3C3"),
}

// Terminal sticks to the 16 ANSI colors so it follows the terminal's own scheme.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("11"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{FlexokiDark, Asphalt, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// ForPriority maps an alert priority to its color: red when overdue, orange
// when due soon.
func (t Theme) ForPriority(priority int) lipgloss.Color {
	switch {
	case priority >= 2:
		return t.Red
	case priority == 1:
		return t.Orange
	default:
		return t.Green
	}
}

// Series returns the colors for the fuel, maintenance and other cost series.
func (t Theme) Series() [3]lipgloss.Color {
	return [3]lipgloss.Color{t.Blue, t.Orange, t.Magenta}
}
