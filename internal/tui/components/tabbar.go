package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/carpro/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs returns the tab set with names supplied by label (already localized).
func Tabs(label func(key string) string) []Tab {
	defs := []struct {
		key    string
		hotkey rune
	}{
		{"dashboard", 'o'},
		{"fuel", 'f'},
		{"maintenance", 'm'},
		{"expenses", 'e'},
		{"vehicles", 'v'},
	}
	tabs := make([]Tab, len(defs))
	for i, d := range defs {
		name := label(d.key)
		tabs[i] = Tab{Name: name, Key: d.hotkey, KeyPos: runeIndex(name, d.hotkey)}
	}
	return tabs
}

func runeIndex(s string, r rune) int {
	for i, c := range []rune(strings.ToLower(s)) {
		if c == r {
			return i
		}
	}
	return -1
}

// TabVisualWidth returns the rendered width of tab, matching RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active && tab.KeyPos < 0 {
		w += 3
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(tabs []Tab, activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pad := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
			continue
		}
		runes := []rune(tab.Name)
		if tab.KeyPos >= 0 && tab.KeyPos < len(runes) {
			parts[i] = pad +
				inactiveStyle.Render(string(runes[:tab.KeyPos])) +
				keyStyle.Render(string(runes[tab.KeyPos])) +
				inactiveStyle.Render(string(runes[tab.KeyPos+1:])) +
				pad
		} else {
			parts[i] = pad + inactiveStyle.Render(tab.Name) +
				dimStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimStyle.Render("]") + pad
		}
	}

	row := strings.Join(parts, pad)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(tabs []Tab, key rune) int {
	for i, tab := range tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
