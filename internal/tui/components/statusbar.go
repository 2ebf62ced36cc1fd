package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/carpro/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. right is shown flush right;
// refreshing swaps it for a refresh marker.
func RenderStatusBar(width int, right string, refreshing bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [r]efresh  [q]uit"
	if refreshing {
		right = "↻ refreshing "
	} else if right != "" {
		right += " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
