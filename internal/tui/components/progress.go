package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/carpro/internal/tui/theme"
)

// ShareBar renders a labeled bar for one slice of a total, followed by its
// percentage and a formatted amount.
func ShareBar(label string, share float64, color lipgloss.Color, amount string, labelW, barWidth int) string {
	share = min(max(share, 0), 1)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Bold(true)
	return ValueBar(label, share, color, pctStyle.Render(fmt.Sprintf("%3.0f%%", share*100))+surfaceSpace(2)+amount, labelW, barWidth)
}

// ValueBar renders a labeled bar filled to frac, followed by valueText.
func ValueBar(label string, frac float64, color lipgloss.Color, valueText string, labelW, barWidth int) string {
	t := theme.Active

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, Truncate(label, labelW))) +
		surfaceSpace(1) +
		bar.ViewAs(min(max(frac, 0), 1)) +
		surfaceSpace(1) +
		valueStyle.Render(valueText)
}

func surfaceSpace(n int) string {
	return lipgloss.NewStyle().Background(theme.Active.Surface).Render(strings.Repeat(" ", n))
}

// Share returns part/total, 0 when the total is not positive.
func Share(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total
}
