package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/theirongolddev/carpro/internal/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// ColumnChart renders one labeled column per value, scaled to the largest
// value. Columns share the available width evenly; each column's amount is
// printed above it.
func ColumnChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	if height < 3 || width < n*3 {
		return Sparkline(values, color)
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	colW := width / n
	barW := max(min(colW-2, 8), 1)

	surface := lipgloss.NewStyle().Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	cell := func(s string, style lipgloss.Style) string {
		return style.Render(s) + surface.Render(strings.Repeat(" ", max(colW-lipgloss.Width(s), 0)))
	}

	// Eighths of a row each value reaches.
	eighths := make([]int, n)
	for i, v := range values {
		eighths[i] = int(math.Round(math.Max(v, 0) / peak * float64(height*8)))
	}

	var b strings.Builder
	for _, v := range values {
		b.WriteString(cell(Truncate(chartLabel(v), colW-1), dimStyle))
	}
	b.WriteString("\n")
	for row := height; row >= 1; row-- {
		floor := (row - 1) * 8
		for i := range values {
			fill := eighths[i] - floor
			switch {
			case fill >= 8:
				b.WriteString(cell(strings.Repeat("█", barW), barStyle))
			case fill > 0:
				b.WriteString(cell(strings.Repeat(string(sparkBlocks[fill-1]), barW), barStyle))
			default:
				b.WriteString(cell("", surface))
			}
		}
		b.WriteString("\n")
	}
	for i := range values {
		lbl := ""
		if i < len(labels) {
			lbl = labels[i]
		}
		b.WriteString(cell(Truncate(lbl, colW-1), dimStyle))
	}
	return b.String()
}

// chartLabel abbreviates an amount for an axis or column caption.
func chartLabel(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.Abs(v) >= 1000:
		value, prefix := humanize.ComputeSI(v)
		return humanize.FtoaWithDigits(value, 1) + prefix
	default:
		return humanize.FtoaWithDigits(v, 0)
	}
}

// Truncate shortens s to limit display cells, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
