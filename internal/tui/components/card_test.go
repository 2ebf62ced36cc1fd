package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/carpro/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 3},
		{81, 4},
		{7, 7},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
		if widths[0] < widths[len(widths)-1] {
			t.Fatalf("LayoutRow(%d, %d) = %v, want remainder on the first items", tt.total, tt.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow(10, 0) should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i, line := range lines[shortLines:] {
		if !strings.Contains(line, "\x1b[") {
			t.Fatalf("padding line %d has no ANSI styling: %q", i+shortLines, line)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Total", Value: "EGP 1,737.50"},
		{Label: "This month", Value: "EGP 937.50", Hint: "2 entries"},
		{Label: "Efficiency", Value: "12.5 km/L"},
	}, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Fatalf("line %d width = %d, want 90", i, w)
		}
	}
}
