package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/carpro/internal/tui/theme"
)

func TestChartLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{437.4, "437"},
		{1500, "1.5k"},
		{2000000, "2M"},
	}
	for _, tt := range tests {
		if got := chartLabel(tt.in); got != tt.want {
			t.Fatalf("chartLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSparklineLength(t *testing.T) {
	out := Sparkline([]float64{0, 1, 2, 4}, theme.Active.Blue)
	if got := lipgloss.Width(out); got != 4 {
		t.Fatalf("sparkline width = %d, want 4", got)
	}
	if Sparkline(nil, theme.Active.Blue) != "" {
		t.Fatal("empty sparkline should render nothing")
	}
}

func TestColumnChartShape(t *testing.T) {
	values := []float64{0, 100, 0, 250, 50, 400}
	labels := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	out := ColumnChart(values, labels, theme.Active.Blue, 60, 4)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// caption row + bar rows + label row
	if len(lines) != 4+2 {
		t.Fatalf("chart has %d lines, want 6", len(lines))
	}
	for _, lbl := range labels {
		if !strings.Contains(lines[len(lines)-1], lbl) {
			t.Fatalf("label row %q missing %q", lines[len(lines)-1], lbl)
		}
	}
	if !strings.Contains(lines[1], "█") {
		t.Fatalf("top row %q should hold the tallest column", lines[1])
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Oil Change", 5); got != "Oil …" {
		t.Fatalf("Truncate = %q, want %q", got, "Oil …")
	}
	if got := Truncate("Tires", 10); got != "Tires" {
		t.Fatalf("Truncate = %q, want Tires", got)
	}
}
