package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/carpro/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotals(t *testing.T) {
	c := sampleCollections()
	want := 437.5 + 480 + 300 + 800 + 4000 + 20 + 6000
	if got := Totals(c); !approx(got, want) {
		t.Errorf("Totals = %v, want %v", got, want)
	}
}

func TestTotalsEmpty(t *testing.T) {
	if got := Totals(Collections{}); got != 0 {
		t.Errorf("Totals(empty) = %v, want 0", got)
	}
	if got := MonthlyTotals(Collections{}, refNow); got != 0 {
		t.Errorf("MonthlyTotals(empty) = %v, want 0", got)
	}
}

func TestTotalsNoDrift(t *testing.T) {
	c := Collections{Expenses: []model.ExpenseRecord{
		{Date: day(2025, 3, 1), Cost: 0.1},
		{Date: day(2025, 3, 2), Cost: 0.2},
	}}
	if got := Totals(c); got != 0.3 {
		t.Errorf("Totals = %v, want exactly 0.3", got)
	}
}

func TestMonthlyTotals(t *testing.T) {
	c := sampleCollections()
	want := 437.5 + 800 + 20.0
	if got := MonthlyTotals(c, refNow); !approx(got, want) {
		t.Errorf("MonthlyTotals = %v, want %v", got, want)
	}
	if m, total := MonthlyTotals(c, refNow), Totals(c); m > total {
		t.Errorf("MonthlyTotals %v > Totals %v", m, total)
	}
}

func TestMonthlyTotalsSameMonthOtherYear(t *testing.T) {
	c := Collections{Fuel: []model.FuelEntry{fuel(1, day(2024, 3, 15), 0, 1, 100)}}
	if got := MonthlyTotals(c, refNow); got != 0 {
		t.Errorf("MonthlyTotals = %v, want 0 for March of another year", got)
	}
}

func TestMonthlyTotalsUsesNowLocation(t *testing.T) {
	// 2025-04-01 00:30 in UTC+2 is still March in UTC.
	loc := time.FixedZone("EET", 2*60*60)
	now := time.Date(2025, time.April, 1, 0, 30, 0, 0, loc)
	c := Collections{Expenses: []model.ExpenseRecord{
		{Date: day(2025, 4, 1), Cost: 5},
		{Date: day(2025, 3, 31), Cost: 7},
	}}
	if got := MonthlyTotals(c, now); got != 5 {
		t.Errorf("MonthlyTotals = %v, want 5", got)
	}
}

func TestAggregateBreakdown(t *testing.T) {
	b := AggregateBreakdown(sampleCollections())
	if !approx(b.Fuel, 1217.5) {
		t.Errorf("Fuel = %v, want 1217.5", b.Fuel)
	}
	if !approx(b.Maintenance, 4800) {
		t.Errorf("Maintenance = %v, want 4800", b.Maintenance)
	}
	if !approx(b.Other, 6020) {
		t.Errorf("Other = %v, want 6020", b.Other)
	}
	if !approx(b.Total(), Totals(sampleCollections())) {
		t.Errorf("Breakdown total = %v, want Totals %v", b.Total(), Totals(sampleCollections()))
	}
}

func TestMonthTrend(t *testing.T) {
	c := sampleCollections()
	trend := MonthTrend(c, refNow)
	if len(trend) != TrendMonths {
		t.Fatalf("len(trend) = %d, want %d", len(trend), TrendMonths)
	}

	wantLabels := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	wantTotals := []float64{0, 0, 6000, 4000, 480, 1257.5}
	var windowSum float64
	for i, b := range trend {
		if b.Label != wantLabels[i] {
			t.Errorf("trend[%d].Label = %q, want %q", i, b.Label, wantLabels[i])
		}
		if !approx(b.Total, wantTotals[i]) {
			t.Errorf("trend[%d].Total = %v, want %v", i, b.Total, wantTotals[i])
		}
		windowSum += b.Total
	}
	if trend[0].Year != 2024 || trend[0].Month != time.October {
		t.Errorf("oldest bucket = %d-%02d, want 2024-10", trend[0].Year, trend[0].Month)
	}

	// Everything except the June 2024 fill-up falls in the window.
	if want := Totals(c) - 300; !approx(windowSum, want) {
		t.Errorf("trend sum = %v, want %v", windowSum, want)
	}
}

func TestMonthTrendSparse(t *testing.T) {
	for _, c := range []Collections{{}, {Fuel: []model.FuelEntry{fuel(1, day(2019, 1, 1), 0, 1, 50)}}} {
		trend := MonthTrend(c, refNow)
		if len(trend) != TrendMonths {
			t.Fatalf("len(trend) = %d, want %d", len(trend), TrendMonths)
		}
		for i, b := range trend {
			if b.Total != 0 {
				t.Errorf("trend[%d].Total = %v, want 0", i, b.Total)
			}
		}
	}
}

func TestMonthTrendCrossesYear(t *testing.T) {
	now := time.Date(2025, time.February, 28, 23, 0, 0, 0, time.UTC)
	trend := MonthTrend(Collections{}, now)
	first, last := trend[0], trend[len(trend)-1]
	if first.Year != 2024 || first.Month != time.September {
		t.Errorf("first bucket = %d-%02d, want 2024-09", first.Year, first.Month)
	}
	if last.Year != 2025 || last.Month != time.February {
		t.Errorf("last bucket = %d-%02d, want 2025-02", last.Year, last.Month)
	}
}
