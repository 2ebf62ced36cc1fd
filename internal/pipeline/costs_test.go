package pipeline

import (
	"testing"

	"github.com/theirongolddev/carpro/internal/model"
)

func TestAggregateExpenseCategories(t *testing.T) {
	expenses := []model.ExpenseRecord{
		{Category: model.ExpenseParking, Cost: 20},
		{Category: model.ExpenseInsurance, Cost: 6000},
		{Category: model.ExpenseParking, Cost: 30},
		{Category: model.ExpenseToll, Cost: 50},
	}
	rows := AggregateExpenseCategories(expenses)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].Category != model.ExpenseInsurance {
		t.Errorf("rows[0] = %s, want insurance first", rows[0].Category)
	}
	// Parking and toll tie at 50; ties sort by category name.
	if rows[1].Category != model.ExpenseParking || rows[2].Category != model.ExpenseToll {
		t.Errorf("tie order = %s, %s", rows[1].Category, rows[2].Category)
	}
	if rows[1].Records != 2 || rows[1].TotalCost != 50 {
		t.Errorf("parking = %+v, want 2 records / 50", rows[1])
	}
	var share float64
	for _, r := range rows {
		share += r.SharePercent
	}
	if !approx(share, 100) {
		t.Errorf("shares sum to %v, want 100", share)
	}
}

func TestFuelSummary(t *testing.T) {
	s := FuelSummary([]model.FuelEntry{
		fuel(1, day(2025, 1, 1), 0, 40, 480),
		fuel(2, day(2025, 1, 2), 0, 35, 437.5),
	})
	if s.Entries != 2 || s.TotalCost != 917.5 || s.TotalLiters != 75 {
		t.Errorf("summary = %+v", s)
	}
	if s.AvgPricePerL != 12.23 {
		t.Errorf("AvgPricePerL = %v, want 12.23", s.AvgPricePerL)
	}

	if empty := FuelSummary(nil); empty.AvgPricePerL != 0 {
		t.Errorf("empty AvgPricePerL = %v, want 0", empty.AvgPricePerL)
	}
}

func TestMaintenanceSummary(t *testing.T) {
	s := MaintenanceSummary([]model.MaintenanceRecord{
		{Date: day(2025, 3, 1), Cost: 800, NextDueOdometer: floatPtr(15000)},
		{Date: day(2025, 1, 1), Cost: 200},
		{Date: day(2025, 2, 1), Cost: 100, NextDueDate: datePtr(day(2025, 8, 1))},
	})
	if s.Records != 3 || s.TotalCost != 1100 || s.WithDueDate != 2 {
		t.Errorf("summary = %+v", s)
	}
	if s.LastService == nil || s.LastService.String() != "2025-03-01" {
		t.Errorf("LastService = %v, want 2025-03-01", s.LastService)
	}
	if empty := MaintenanceSummary(nil); empty.LastService != nil {
		t.Errorf("empty LastService = %v, want nil", empty.LastService)
	}
}

func TestExpenseSummary(t *testing.T) {
	s := ExpenseSummary(sampleCollections().Expenses, refNow)
	if s.Records != 2 || s.TotalCost != 6020 || s.MonthlyCost != 20 {
		t.Errorf("summary = %+v", s)
	}
}
