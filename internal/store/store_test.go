package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/carpro/internal/model"
)

func openSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "carpro.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func stores(t *testing.T) map[string]RecordStore {
	t.Helper()
	return map[string]RecordStore{
		"memory": NewMemory(),
		"sqlite": openSQLite(t),
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestRoundTripPreservesOrderAndFields(t *testing.T) {
	ctx := context.Background()
	due := model.NewDate(2025, 3, 1)

	fuel := []model.FuelEntry{
		{ID: 3, Date: model.NewDate(2025, 1, 20), Odometer: 10500, Liters: 35, PricePerLiter: 12.5, TotalCost: 437.5, FullTank: true, Station: "Wataniya"},
		{ID: 1, Date: model.NewDate(2025, 1, 1), Odometer: 10000, Liters: 40, PricePerLiter: 12, TotalCost: 480},
	}
	maint := []model.MaintenanceRecord{
		{ID: 7, Date: model.NewDate(2025, 1, 5), ServiceType: "Oil Change", Odometer: 9000, Cost: 800,
			NextDueDate: &due, NextDueOdometer: floatPtr(14000), Provider: "Shell"},
		{ID: 2, Date: model.NewDate(2024, 6, 5), ServiceType: "Tires", Cost: 4000},
	}
	expenses := []model.ExpenseRecord{
		{ID: 4, Date: model.NewDate(2025, 1, 2), Category: model.ExpenseToll, Title: "Ring road", Cost: 25},
	}
	vehicles := []model.Vehicle{
		{ID: 10, Make: "Toyota", Model: "Corolla", Year: 2019, Odometer: 10500, IsDefault: true},
		{ID: 11, Make: "Kia", Model: "Cerato", Plate: "ABC 123"},
	}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.SaveFuelEntries(ctx, fuel); err != nil {
				t.Fatalf("SaveFuelEntries: %v", err)
			}
			if err := s.SaveMaintenanceRecords(ctx, maint); err != nil {
				t.Fatalf("SaveMaintenanceRecords: %v", err)
			}
			if err := s.SaveExpenses(ctx, expenses); err != nil {
				t.Fatalf("SaveExpenses: %v", err)
			}
			if err := s.SaveVehicles(ctx, vehicles); err != nil {
				t.Fatalf("SaveVehicles: %v", err)
			}

			gotFuel, err := s.FuelEntries(ctx)
			if err != nil {
				t.Fatalf("FuelEntries: %v", err)
			}
			if len(gotFuel) != 2 || gotFuel[0].ID != 3 || gotFuel[1].ID != 1 {
				t.Fatalf("fuel order = %+v, want IDs [3 1]", gotFuel)
			}
			if !gotFuel[0].FullTank || gotFuel[0].Station != "Wataniya" || gotFuel[0].TotalCost != 437.5 {
				t.Errorf("fuel[0] = %+v", gotFuel[0])
			}
			if !gotFuel[1].Date.Equal(model.NewDate(2025, 1, 1).Time) {
				t.Errorf("fuel[1].Date = %s, want 2025-01-01", gotFuel[1].Date)
			}

			gotMaint, err := s.MaintenanceRecords(ctx)
			if err != nil {
				t.Fatalf("MaintenanceRecords: %v", err)
			}
			if len(gotMaint) != 2 {
				t.Fatalf("len(maintenance) = %d, want 2", len(gotMaint))
			}
			if gotMaint[0].NextDueDate == nil || gotMaint[0].NextDueDate.String() != "2025-03-01" {
				t.Errorf("NextDueDate = %v, want 2025-03-01", gotMaint[0].NextDueDate)
			}
			if gotMaint[0].NextDueOdometer == nil || *gotMaint[0].NextDueOdometer != 14000 {
				t.Errorf("NextDueOdometer = %v, want 14000", gotMaint[0].NextDueOdometer)
			}
			if gotMaint[1].NextDueDate != nil || gotMaint[1].NextDueOdometer != nil {
				t.Errorf("maintenance[1] thresholds = %v/%v, want nil", gotMaint[1].NextDueDate, gotMaint[1].NextDueOdometer)
			}

			gotExp, err := s.Expenses(ctx)
			if err != nil {
				t.Fatalf("Expenses: %v", err)
			}
			if len(gotExp) != 1 || gotExp[0].Category != model.ExpenseToll || gotExp[0].Title != "Ring road" {
				t.Errorf("expenses = %+v", gotExp)
			}

			gotVeh, err := s.Vehicles(ctx)
			if err != nil {
				t.Fatalf("Vehicles: %v", err)
			}
			if len(gotVeh) != 2 || !gotVeh[0].IsDefault || gotVeh[1].IsDefault || gotVeh[1].Plate != "ABC 123" {
				t.Errorf("vehicles = %+v", gotVeh)
			}
		})
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			first := []model.ExpenseRecord{
				{ID: 1, Date: model.NewDate(2025, 1, 1), Category: model.ExpenseFine, Title: "a", Cost: 1},
				{ID: 2, Date: model.NewDate(2025, 1, 2), Category: model.ExpenseFine, Title: "b", Cost: 2},
			}
			if err := s.SaveExpenses(ctx, first); err != nil {
				t.Fatalf("SaveExpenses: %v", err)
			}
			if err := s.SaveExpenses(ctx, first[1:]); err != nil {
				t.Fatalf("SaveExpenses: %v", err)
			}
			got, err := s.Expenses(ctx)
			if err != nil {
				t.Fatalf("Expenses: %v", err)
			}
			if len(got) != 1 || got[0].ID != 2 {
				t.Errorf("Expenses = %+v, want only ID 2", got)
			}
		})
	}
}

func TestClearKeepsSettings(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.SetSetting(ctx, SettingLanguage, "ar"); err != nil {
				t.Fatalf("SetSetting: %v", err)
			}
			if err := s.SaveVehicles(ctx, []model.Vehicle{{ID: 1, Make: "Fiat", Model: "128"}}); err != nil {
				t.Fatalf("SaveVehicles: %v", err)
			}
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			vehicles, err := s.Vehicles(ctx)
			if err != nil {
				t.Fatalf("Vehicles: %v", err)
			}
			if len(vehicles) != 0 {
				t.Errorf("len(vehicles) = %d after Clear, want 0", len(vehicles))
			}
			lang, err := s.Setting(ctx, SettingLanguage)
			if err != nil {
				t.Fatalf("Setting: %v", err)
			}
			if lang != "ar" {
				t.Errorf("language = %q after Clear, want ar", lang)
			}
		})
	}
}

func TestSettingUnset(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Setting(context.Background(), "missing")
			if err != nil {
				t.Fatalf("Setting: %v", err)
			}
			if v != "" {
				t.Errorf("Setting(missing) = %q, want empty", v)
			}
		})
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carpro.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}
		_ = s.Close()
	}
}

func TestMemoryCopiesSlices(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	in := []model.Vehicle{{ID: 1, Make: "Fiat", Model: "128"}}
	if err := m.SaveVehicles(ctx, in); err != nil {
		t.Fatalf("SaveVehicles: %v", err)
	}
	in[0].Make = "changed"
	got, _ := m.Vehicles(ctx)
	if got[0].Make != "Fiat" {
		t.Errorf("stored Make = %q, want Fiat", got[0].Make)
	}
}

func TestMemoryClosed(t *testing.T) {
	m := NewMemory()
	_ = m.Close()
	if _, err := m.FuelEntries(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("FuelEntries after Close err = %v, want ErrClosed", err)
	}
}
