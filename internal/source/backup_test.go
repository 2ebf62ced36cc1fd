package source

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
	"github.com/theirongolddev/carpro/internal/store"
)

func sampleSnapshot() pipeline.Collections {
	due := model.NewDate(2025, 6, 1)
	km := 15000.0
	return pipeline.Collections{
		Fuel: []model.FuelEntry{
			{ID: 1736450000000, Date: model.NewDate(2025, 1, 9), Odometer: 10500, Liters: 35, PricePerLiter: 12.5, TotalCost: 437.5, FullTank: true},
		},
		Maintenance: []model.MaintenanceRecord{
			{ID: 1736450000001, Date: model.NewDate(2025, 1, 5), ServiceType: "Oil Change", Cost: 800, NextDueDate: &due, NextDueOdometer: &km},
		},
		Expenses: []model.ExpenseRecord{
			{ID: 1736450000002, Date: model.NewDate(2025, 1, 2), Category: model.ExpenseToll, Title: "Ring road", Cost: 25},
		},
		Vehicles: []model.Vehicle{
			{ID: 1736450000003, Make: "Toyota", Model: "Corolla", Year: 2019, Odometer: 10500, IsDefault: true},
		},
		Language: "ar",
	}
}

func TestBackupRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, FromCollections(sampleSnapshot())); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	for _, key := range []string{`"fuelEntries"`, `"maintenanceEntries"`, `"expenseEntries"`, `"vehicles"`, `"language": "ar"`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("backup missing %s", key)
		}
	}

	imp, err := ReadBackup(&buf)
	if err != nil {
		t.Fatalf("ReadBackup: %v", err)
	}
	want := sampleSnapshot()
	if len(imp.Sections()) != 5 {
		t.Errorf("Sections = %v, want all five", imp.Sections())
	}
	if imp.FuelEntries[0] != want.Fuel[0] {
		t.Errorf("fuel = %+v, want %+v", imp.FuelEntries[0], want.Fuel[0])
	}
	m := imp.MaintenanceEntries[0]
	if m.NextDueDate == nil || m.NextDueDate.String() != "2025-06-01" || m.NextDueOdometer == nil || *m.NextDueOdometer != 15000 {
		t.Errorf("maintenance thresholds = %v / %v", m.NextDueDate, m.NextDueOdometer)
	}
	if imp.ExpenseEntries[0] != want.Expenses[0] {
		t.Errorf("expense = %+v, want %+v", imp.ExpenseEntries[0], want.Expenses[0])
	}
	if imp.Vehicles[0] != want.Vehicles[0] {
		t.Errorf("vehicle = %+v, want %+v", imp.Vehicles[0], want.Vehicles[0])
	}
	if imp.Language != "ar" {
		t.Errorf("Language = %q, want ar", imp.Language)
	}
}

func TestFromCollectionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, FromCollections(pipeline.Collections{})); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "null") {
		t.Errorf("empty backup contains null: %s", out)
	}
	if !strings.Contains(out, `"language": "en"`) {
		t.Errorf("empty backup should default language to en: %s", out)
	}
}

func TestReadBackupLenient(t *testing.T) {
	doc := `{
		// exported by an older build
		fuelEntries: [
			{id: 1, date: "2025-01-01T08:30:00.000Z", odometer: "10000", liters: "40", pricePerLiter: 12, totalCost: "480.00", fullTank: true,},
		],
		maintenanceEntries: [
			{id: 2, date: "2025-01-05", serviceType: "Tires", cost: 900, odometer: 9800, nextDueDate: "", nextDueOdometer: "", },
			{id: 3, date: "2025-01-06", serviceType: "Oil Change", cost: 500, nextDueOdometer: "15000"},
		],
		vehicles: [{id: 4, make: "Kia", model: "Cerato", year: "2020", odometer: "10250", isDefault: true}],
	}`
	imp, err := ReadBackup(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadBackup: %v", err)
	}
	if !imp.HasFuel || !imp.HasMaintenance || imp.HasExpenses || !imp.HasVehicles {
		t.Errorf("sections = %v", imp.Sections())
	}
	f := imp.FuelEntries[0]
	if f.Odometer != 10000 || f.Liters != 40 || f.TotalCost != 480 || f.Date.String() != "2025-01-01" {
		t.Errorf("fuel = %+v", f)
	}
	if m := imp.MaintenanceEntries[0]; m.NextDueDate != nil || m.NextDueOdometer != nil {
		t.Errorf("empty thresholds decoded as %v / %v, want nil", m.NextDueDate, m.NextDueOdometer)
	}
	if m := imp.MaintenanceEntries[1]; m.NextDueOdometer == nil || *m.NextDueOdometer != 15000 {
		t.Errorf("string threshold decoded as %v, want 15000", m.NextDueOdometer)
	}
	if v := imp.Vehicles[0]; v.Year != 2020 || v.Odometer != 10250 || !v.IsDefault {
		t.Errorf("vehicle = %+v", v)
	}
}

func TestReadBackupInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "hello"},
		{"array", "[1, 2]"},
		{"null", "null"},
		{"no known keys", `{"foo": 1}`},
		{"section not array", `{"fuelEntries": {"id": 1}}`},
		{"item not object", `{"vehicles": [1]}`},
		{"bad date", `{"expenseEntries": [{"id": 1, "date": "yesterday", "cost": 1}]}`},
		{"missing date", `{"fuelEntries": [{"id": 1, "liters": 3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBackup(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidBackup) {
				t.Errorf("err = %v, want ErrInvalidBackup", err)
			}
		})
	}
}

func TestRestoreOnlyPresentSections(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	snap := sampleSnapshot()
	if err := s.SaveFuelEntries(ctx, snap.Fuel); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveVehicles(ctx, snap.Vehicles); err != nil {
		t.Fatal(err)
	}

	imp, err := ReadBackup(strings.NewReader(`{"fuelEntries": [], "language": "en"}`))
	if err != nil {
		t.Fatalf("ReadBackup: %v", err)
	}
	if err := Restore(ctx, s, imp); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	fuel, _ := s.FuelEntries(ctx)
	if len(fuel) != 0 {
		t.Errorf("fuel not replaced by empty section: %+v", fuel)
	}
	vehicles, _ := s.Vehicles(ctx)
	if len(vehicles) != 1 {
		t.Errorf("vehicles touched by import without that section: %+v", vehicles)
	}
	if lang, _ := s.Setting(ctx, store.SettingLanguage); lang != "en" {
		t.Errorf("language = %q, want en", lang)
	}
}

func TestBackupFilename(t *testing.T) {
	got := BackupFilename(time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC), "json")
	if got != "carpro-backup-2025-03-15.json" {
		t.Errorf("BackupFilename = %q", got)
	}
}

func FuzzReadBackup(f *testing.F) {
	f.Add(`{"fuelEntries": []}`)
	f.Add(`{vehicles: [{make: "Kia", year: "2020",}]}`)
	f.Add(`{"maintenanceEntries": [{"date": "2025-01-01", "nextDueOdometer": "abc"}]}`)
	f.Add(`[]`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, doc string) {
		imp, err := ReadBackup(strings.NewReader(doc))
		if err != nil {
			if !errors.Is(err, ErrInvalidBackup) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		if len(imp.Sections()) == 0 {
			t.Fatal("successful import with no sections")
		}
	})
}
