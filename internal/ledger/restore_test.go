package ledger

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/source"
)

func readBackup(t *testing.T, doc string) *source.Import {
	t.Helper()
	imp, err := source.ReadBackup(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadBackup: %v", err)
	}
	return imp
}

func TestRestoreKeepsFirstDefaultVehicle(t *testing.T) {
	ctx := context.Background()
	l, s := newLedger(t)

	imp := readBackup(t, `{"vehicles": [
		{"id": 1, "make": "Toyota", "model": "Corolla", "isDefault": true},
		{"id": 2, "make": "Kia", "model": "Cerato", "isDefault": true},
		{"id": 3, "make": "Fiat", "model": "Tipo"}
	]}`)
	if err := l.Restore(ctx, imp); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	vehicles, _ := s.Vehicles(ctx)
	if len(vehicles) != 3 {
		t.Fatalf("len(vehicles) = %d, want 3", len(vehicles))
	}
	if got := defaults(vehicles); len(got) != 1 || got[0] != 1 {
		t.Fatalf("defaults = %v, want [1]", got)
	}
}

func TestRestoreRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"maintenance without service type", `{"maintenanceEntries": [{"id": 1, "date": "2025-01-01", "serviceType": "", "cost": -50}]}`},
		{"negative fuel liters", `{"fuelEntries": [{"id": 1, "date": "2025-01-01", "liters": -5, "totalCost": 10}]}`},
		{"expense without title", `{"expenseEntries": [{"id": 1, "date": "2025-01-01", "category": "expenseToll", "cost": 5}]}`},
		{"vehicle without make", `{"vehicles": [{"id": 1, "model": "Tipo"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			l, s := newLedger(t)
			existing := model.MaintenanceRecord{ID: 7, Date: model.NewDate(2024, 6, 1), ServiceType: "Oil", Cost: 100}
			if err := s.SaveMaintenanceRecords(ctx, []model.MaintenanceRecord{existing}); err != nil {
				t.Fatal(err)
			}

			err := l.Restore(ctx, readBackup(t, tt.doc))
			if !errors.Is(err, source.ErrInvalidBackup) {
				t.Fatalf("Restore err = %v, want ErrInvalidBackup", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Restore err = %v, want a ValidationError in the chain", err)
			}

			records, _ := s.MaintenanceRecords(ctx)
			if len(records) != 1 || records[0].ID != 7 {
				t.Errorf("store changed by rejected import: %+v", records)
			}
		})
	}
}

func TestRestoreAssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	l, s := newLedger(t)

	imp := readBackup(t, `{"expenseEntries": [
		{"id": 500, "date": "2025-01-01", "category": "expenseToll", "title": "Ring road", "cost": 5},
		{"date": "2025-01-02", "category": "expenseParking", "title": "Mall", "cost": 10}
	]}`)
	if err := l.Restore(ctx, imp); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	expenses, _ := s.Expenses(ctx)
	if len(expenses) != 2 {
		t.Fatalf("len(expenses) = %d, want 2", len(expenses))
	}
	if expenses[0].ID != 500 {
		t.Errorf("expenses[0].ID = %d, want 500", expenses[0].ID)
	}
	if expenses[1].ID <= 500 {
		t.Errorf("expenses[1].ID = %d, want > 500", expenses[1].ID)
	}
}
