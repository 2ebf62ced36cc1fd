package ledger

import (
	"context"
	"fmt"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/source"
)

// Restore validates every record in imp and then replaces the collections it
// carries. Nothing is written if any record fails validation. Records without
// an ID get a fresh one, and only the first vehicle flagged as default keeps
// the flag.
func (l *Ledger) Restore(ctx context.Context, imp *source.Import) error {
	for i, e := range imp.FuelEntries {
		if err := l.checkDated(e, e.Date); err != nil {
			return invalidRecord(source.KeyFuel, i, err)
		}
	}
	for i, r := range imp.MaintenanceEntries {
		if err := l.checkDated(r, r.Date); err != nil {
			return invalidRecord(source.KeyMaintenance, i, err)
		}
	}
	for i, r := range imp.ExpenseEntries {
		if err := l.checkDated(r, r.Date); err != nil {
			return invalidRecord(source.KeyExpenses, i, err)
		}
	}
	for i, v := range imp.Vehicles {
		if err := l.check(v); err != nil {
			return invalidRecord(source.KeyVehicles, i, err)
		}
	}

	fillIDs(imp.FuelEntries, fuelID, func(e *model.FuelEntry, id int64) { e.ID = id }, l.nextID)
	fillIDs(imp.MaintenanceEntries, maintenanceID, func(r *model.MaintenanceRecord, id int64) { r.ID = id }, l.nextID)
	fillIDs(imp.ExpenseEntries, expenseID, func(r *model.ExpenseRecord, id int64) { r.ID = id }, l.nextID)
	fillIDs(imp.Vehicles, vehicleID, func(v *model.Vehicle, id int64) { v.ID = id }, l.nextID)

	seen := false
	for i := range imp.Vehicles {
		if imp.Vehicles[i].IsDefault && seen {
			imp.Vehicles[i].IsDefault = false
		}
		seen = seen || imp.Vehicles[i].IsDefault
	}

	return source.Restore(ctx, l.store, imp)
}

func (l *Ledger) checkDated(v any, d model.Date) error {
	if err := requireDate(d); err != nil {
		return err
	}
	return l.check(v)
}

func invalidRecord(section string, i int, err error) error {
	return fmt.Errorf("%w: %s[%d]: %w", source.ErrInvalidBackup, section, i, err)
}

// fillIDs gives every zero-ID item an ID above the collection's maximum.
func fillIDs[T any](items []T, id func(T) int64, set func(*T, int64), next func(int64) int64) {
	floor := maxID(items, id)
	for i := range items {
		if id(items[i]) == 0 {
			set(&items[i], next(floor))
		}
	}
}
