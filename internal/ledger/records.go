package ledger

import (
	"context"
	"fmt"

	"github.com/theirongolddev/carpro/internal/model"
)

func fuelID(e model.FuelEntry) int64                { return e.ID }
func maintenanceID(r model.MaintenanceRecord) int64 { return r.ID }
func expenseID(r model.ExpenseRecord) int64         { return r.ID }

// AddFuel validates e, assigns it an ID and stores it first in the fuel
// collection. A zero TotalCost is derived from liters and price.
func (l *Ledger) AddFuel(ctx context.Context, e model.FuelEntry) (model.FuelEntry, error) {
	if e.TotalCost == 0 && e.Liters > 0 && e.PricePerLiter > 0 {
		e.TotalCost = lineTotal(e.Liters, e.PricePerLiter)
	}
	if err := requireDate(e.Date); err != nil {
		return model.FuelEntry{}, err
	}
	if err := l.check(e); err != nil {
		return model.FuelEntry{}, err
	}

	entries, err := l.store.FuelEntries(ctx)
	if err != nil {
		return model.FuelEntry{}, fmt.Errorf("reading fuel entries: %w", err)
	}
	e.ID = l.nextID(maxID(entries, fuelID))
	entries = append([]model.FuelEntry{e}, entries...)
	if err := l.store.SaveFuelEntries(ctx, entries); err != nil {
		return model.FuelEntry{}, fmt.Errorf("saving fuel entries: %w", err)
	}
	return e, nil
}

// RemoveFuel deletes the fill-up with the given ID.
func (l *Ledger) RemoveFuel(ctx context.Context, id int64) error {
	entries, err := l.store.FuelEntries(ctx)
	if err != nil {
		return fmt.Errorf("reading fuel entries: %w", err)
	}
	entries, err = removeByID(entries, id, fuelID)
	if err != nil {
		return err
	}
	return l.store.SaveFuelEntries(ctx, entries)
}

// AddMaintenance validates r, assigns it an ID and stores it first in the
// maintenance collection.
func (l *Ledger) AddMaintenance(ctx context.Context, r model.MaintenanceRecord) (model.MaintenanceRecord, error) {
	if err := requireDate(r.Date); err != nil {
		return model.MaintenanceRecord{}, err
	}
	if err := l.check(r); err != nil {
		return model.MaintenanceRecord{}, err
	}

	records, err := l.store.MaintenanceRecords(ctx)
	if err != nil {
		return model.MaintenanceRecord{}, fmt.Errorf("reading maintenance records: %w", err)
	}
	r.ID = l.nextID(maxID(records, maintenanceID))
	records = append([]model.MaintenanceRecord{r}, records...)
	if err := l.store.SaveMaintenanceRecords(ctx, records); err != nil {
		return model.MaintenanceRecord{}, fmt.Errorf("saving maintenance records: %w", err)
	}
	return r, nil
}

// RemoveMaintenance deletes the service record with the given ID.
func (l *Ledger) RemoveMaintenance(ctx context.Context, id int64) error {
	records, err := l.store.MaintenanceRecords(ctx)
	if err != nil {
		return fmt.Errorf("reading maintenance records: %w", err)
	}
	records, err = removeByID(records, id, maintenanceID)
	if err != nil {
		return err
	}
	return l.store.SaveMaintenanceRecords(ctx, records)
}

// AddExpense validates r, assigns it an ID and stores it first in the
// expense collection.
func (l *Ledger) AddExpense(ctx context.Context, r model.ExpenseRecord) (model.ExpenseRecord, error) {
	if err := requireDate(r.Date); err != nil {
		return model.ExpenseRecord{}, err
	}
	if err := l.check(r); err != nil {
		return model.ExpenseRecord{}, err
	}

	records, err := l.store.Expenses(ctx)
	if err != nil {
		return model.ExpenseRecord{}, fmt.Errorf("reading expenses: %w", err)
	}
	r.ID = l.nextID(maxID(records, expenseID))
	records = append([]model.ExpenseRecord{r}, records...)
	if err := l.store.SaveExpenses(ctx, records); err != nil {
		return model.ExpenseRecord{}, fmt.Errorf("saving expenses: %w", err)
	}
	return r, nil
}

// RemoveExpense deletes the expense with the given ID.
func (l *Ledger) RemoveExpense(ctx context.Context, id int64) error {
	records, err := l.store.Expenses(ctx)
	if err != nil {
		return fmt.Errorf("reading expenses: %w", err)
	}
	records, err = removeByID(records, id, expenseID)
	if err != nil {
		return err
	}
	return l.store.SaveExpenses(ctx, records)
}
