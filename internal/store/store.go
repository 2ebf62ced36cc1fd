// Package store persists carpro's record collections.
//
// Collections are read and written whole, mirroring the key-value layout the
// dashboard was designed around: a save replaces the full ordered collection.
package store

import (
	"context"
	"errors"

	"github.com/theirongolddev/carpro/internal/model"
)

// Setting keys.
const (
	SettingLanguage = "language"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// RecordStore is the port the rest of carpro reads and writes collections
// through. Implementations must preserve collection order.
type RecordStore interface {
	FuelEntries(ctx context.Context) ([]model.FuelEntry, error)
	SaveFuelEntries(ctx context.Context, entries []model.FuelEntry) error

	MaintenanceRecords(ctx context.Context) ([]model.MaintenanceRecord, error)
	SaveMaintenanceRecords(ctx context.Context, records []model.MaintenanceRecord) error

	Expenses(ctx context.Context) ([]model.ExpenseRecord, error)
	SaveExpenses(ctx context.Context, records []model.ExpenseRecord) error

	Vehicles(ctx context.Context) ([]model.Vehicle, error)
	SaveVehicles(ctx context.Context, vehicles []model.Vehicle) error

	// Setting returns "" for unset keys.
	Setting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Clear removes every record collection. Settings survive.
	Clear(ctx context.Context) error

	Close() error
}
