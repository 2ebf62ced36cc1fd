// Package source reads and writes carpro backup files.
//
// Backups are the JSON document the dashboard has always exported:
// an object with fuelEntries, maintenanceEntries, expenseEntries, vehicles
// and language keys. Imports are lenient: JSON5 syntax is accepted and
// numbers may arrive as strings, as older exports stored raw form input.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
	"github.com/theirongolddev/carpro/internal/store"
)

// ErrInvalidBackup is returned for files that are not a carpro backup.
var ErrInvalidBackup = errors.New("invalid backup")

// Backup keys.
const (
	KeyFuel        = "fuelEntries"
	KeyMaintenance = "maintenanceEntries"
	KeyExpenses    = "expenseEntries"
	KeyVehicles    = "vehicles"
	KeyLanguage    = "language"
)

// DefaultLanguage is written when no language has been chosen.
const DefaultLanguage = "en"

// Backup is the exported document.
type Backup struct {
	FuelEntries        []model.FuelEntry         `json:"fuelEntries"`
	MaintenanceEntries []model.MaintenanceRecord `json:"maintenanceEntries"`
	ExpenseEntries     []model.ExpenseRecord     `json:"expenseEntries"`
	Vehicles           []model.Vehicle           `json:"vehicles"`
	Language           string                    `json:"language"`
}

// FromCollections builds a backup from a snapshot. Nil collections export as
// empty arrays.
func FromCollections(c pipeline.Collections) Backup {
	b := Backup{
		FuelEntries:        c.Fuel,
		MaintenanceEntries: c.Maintenance,
		ExpenseEntries:     c.Expenses,
		Vehicles:           c.Vehicles,
		Language:           c.Language,
	}
	if b.FuelEntries == nil {
		b.FuelEntries = []model.FuelEntry{}
	}
	if b.MaintenanceEntries == nil {
		b.MaintenanceEntries = []model.MaintenanceRecord{}
	}
	if b.ExpenseEntries == nil {
		b.ExpenseEntries = []model.ExpenseRecord{}
	}
	if b.Vehicles == nil {
		b.Vehicles = []model.Vehicle{}
	}
	if b.Language == "" {
		b.Language = DefaultLanguage
	}
	return b
}

// BackupFilename returns the default export name for the given day.
func BackupFilename(now time.Time, ext string) string {
	return fmt.Sprintf("carpro-backup-%s.%s", now.Format("2006-01-02"), ext)
}

// WriteJSON writes b as indented JSON.
func WriteJSON(w io.Writer, b Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// Import is a decoded backup. Only the sections present in the file are
// restored; the Has* flags record which ones were.
type Import struct {
	Backup
	HasFuel        bool
	HasMaintenance bool
	HasExpenses    bool
	HasVehicles    bool
}

// Sections returns the names of the collections present in the import.
func (imp *Import) Sections() []string {
	var out []string
	if imp.HasFuel {
		out = append(out, KeyFuel)
	}
	if imp.HasMaintenance {
		out = append(out, KeyMaintenance)
	}
	if imp.HasExpenses {
		out = append(out, KeyExpenses)
	}
	if imp.HasVehicles {
		out = append(out, KeyVehicles)
	}
	if imp.Language != "" {
		out = append(out, KeyLanguage)
	}
	return out
}

// ReadBackup decodes a backup document. Comments, trailing commas and other
// JSON5 syntax are accepted.
func ReadBackup(r io.Reader) (*Import, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	var raw map[string]any
	if err := json5.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidBackup)
	}

	imp := &Import{}
	if v, ok := present(raw, KeyFuel); ok {
		if imp.FuelEntries, err = decodeList(v, KeyFuel, fuelFrom); err != nil {
			return nil, err
		}
		imp.HasFuel = true
	}
	if v, ok := present(raw, KeyMaintenance); ok {
		if imp.MaintenanceEntries, err = decodeList(v, KeyMaintenance, maintenanceFrom); err != nil {
			return nil, err
		}
		imp.HasMaintenance = true
	}
	if v, ok := present(raw, KeyExpenses); ok {
		if imp.ExpenseEntries, err = decodeList(v, KeyExpenses, expenseFrom); err != nil {
			return nil, err
		}
		imp.HasExpenses = true
	}
	if v, ok := present(raw, KeyVehicles); ok {
		if imp.Vehicles, err = decodeList(v, KeyVehicles, vehicleFrom); err != nil {
			return nil, err
		}
		imp.HasVehicles = true
	}
	if v, ok := raw[KeyLanguage].(string); ok {
		imp.Language = v
	}

	if len(imp.Sections()) == 0 {
		return nil, fmt.Errorf("%w: no known sections", ErrInvalidBackup)
	}
	return imp, nil
}

// present reports whether key holds a non-null value.
func present(raw map[string]any, key string) (any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Restore writes every section present in imp to s, replacing what was there.
// It does no validation; imports go through the ledger, which checks records
// first.
func Restore(ctx context.Context, s store.RecordStore, imp *Import) error {
	if imp.HasFuel {
		if err := s.SaveFuelEntries(ctx, imp.FuelEntries); err != nil {
			return fmt.Errorf("restoring fuel entries: %w", err)
		}
	}
	if imp.HasMaintenance {
		if err := s.SaveMaintenanceRecords(ctx, imp.MaintenanceEntries); err != nil {
			return fmt.Errorf("restoring maintenance records: %w", err)
		}
	}
	if imp.HasExpenses {
		if err := s.SaveExpenses(ctx, imp.ExpenseEntries); err != nil {
			return fmt.Errorf("restoring expenses: %w", err)
		}
	}
	if imp.HasVehicles {
		if err := s.SaveVehicles(ctx, imp.Vehicles); err != nil {
			return fmt.Errorf("restoring vehicles: %w", err)
		}
	}
	if imp.Language != "" {
		if err := s.SetSetting(ctx, store.SettingLanguage, imp.Language); err != nil {
			return fmt.Errorf("restoring language: %w", err)
		}
	}
	return nil
}
