package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/carpro/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite is a RecordStore backed by a local SQLite database file.
type SQLite struct {
	db *sql.DB
}

var _ RecordStore = (*SQLite)(nil)

// Open opens or creates the database at dbPath and migrates it.
func Open(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening db: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// replaceAll deletes every row of table and calls insert once per item
// inside a single transaction.
func (s *SQLite) replaceAll(ctx context.Context, table string, n int, insert func(tx *sql.Tx, pos int) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning %s write: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	for i := 0; i < n; i++ {
		if err := insert(tx, i); err != nil {
			return fmt.Errorf("writing %s row %d: %w", table, i, err)
		}
	}
	return tx.Commit()
}

// FuelEntries returns all fill-ups in collection order.
func (s *SQLite) FuelEntries(ctx context.Context) ([]model.FuelEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, date, odometer, liters, price_per_liter, total_cost, full_tank, station
		FROM fuel_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying fuel entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.FuelEntry
	for rows.Next() {
		var e model.FuelEntry
		var date string
		var station sql.NullString
		var fullTank int
		if err := rows.Scan(&e.ID, &date, &e.Odometer, &e.Liters, &e.PricePerLiter,
			&e.TotalCost, &fullTank, &station); err != nil {
			return nil, err
		}
		if e.Date, err = model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("fuel entry %d: %w", e.ID, err)
		}
		e.FullTank = fullTank != 0
		e.Station = station.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveFuelEntries replaces the fuel collection.
func (s *SQLite) SaveFuelEntries(ctx context.Context, entries []model.FuelEntry) error {
	return s.replaceAll(ctx, "fuel_entries", len(entries), func(tx *sql.Tx, pos int) error {
		e := entries[pos]
		_, err := tx.ExecContext(ctx, `INSERT INTO fuel_entries
			(position, id, date, odometer, liters, price_per_liter, total_cost, full_tank, station)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pos, e.ID, e.Date.String(), e.Odometer, e.Liters, e.PricePerLiter,
			e.TotalCost, boolInt(e.FullTank), nullString(e.Station),
		)
		return err
	})
}

// MaintenanceRecords returns all service records in collection order.
func (s *SQLite) MaintenanceRecords(ctx context.Context) ([]model.MaintenanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, date, service_type, odometer, cost, provider, next_due_date, next_due_odometer, notes
		FROM maintenance_records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying maintenance records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.MaintenanceRecord
	for rows.Next() {
		var r model.MaintenanceRecord
		var date string
		var provider, dueDate, notes sql.NullString
		var dueOdo sql.NullFloat64
		if err := rows.Scan(&r.ID, &date, &r.ServiceType, &r.Odometer, &r.Cost,
			&provider, &dueDate, &dueOdo, &notes); err != nil {
			return nil, err
		}
		if r.Date, err = model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("maintenance record %d: %w", r.ID, err)
		}
		if dueDate.Valid && dueDate.String != "" {
			d, err := model.ParseDate(dueDate.String)
			if err != nil {
				return nil, fmt.Errorf("maintenance record %d: next due: %w", r.ID, err)
			}
			r.NextDueDate = &d
		}
		if dueOdo.Valid {
			v := dueOdo.Float64
			r.NextDueOdometer = &v
		}
		r.Provider = provider.String
		r.Notes = notes.String
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveMaintenanceRecords replaces the maintenance collection.
func (s *SQLite) SaveMaintenanceRecords(ctx context.Context, records []model.MaintenanceRecord) error {
	return s.replaceAll(ctx, "maintenance_records", len(records), func(tx *sql.Tx, pos int) error {
		r := records[pos]
		var dueDate sql.NullString
		if d, ok := r.DueDate(); ok {
			dueDate = sql.NullString{String: d.String(), Valid: true}
		}
		var dueOdo sql.NullFloat64
		if r.NextDueOdometer != nil {
			dueOdo = sql.NullFloat64{Float64: *r.NextDueOdometer, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO maintenance_records
			(position, id, date, service_type, odometer, cost, provider, next_due_date, next_due_odometer, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pos, r.ID, r.Date.String(), r.ServiceType, r.Odometer, r.Cost,
			nullString(r.Provider), dueDate, dueOdo, nullString(r.Notes),
		)
		return err
	})
}

// Expenses returns all miscellaneous expenses in collection order.
func (s *SQLite) Expenses(ctx context.Context) ([]model.ExpenseRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, date, category, title, cost, notes
		FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.ExpenseRecord
	for rows.Next() {
		var r model.ExpenseRecord
		var date, category string
		var notes sql.NullString
		if err := rows.Scan(&r.ID, &date, &category, &r.Title, &r.Cost, &notes); err != nil {
			return nil, err
		}
		if r.Date, err = model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("expense %d: %w", r.ID, err)
		}
		r.Category = model.ExpenseCategory(category)
		r.Notes = notes.String
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveExpenses replaces the expense collection.
func (s *SQLite) SaveExpenses(ctx context.Context, records []model.ExpenseRecord) error {
	return s.replaceAll(ctx, "expenses", len(records), func(tx *sql.Tx, pos int) error {
		r := records[pos]
		_, err := tx.ExecContext(ctx, `INSERT INTO expenses
			(position, id, date, category, title, cost, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			pos, r.ID, r.Date.String(), string(r.Category), r.Title, r.Cost, nullString(r.Notes),
		)
		return err
	})
}

// Vehicles returns the garage in collection order.
func (s *SQLite) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, make, model, year, plate, color, odometer, vin, is_default
		FROM vehicles ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		var plate, color, vin sql.NullString
		var isDefault int
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &plate, &color,
			&v.Odometer, &vin, &isDefault); err != nil {
			return nil, err
		}
		v.Plate = plate.String
		v.Color = color.String
		v.VIN = vin.String
		v.IsDefault = isDefault != 0
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// SaveVehicles replaces the vehicle collection.
func (s *SQLite) SaveVehicles(ctx context.Context, vehicles []model.Vehicle) error {
	return s.replaceAll(ctx, "vehicles", len(vehicles), func(tx *sql.Tx, pos int) error {
		v := vehicles[pos]
		_, err := tx.ExecContext(ctx, `INSERT INTO vehicles
			(position, id, make, model, year, plate, color, odometer, vin, is_default)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pos, v.ID, v.Make, v.Model, v.Year, nullString(v.Plate), nullString(v.Color),
			v.Odometer, nullString(v.VIN), boolInt(v.IsDefault),
		)
		return err
	})
}

// Setting returns the value stored under key, or "" if unset.
func (s *SQLite) Setting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores value under key.
func (s *SQLite) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, "INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// Clear deletes every record and vehicle in one transaction.
func (s *SQLite) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning clear: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"fuel_entries", "maintenance_records", "expenses", "vehicles"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
