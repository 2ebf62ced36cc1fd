package store

import (
	"context"
	"sync"

	"github.com/theirongolddev/carpro/internal/model"
)

// Memory is an in-process RecordStore. Reads and writes copy slices so callers
// never share backing arrays with the store.
type Memory struct {
	mu          sync.RWMutex
	closed      bool
	fuel        []model.FuelEntry
	maintenance []model.MaintenanceRecord
	expenses    []model.ExpenseRecord
	vehicles    []model.Vehicle
	settings    map[string]string
}

var _ RecordStore = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{settings: make(map[string]string)}
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (m *Memory) read(fn func()) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	fn()
	return nil
}

func (m *Memory) write(fn func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	fn()
	return nil
}

func (m *Memory) FuelEntries(_ context.Context) ([]model.FuelEntry, error) {
	var out []model.FuelEntry
	err := m.read(func() { out = clone(m.fuel) })
	return out, err
}

func (m *Memory) SaveFuelEntries(_ context.Context, entries []model.FuelEntry) error {
	return m.write(func() { m.fuel = clone(entries) })
}

func (m *Memory) MaintenanceRecords(_ context.Context) ([]model.MaintenanceRecord, error) {
	var out []model.MaintenanceRecord
	err := m.read(func() { out = clone(m.maintenance) })
	return out, err
}

func (m *Memory) SaveMaintenanceRecords(_ context.Context, records []model.MaintenanceRecord) error {
	return m.write(func() { m.maintenance = clone(records) })
}

func (m *Memory) Expenses(_ context.Context) ([]model.ExpenseRecord, error) {
	var out []model.ExpenseRecord
	err := m.read(func() { out = clone(m.expenses) })
	return out, err
}

func (m *Memory) SaveExpenses(_ context.Context, records []model.ExpenseRecord) error {
	return m.write(func() { m.expenses = clone(records) })
}

func (m *Memory) Vehicles(_ context.Context) ([]model.Vehicle, error) {
	var out []model.Vehicle
	err := m.read(func() { out = clone(m.vehicles) })
	return out, err
}

func (m *Memory) SaveVehicles(_ context.Context, vehicles []model.Vehicle) error {
	return m.write(func() { m.vehicles = clone(vehicles) })
}

func (m *Memory) Setting(_ context.Context, key string) (string, error) {
	var v string
	err := m.read(func() { v = m.settings[key] })
	return v, err
}

func (m *Memory) SetSetting(_ context.Context, key, value string) error {
	return m.write(func() { m.settings[key] = value })
}

func (m *Memory) Clear(_ context.Context) error {
	return m.write(func() {
		m.fuel = nil
		m.maintenance = nil
		m.expenses = nil
		m.vehicles = nil
	})
}

// Close marks the store closed; later calls return ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
